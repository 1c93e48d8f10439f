package entity

// TokenPair bundles the two opaque credentials issued by the backend on a
// successful login or registration. The pair is written to and cleared from
// local storage as a unit; no observer may ever see one token without the
// other.
type TokenPair struct {
	AccessToken  string // Short-lived bearer credential attached to backend requests.
	RefreshToken string // Longer-lived renewal credential (renewal flow not exercised here).
	TokenType    string // Scheme reported by the backend, typically "bearer".
}
