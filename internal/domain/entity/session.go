package entity

// SessionPhase is the externally observable phase of the session lifecycle.
type SessionPhase string

const (
	// PhaseBootstrapping means the one-time startup determination has not
	// completed yet; nothing should be rendered except a loading indicator.
	PhaseBootstrapping SessionPhase = "bootstrapping"
	// PhaseAnonymous means startup completed and no principal is signed in.
	PhaseAnonymous SessionPhase = "anonymous"
	// PhaseAuthenticated means a principal is signed in and its identity is cached.
	PhaseAuthenticated SessionPhase = "authenticated"
)

// SessionState is a point-in-time snapshot of the session lifecycle.
// Identity is nil unless the phase is PhaseAuthenticated.
type SessionState struct {
	Initialized bool      // Latches true after the first bootstrap and never reverts.
	Identity    *Identity // The signed-in principal, or nil.
}

// Phase derives the observable phase from the snapshot.
func (s SessionState) Phase() SessionPhase {
	switch {
	case !s.Initialized:
		return PhaseBootstrapping
	case s.Identity == nil:
		return PhaseAnonymous
	default:
		return PhaseAuthenticated
	}
}
