package gateway

import (
	"net/http"

	"billdesk/internal/domain/repository"
)

// bearerTransport attaches the stored access token to every outbound request.
// The gateway itself never reads tokens; credential attachment is a transport
// concern.
type bearerTransport struct {
	base  http.RoundTripper
	store repository.CredentialStore
}

func newBearerTransport(store repository.CredentialStore) *bearerTransport {
	return &bearerTransport{
		base:  http.DefaultTransport,
		store: store,
	}
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.store.Get(repository.KeyAccessToken)
	if err != nil || token == "" {
		// No usable credential; send the request bare and let the backend decide.
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)

	return t.base.RoundTrip(clone)
}
