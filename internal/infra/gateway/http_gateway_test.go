package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"billdesk/config"
	domainerrors "billdesk/internal/domain/errors"
	"billdesk/internal/domain/repository"
	"billdesk/internal/domain/service"
	mockRepo "billdesk/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayForTest(t *testing.T, store repository.CredentialStore, handler http.Handler) service.SessionGateway {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	cfg := &config.Config{}
	cfg.Gateway.BaseURL = backend.URL + "/api/v1/"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHTTPGateway(Params{Config: cfg, Store: store, Logger: logger})
}

func anonymousStore(t *testing.T) *mockRepo.MockCredentialStore {
	store := mockRepo.NewMockCredentialStore(t)
	store.EXPECT().Get(repository.KeyAccessToken).Return("", repository.ErrCredentialNotFound).Maybe()

	return store
}

func TestHTTPGateway_Authenticate_Success(t *testing.T) {
	store := anonymousStore(t)
	gw := newGatewayForTest(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "owner@acme.test", body["email"])
		assert.Equal(t, "hunter22", body["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"token_type":    "bearer",
		})
	}))

	pair, err := gw.Authenticate(context.Background(), "owner@acme.test", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "at-1", pair.AccessToken)
	assert.Equal(t, "rt-1", pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)
}

func TestHTTPGateway_Authenticate_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, domainerrors.ErrInvalidCredentials},
		{"forbidden", http.StatusForbidden, domainerrors.ErrInvalidCredentials},
		{"server error", http.StatusInternalServerError, domainerrors.ErrGatewayUnavailable},
		{"bad gateway", http.StatusBadGateway, domainerrors.ErrGatewayUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := anonymousStore(t)
			gw := newGatewayForTest(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := gw.Authenticate(context.Background(), "owner@acme.test", "wrong")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPGateway_Register_ForwardsSlugVerbatim(t *testing.T) {
	store := anonymousStore(t)
	gw := newGatewayForTest(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme Corp!", body["tenant_slug"])
		assert.Equal(t, "Acme Corp", body["tenant_name"])

		json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"token_type":    "bearer",
		})
	}))

	// The slug travels to the backend exactly as supplied, spaces and all.
	pair, err := gw.Register(context.Background(), &service.RegisterInput{
		TenantName: "Acme Corp",
		TenantSlug: "Acme Corp!",
		Email:      "owner@acme.test",
		Password:   "hunter22hunter22",
		FirstName:  "Ada",
		LastName:   "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, "at-1", pair.AccessToken)
}

func TestHTTPGateway_Register_RejectionCarriesDetail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		detail     string
		wantDetail string
	}{
		{"conflict with detail", http.StatusConflict, "tenant slug already taken", "tenant slug already taken"},
		{"unprocessable with detail", http.StatusUnprocessableEntity, "password too weak", "password too weak"},
		{"bad request without detail", http.StatusBadRequest, "", "registration failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := anonymousStore(t)
			gw := newGatewayForTest(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.detail != "" {
					json.NewEncoder(w).Encode(map[string]string{"detail": tt.detail})
				}
			}))

			_, err := gw.Register(context.Background(), &service.RegisterInput{
				TenantName: "Acme Corp",
				TenantSlug: "acme-corp",
				Email:      "owner@acme.test",
				Password:   "hunter22hunter22",
				FirstName:  "Ada",
				LastName:   "Lovelace",
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrRegistrationRejected)

			appErr, ok := domainerrors.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantDetail, appErr.Details())
		})
	}
}

func TestHTTPGateway_FetchIdentity_AttachesBearer(t *testing.T) {
	store := mockRepo.NewMockCredentialStore(t)
	store.EXPECT().Get(repository.KeyAccessToken).Return("stored-token", nil)

	gw := newGatewayForTest(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]string{
			"id":         "usr_01",
			"email":      "owner@acme.test",
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"role":       "owner",
			"tenant_id":  "ten_01",
		})
	}))

	identity, err := gw.FetchIdentity(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "usr_01", identity.ID)
	assert.Equal(t, "ten_01", identity.TenantID)
	assert.Equal(t, "Ada Lovelace", identity.FullName())
}

func TestHTTPGateway_FetchIdentity_Unauthorized(t *testing.T) {
	store := anonymousStore(t)
	gw := newGatewayForTest(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No bearer header arrives when nothing is stored.
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := gw.FetchIdentity(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestHTTPGateway_FetchIdentity_BackendDown(t *testing.T) {
	store := anonymousStore(t)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	cfg := &config.Config{}
	cfg.Gateway.BaseURL = backend.URL + "/api/v1"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := NewHTTPGateway(Params{Config: cfg, Store: store, Logger: logger})

	_, err := gw.FetchIdentity(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGatewayUnavailable)
}

func TestHTTPGateway_ClearLocalSession_SwallowsStorageErrors(t *testing.T) {
	store := mockRepo.NewMockCredentialStore(t)
	store.EXPECT().ClearPair().
		Return(domainerrors.ErrStorageUnavailable.WrapMessage("failed to replace credential file"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Gateway.BaseURL = "http://localhost:0"
	gw := NewHTTPGateway(Params{Config: cfg, Store: store, Logger: logger})

	gw.ClearLocalSession()
}
