package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"billdesk/internal/domain/entity"
	mockUsecase "billdesk/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestGuardMiddleware_RequireSession_Bootstrapping(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Snapshot().Return(entity.SessionState{Initialized: false})

	guard := NewGuardMiddleware(session)
	c, rec := newGuardTestContext(t)

	nextCalled := false
	err := guard.RequireSession(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading")
	// Never a login redirect while the startup determination is pending.
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestGuardMiddleware_RequireSession_Anonymous(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Snapshot().Return(entity.SessionState{Initialized: true})

	guard := NewGuardMiddleware(session)
	c, rec := newGuardTestContext(t)

	nextCalled := false
	err := guard.RequireSession(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestGuardMiddleware_RequireSession_Authenticated(t *testing.T) {
	identity := &entity.Identity{ID: "usr_01", Email: "owner@acme.test", Role: entity.RoleOwner, TenantID: "ten_01"}
	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Snapshot().Return(entity.SessionState{Initialized: true, Identity: identity})

	guard := NewGuardMiddleware(session)
	c, _ := newGuardTestContext(t)

	nextCalled := false
	err := guard.RequireSession(func(c echo.Context) error {
		nextCalled = true
		got, ok := c.Get("identity").(*entity.Identity)
		require.True(t, ok)
		assert.Equal(t, "usr_01", got.ID)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestGuardMiddleware_RedirectAuthenticated_SignedIn(t *testing.T) {
	identity := &entity.Identity{ID: "usr_01"}
	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Snapshot().Return(entity.SessionState{Initialized: true, Identity: identity})

	guard := NewGuardMiddleware(session)
	c, rec := newGuardTestContext(t)

	err := guard.RedirectAuthenticated(func(echo.Context) error {
		t.Fatal("next should not run for an authenticated session")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestGuardMiddleware_RedirectAuthenticated_PassesThrough(t *testing.T) {
	tests := []struct {
		name  string
		state entity.SessionState
	}{
		{"bootstrapping", entity.SessionState{Initialized: false}},
		{"anonymous", entity.SessionState{Initialized: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mockUsecase.NewMockSessionUsecase(t)
			session.EXPECT().Snapshot().Return(tt.state)

			guard := NewGuardMiddleware(session)
			c, _ := newGuardTestContext(t)

			nextCalled := false
			err := guard.RedirectAuthenticated(func(echo.Context) error {
				nextCalled = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.True(t, nextCalled)
		})
	}
}
