package middleware

import (
	"net/http"

	"billdesk/internal/domain/entity"
	"billdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware gates protected views on the session snapshot. It is a pure
// function of the snapshot: it issues no network calls and touches no
// storage. While the session is still bootstrapping it renders a loading
// placeholder and never the login redirect, so an authenticated visitor is
// not bounced through /login on a slow startup.
type GuardMiddleware struct {
	session usecase.SessionUsecase
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(session usecase.SessionUsecase) *GuardMiddleware {
	return &GuardMiddleware{session: session}
}

const loadingPage = `<!DOCTYPE html>
<html>
<head><meta http-equiv="refresh" content="1"><title>Loading</title></head>
<body><p>Loading…</p></body>
</html>`

// RequireSession mounts the protected subtree only for an authenticated
// session.
func (m *GuardMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := m.session.Snapshot()

		switch state.Phase() {
		case entity.PhaseBootstrapping:
			return c.HTML(http.StatusOK, loadingPage)
		case entity.PhaseAnonymous:
			return c.Redirect(http.StatusFound, "/login")
		default:
			c.Set("identity", state.Identity)

			return next(c)
		}
	}
}

// RedirectAuthenticated sends an already signed-in visitor from the login and
// registration views back to the dashboard.
func (m *GuardMiddleware) RedirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.session.Snapshot().Phase() == entity.PhaseAuthenticated {
			return c.Redirect(http.StatusFound, "/")
		}

		return next(c)
	}
}
