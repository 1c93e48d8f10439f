package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"billdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PageHandler renders the minimal view shells the guard gates. Presentation
// is deliberately bare; the pages exist so the navigation flow is exercised
// end to end.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Dashboard renders the protected landing view for the signed-in principal.
func (h *PageHandler) Dashboard(c echo.Context) error {
	identity, _ := c.Get("identity").(*entity.Identity)
	if identity == nil {
		// The guard sets the identity before mounting this view.
		return c.Redirect(http.StatusFound, "/login")
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>billdesk</title></head>
<body>
<h1>Welcome, %s</h1>
<p>Signed in as %s (%s) in tenant %s.</p>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>
</body>
</html>`,
		template.HTMLEscapeString(identity.FullName()),
		template.HTMLEscapeString(identity.Email),
		template.HTMLEscapeString(string(identity.Role)),
		template.HTMLEscapeString(identity.TenantID))

	return c.HTML(http.StatusOK, page)
}

// LoginPage renders the sign-in form.
func (h *PageHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, "")
}

// RegisterPage renders the registration form.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return h.renderRegister(c, "")
}

func (h *PageHandler) renderLogin(c echo.Context, message string) error {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Sign in</title></head>
<body>
<h1>Sign in</h1>
%s
<form method="post" action="/login">
<input name="email" type="email" placeholder="Email">
<input name="password" type="password" placeholder="Password">
<button type="submit">Sign in</button>
</form>
<p><a href="/register">Create a tenant</a></p>
</body>
</html>`, inlineMessage(message))

	return c.HTML(http.StatusOK, page)
}

func (h *PageHandler) renderRegister(c echo.Context, message string) error {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Register</title></head>
<body>
<h1>Create your tenant</h1>
%s
<form method="post" action="/register">
<input name="tenant_name" placeholder="Company name">
<input name="tenant_slug" placeholder="Slug">
<input name="email" type="email" placeholder="Email">
<input name="password" type="password" placeholder="Password">
<input name="first_name" placeholder="First name">
<input name="last_name" placeholder="Last name">
<button type="submit">Register</button>
</form>
<p><a href="/login">Back to sign in</a></p>
</body>
</html>`, inlineMessage(message))

	return c.HTML(http.StatusOK, page)
}

func inlineMessage(message string) string {
	if message == "" {
		return ""
	}

	return "<p class=\"error\">" + template.HTMLEscapeString(message) + "</p>"
}
