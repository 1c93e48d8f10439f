// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"billdesk/internal/domain/entity"
	domainerrors "billdesk/internal/domain/errors"
	"billdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves the sign-in, registration and sign-out actions.
type SessionHandler struct {
	session  usecase.SessionUsecase
	notifier usecase.NotifierUsecase
	pages    *PageHandler
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase, notifier usecase.NotifierUsecase, pages *PageHandler, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session:  session,
		notifier: notifier,
		pages:    pages,
		logger:   logger,
	}
}

type loginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type registerForm struct {
	TenantName string `form:"tenant_name" json:"tenant_name"`
	TenantSlug string `form:"tenant_slug" json:"tenant_slug"`
	Email      string `form:"email" json:"email"`
	Password   string `form:"password" json:"password"`
	FirstName  string `form:"first_name" json:"first_name"`
	LastName   string `form:"last_name" json:"last_name"`
}

// Login handles the login form submission.
func (h *SessionHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.pages.renderLogin(c, "Invalid login input")
	}

	input := &usecase.LoginInput{Email: form.Email, Password: form.Password}
	if err := c.Validate(input); err != nil {
		return h.pages.renderLogin(c, "Email and password are required")
	}

	if _, err := h.session.Login(c.Request().Context(), input); err != nil {
		return h.failSignIn(c, err, h.pages.renderLogin)
	}

	return c.Redirect(http.StatusFound, "/")
}

// Register handles the registration form submission.
func (h *SessionHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.pages.renderRegister(c, "Invalid registration input")
	}

	input := &usecase.RegisterInput{
		TenantName: form.TenantName,
		TenantSlug: form.TenantSlug,
		Email:      form.Email,
		Password:   form.Password,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
	}
	if err := c.Validate(input); err != nil {
		return h.pages.renderRegister(c, "All fields are required; passwords need at least 8 characters")
	}

	if _, err := h.session.Register(c.Request().Context(), input); err != nil {
		return h.failSignIn(c, err, h.pages.renderRegister)
	}

	return c.Redirect(http.StatusFound, "/")
}

// Logout handles the sign-out action. It is synchronous and always succeeds.
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout()

	return c.Redirect(http.StatusFound, "/login")
}

// failSignIn maps a sign-in failure onto the form: user-correctable errors
// are shown inline; infrastructure failures additionally raise a transient
// notification. Nothing is retried automatically.
func (h *SessionHandler) failSignIn(c echo.Context, err error, render func(echo.Context, string) error) error {
	appErr, ok := domainerrors.FromError(err)
	if !ok {
		h.logger.Error("Sign-in failed with unclassified error", slog.Any("error", err))

		return render(c, "Something went wrong, please try again")
	}

	message := appErr.Message()
	if details := appErr.Details(); details != "" {
		message = details
	}

	if !domainerrors.IsUserCorrectable(err) {
		h.notifier.Enqueue(message, entity.SeverityError, 0)
	}

	return render(c, message)
}
