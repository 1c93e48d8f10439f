package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"billdesk/internal/delivery/http/validator"
	"billdesk/internal/domain/entity"
	domainerrors "billdesk/internal/domain/errors"
	mockUsecase "billdesk/internal/mocks/usecase"
	"billdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerForTest(t *testing.T) (*SessionHandler, *mockUsecase.MockSessionUsecase, *mockUsecase.MockNotifierUsecase) {
	t.Helper()
	session := mockUsecase.NewMockSessionUsecase(t)
	notifier := mockUsecase.NewMockNotifierUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewSessionHandler(session, notifier, NewPageHandler(), logger)

	return h, session, notifier
}

func postForm(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionHandler_Login_Success(t *testing.T) {
	h, session, _ := newHandlerForTest(t)

	session.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "owner@acme.test", Password: "hunter22"}).
		Return(&usecase.LoginOutput{Identity: &entity.Identity{ID: "usr_01"}}, nil)

	c, rec := postForm(t, "/login", url.Values{
		"email":    {"owner@acme.test"},
		"password": {"hunter22"},
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionHandler_Login_MissingFields(t *testing.T) {
	h, _, _ := newHandlerForTest(t)

	// Validation fails before any usecase call; the mock would flag one.
	c, rec := postForm(t, "/login", url.Values{"email": {"owner@acme.test"}})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and password are required")
}

func TestSessionHandler_Login_InvalidCredentialsInline(t *testing.T) {
	h, session, _ := newHandlerForTest(t)

	session.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("backend rejected login"))

	c, rec := postForm(t, "/login", url.Values{
		"email":    {"owner@acme.test"},
		"password": {"wrong"},
	})

	// User-correctable: shown inline on the form, no notification raised.
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "incorrect email or password")
}

func TestSessionHandler_Login_GatewayDownRaisesNotification(t *testing.T) {
	h, session, notifier := newHandlerForTest(t)

	session.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrGatewayUnavailable.WrapMessage("login request failed"))
	notifier.EXPECT().
		Enqueue("billing service is unreachable", entity.SeverityError, time.Duration(0)).
		Return(uuid.New())

	c, rec := postForm(t, "/login", url.Values{
		"email":    {"owner@acme.test"},
		"password": {"hunter22"},
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "billing service is unreachable")
}

func TestSessionHandler_Register_RejectionShowsBackendReason(t *testing.T) {
	h, session, _ := newHandlerForTest(t)

	rejection := domainerrors.ErrRegistrationRejected.
		WithDetails("tenant slug already taken").
		WrapMessage("backend rejected registration")
	session.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, rejection)

	c, rec := postForm(t, "/register", url.Values{
		"tenant_name": {"Acme Corp"},
		"tenant_slug": {"acme-corp"},
		"email":       {"owner@acme.test"},
		"password":    {"hunter22hunter22"},
		"first_name":  {"Ada"},
		"last_name":   {"Lovelace"},
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tenant slug already taken")
}

func TestSessionHandler_Register_ShortPassword(t *testing.T) {
	h, _, _ := newHandlerForTest(t)

	c, rec := postForm(t, "/register", url.Values{
		"tenant_name": {"Acme Corp"},
		"tenant_slug": {"acme-corp"},
		"email":       {"owner@acme.test"},
		"password":    {"short"},
		"first_name":  {"Ada"},
		"last_name":   {"Lovelace"},
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 8 characters")
}

func TestSessionHandler_Logout_RedirectsToLogin(t *testing.T) {
	h, session, _ := newHandlerForTest(t)

	session.EXPECT().Logout()

	c, rec := postForm(t, "/logout", url.Values{})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}
