// Package gateway implements the SessionGateway contract over the billing
// backend's REST API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"billdesk/config"
	"billdesk/internal/domain/entity"
	domainerrors "billdesk/internal/domain/errors"
	"billdesk/internal/domain/repository"
	"billdesk/internal/domain/service"
	"billdesk/internal/errors"

	"go.uber.org/fx"
)

// httpGateway performs one round trip per operation and maps backend
// rejections onto the domain error taxonomy.
type httpGateway struct {
	baseURL string
	client  *http.Client
	store   repository.CredentialStore
	logger  *slog.Logger
}

// Params defines the parameters required for the HTTP gateway.
type Params struct {
	fx.In

	Config *config.Config
	Store  repository.CredentialStore
	Logger *slog.Logger
}

// NewHTTPGateway is the constructor for httpGateway.
func NewHTTPGateway(params Params) service.SessionGateway {
	return &httpGateway{
		baseURL: strings.TrimRight(params.Config.Gateway.BaseURL, "/"),
		client: &http.Client{
			Timeout:   params.Config.Gateway.Timeout,
			Transport: newBearerTransport(params.Store),
		},
		store:  params.Store,
		logger: params.Logger,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type identityResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	TenantID  string `json:"tenant_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	TenantName string `json:"tenant_name"`
	TenantSlug string `json:"tenant_slug"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// errorBody matches the backend's rejection payload.
type errorBody struct {
	Detail string `json:"detail"`
}

// Authenticate exchanges credentials for a token pair.
func (g *httpGateway) Authenticate(ctx context.Context, email, password string) (*entity.TokenPair, error) {
	resp, err := g.post(ctx, "/auth/login", &loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("backend rejected login")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("unexpected login response status " + resp.Status)
	}

	return decodeTokenPair(resp.Body)
}

// Register provisions a tenant plus initial user. The tenant slug travels to
// the backend exactly as supplied.
func (g *httpGateway) Register(ctx context.Context, input *service.RegisterInput) (*entity.TokenPair, error) {
	resp, err := g.post(ctx, "/auth/register", &registerRequest{
		TenantName: input.TenantName,
		TenantSlug: input.TenantSlug,
		Email:      input.Email,
		Password:   input.Password,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict ||
		resp.StatusCode == http.StatusUnprocessableEntity:
		reason := decodeDetail(resp.Body)

		return nil, domainerrors.ErrRegistrationRejected.WithDetails(reason).WrapMessage("backend rejected registration")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("unexpected register response status " + resp.Status)
	}

	return decodeTokenPair(resp.Body)
}

// FetchIdentity returns the principal behind the access token the transport
// attaches implicitly.
func (g *httpGateway) FetchIdentity(ctx context.Context) (*entity.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/users/me", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build identity request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("identity request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("backend rejected access token")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("unexpected identity response status " + resp.Status)
	}

	body := &identityResponse{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("failed to decode identity response")
	}

	return &entity.Identity{
		ID:        body.ID,
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Role:      entity.Role(body.Role),
		TenantID:  body.TenantID,
	}, nil
}

// ClearLocalSession removes both tokens from the credential store. Storage
// failures are logged and swallowed; the operation never fails.
func (g *httpGateway) ClearLocalSession() {
	if err := g.store.ClearPair(); err != nil {
		g.logger.Warn("Failed to clear local session", slog.Any("error", err))
	}
}

func (g *httpGateway) post(ctx context.Context, path string, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s request", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s request", path)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage(path + " request failed")
	}

	return resp, nil
}

func decodeTokenPair(r io.Reader) (*entity.TokenPair, error) {
	body := &tokenResponse{}
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage("failed to decode token response")
	}

	return &entity.TokenPair{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		TokenType:    body.TokenType,
	}, nil
}

func decodeDetail(r io.Reader) string {
	body := &errorBody{}
	if err := json.NewDecoder(r).Decode(body); err != nil || body.Detail == "" {
		return "registration failed"
	}

	return body.Detail
}
