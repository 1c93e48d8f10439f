// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "billdesk/internal/delivery/context"
	"billdesk/internal/domain/entity"
	domainerrors "billdesk/internal/domain/errors"
	"billdesk/internal/domain/repository"
	"billdesk/internal/domain/service"
	"billdesk/internal/errors"
	"billdesk/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// sessionService implements the SessionUsecase interface. It is the only
// writer of the session state and the only caller of the credential store;
// the view layer reads snapshots and never mutates.
type sessionService struct {
	store   repository.CredentialStore
	gateway service.SessionGateway
	logger  *slog.Logger

	mu          sync.Mutex
	initialized bool
	identity    *entity.Identity
	// epoch increments on every logout. A sign-in completion applies only if
	// the epoch still matches the value captured at initiation; a stale
	// completion is discarded (ignore-stale-response).
	epoch uint64

	// flight collapses duplicate concurrent bootstrap/login/register calls so
	// a second caller observes the in-flight call's result instead of racing it.
	flight singleflight.Group
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store   repository.CredentialStore
	Gateway service.SessionGateway
	Logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:   params.Store,
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Bootstrap performs the one-time startup determination. With no stored
// access token the session becomes anonymous without any gateway call. With a
// token present the identity is fetched; on rejection or gateway failure the
// stale credentials are purged rather than retried, so the guard cannot wedge
// the application in a perpetual loading state.
func (srv *sessionService) Bootstrap(ctx context.Context) error {
	_, err, _ := srv.flight.Do("bootstrap", func() (any, error) {
		return nil, srv.doBootstrap(ctx)
	})

	return err
}

func (srv *sessionService) doBootstrap(ctx context.Context) error {
	srv.mu.Lock()
	if srv.initialized {
		srv.mu.Unlock()

		return nil
	}
	srv.mu.Unlock()

	token, err := srv.store.Get(repository.KeyAccessToken)
	if err != nil {
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			// Storage unavailable behaves the same as "no token present".
			srv.log(ctx).Warn("Credential store unavailable during bootstrap", slog.Any("error", err))
		}
		srv.finishBootstrap(nil)

		return nil
	}
	if token == "" {
		srv.finishBootstrap(nil)

		return nil
	}

	identity, err := srv.gateway.FetchIdentity(ctx)
	if err != nil {
		srv.gateway.ClearLocalSession()
		srv.finishBootstrap(nil)

		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			// Expected recoverable condition: the stored token went stale.
			srv.log(ctx).Info("Stored credentials rejected, purged", slog.Any("error", err))

			return nil
		}
		srv.log(ctx).Warn("Identity fetch failed during bootstrap, credentials purged", slog.Any("error", err))

		return errors.Wrap(err, "failed to fetch identity during bootstrap")
	}

	srv.finishBootstrap(identity)
	srv.log(ctx).Debug("Bootstrap completed", slog.String("email", identity.Email), slog.String("tenantID", identity.TenantID))

	return nil
}

// finishBootstrap latches initialized; it never reverts afterwards.
func (srv *sessionService) finishBootstrap(identity *entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.initialized = true
	srv.identity = identity
}

// Login orchestrates the sign-in sequence: authenticate, persist the token
// pair atomically, then fetch and cache the identity.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	result, err, _ := srv.flight.Do("login", func() (any, error) {
		return srv.doLogin(ctx, input)
	})
	if err != nil {
		return nil, err
	}

	out, ok := result.(*usecase.LoginOutput)
	if !ok {
		return nil, errors.New("unexpected login result type")
	}

	return out, nil
}

func (srv *sessionService) doLogin(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	started := srv.currentEpoch()

	pair, err := srv.gateway.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	identity, err := srv.completeSignIn(ctx, started, pair)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", identity.ID))

	return &usecase.LoginOutput{Identity: identity}, nil
}

// Register orchestrates tenant provisioning plus first sign-in. The tenant
// slug is forwarded to the gateway exactly as supplied by the caller.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	result, err, _ := srv.flight.Do("register", func() (any, error) {
		return srv.doRegister(ctx, input)
	})
	if err != nil {
		return nil, err
	}

	out, ok := result.(*usecase.RegisterOutput)
	if !ok {
		return nil, errors.New("unexpected register result type")
	}

	return out, nil
}

func (srv *sessionService) doRegister(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email), slog.String("tenantSlug", input.TenantSlug))

	started := srv.currentEpoch()

	pair, err := srv.gateway.Register(ctx, &service.RegisterInput{
		TenantName: input.TenantName,
		TenantSlug: input.TenantSlug,
		Email:      input.Email,
		Password:   input.Password,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "registration failed")
	}

	identity, err := srv.completeSignIn(ctx, started, pair)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Tenant registered and signed in", slog.String("userID", identity.ID), slog.String("tenantID", identity.TenantID))

	return &usecase.RegisterOutput{Identity: identity}, nil
}

// completeSignIn persists the freshly issued pair and fetches the identity,
// applying the result only if no logout intervened since the operation
// started.
//
// If the identity fetch fails after the token write, the tokens are
// deliberately retained: a later bootstrap can retry the fetch alone without
// re-authenticating.
func (srv *sessionService) completeSignIn(ctx context.Context, started uint64, pair *entity.TokenPair) (*entity.Identity, error) {
	if srv.currentEpoch() != started {
		return nil, domainerrors.ErrSessionSuperseded.WrapMessage("sign-out issued before tokens were persisted")
	}

	if err := srv.store.SetPair(pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist token pair")
	}

	identity, err := srv.gateway.FetchIdentity(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch identity after sign-in")
	}

	srv.mu.Lock()
	if srv.epoch != started {
		srv.mu.Unlock()
		// A logout won the race after the token write; do not resurrect
		// the credentials it cleared.
		if clearErr := srv.store.ClearPair(); clearErr != nil {
			srv.log(ctx).Warn("Failed to clear tokens for superseded sign-in", slog.Any("error", clearErr))
		}

		return nil, domainerrors.ErrSessionSuperseded.WrapMessage("sign-out issued while sign-in was in flight")
	}
	srv.identity = identity
	srv.mu.Unlock()

	return identity, nil
}

// Logout clears tokens and identity synchronously: the local session is
// removed first, then the cached identity, with no network round trip. The
// epoch bump invalidates any sign-in still in flight.
func (srv *sessionService) Logout() {
	srv.gateway.ClearLocalSession()

	srv.mu.Lock()
	srv.epoch++
	srv.identity = nil
	srv.mu.Unlock()

	srv.logger.Debug("Signed out")
}

// Snapshot returns the current observable session state. The identity is
// copied so consumers cannot mutate the cached value.
func (srv *sessionService) Snapshot() entity.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state := entity.SessionState{Initialized: srv.initialized}
	if srv.identity != nil {
		identity := *srv.identity
		state.Identity = &identity
	}

	return state
}

func (srv *sessionService) currentEpoch() uint64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.epoch
}
