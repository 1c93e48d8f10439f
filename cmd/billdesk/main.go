package main

import (
	"context"
	"log/slog"

	"billdesk/config"
	"billdesk/internal/delivery"
	"billdesk/internal/delivery/http"
	"billdesk/internal/delivery/http/middleware"
	"billdesk/internal/delivery/http/router/handler"
	"billdesk/internal/delivery/term"
	"billdesk/internal/domain/entity"
	"billdesk/internal/infra/credstore"
	"billdesk/internal/infra/gateway"
	logs "billdesk/internal/infra/log"
	"billdesk/internal/usecase"
	"billdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startParams struct {
	fx.In
	fx.Lifecycle

	Session    usecase.SessionUsecase
	Notifier   usecase.NotifierUsecase
	ToastSink  *term.ToastSink
	Deliveries []delivery.Delivery `group:"deliveries"`
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			start,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			credstore.NewFileStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gateway.NewHTTPGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewNotifierService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			term.NewToastSink,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewSessionHandler,
		),
	)
}

// start bootstraps the session from persisted credentials, then brings up the
// delivery surfaces. The guard renders a loading placeholder until the
// bootstrap determination lands.
func start(params startParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := params.Session.Bootstrap(context.Background()); err != nil {
					// Surfaced as a transient notification; the session is
					// already anonymous with credentials purged.
					params.Notifier.Enqueue(err.Error(), entity.SeverityError, 0)
				}
			}()

			for _, d := range params.Deliveries {
				go func(d delivery.Delivery) {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Delivery stopped", slog.Any("error", err))
					}
				}(d)
			}

			return nil
		},
	})
}
