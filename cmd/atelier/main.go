package main

import (
	"context"
	"log/slog"
	"os"

	"atelier/config"
	"atelier/internal/delivery"
	"atelier/internal/delivery/http"
	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router/handler"
	"atelier/internal/domain/service"
	"atelier/internal/infra/auth"
	logs "atelier/internal/infra/log"
	"atelier/internal/infra/mail"
	"atelier/internal/infra/persistence/postgres"
	"atelier/internal/infra/qr"
	"atelier/internal/infra/storage"
	"atelier/internal/observability"
	"atelier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
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
			impl.NewSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		observability.NewMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewSessionRepository,
			postgres.NewRecoveryRepository,
			postgres.NewArticleRepository,
			postgres.NewProjectRepository,
			postgres.NewOfferingRepository,
			postgres.NewInquiryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTCodec,
			newMailer,
			storage.New,
			newShareQRService,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newMailer picks the SMTP mailer when configured and a logging no-op
// otherwise, so local development works without a mail server.
func newMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return mail.NewDiscardMailer(logger), nil
	}

	return mail.NewSMTPMailer(cfg, logger)
}

// newShareQRService creates a share QR service with dependency injection
func newShareQRService(cfg *config.Config) service.ShareQRService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qr.NewShareQRService(256, "M", "")
	}

	return qr.NewShareQRService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewArticleService,
			impl.NewProjectService,
			impl.NewOfferingService,
			impl.NewInquiryService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewArticleHandler,
			handler.NewProjectHandler,
			handler.NewOfferingHandler,
			handler.NewInquiryHandler,
			handler.NewMediaHandler,
			handler.NewHealthHandler,
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
