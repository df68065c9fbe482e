package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"atelier/config"
	"atelier/internal/delivery"
	httpmiddleware "atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router"
	"atelier/internal/delivery/http/validator"
	deliverymiddleware "atelier/internal/delivery/middleware"
	"atelier/internal/domain/lifecycle"
	"atelier/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// HTTPParams holds dependencies for the HTTP server, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server with its middleware chain and routes.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before the loggers so every request
	//    log carries the request_id)
	requestIDMiddleware := deliverymiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Request logging
	echoServer.Use(slogecho.New(params.Logger))

	// 4. Extra per-request detail, only emitted in debug mode
	loggerMiddleware := deliverymiddleware.NewLoggerMiddleware(params.Logger, params.Config)
	echoServer.Use(loggerMiddleware.Handle)

	// 5. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
