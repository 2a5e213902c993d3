package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiPrefix       = "/ludo/backend/v1"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

// New - builds the HTTP server with the game API, metrics and live updates mounted.
func New(logger *slog.Logger, handlers *Handlers, allowedOrigins []string, metrics, live http.Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodPatch},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	e.GET("/ping", handlers.Ping)
	e.GET("/metrics", echo.WrapHandler(metrics))
	e.GET("/ws", echo.WrapHandler(live))

	api := e.Group(apiPrefix)
	api.GET("/createGame", handlers.CreateGame)
	api.POST("/addPlayer", handlers.AddPlayer)
	api.POST("/startGame", handlers.StartGame)
	api.POST("/rollDice/playerIndex", handlers.RollDice)
	api.POST("/moveToken/playerIndex", handlers.MoveToken)
	api.GET("/getGameState", handlers.GetGameState)

	return &Server{
		logger: logger.With("component", "rest"),
		echo:   e,
	}
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- that.echo.Start(":" + port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		that.logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

func (that *Server) Handler() http.Handler {
	return that.echo
}
