package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
	"github.com/ludo-authority/ludo-backend/transport/view"
)

var errMissingParam = errors.New("missing or malformed request parameter")

type gameUseCase interface {
	CreateMatch(ctx context.Context) (*entity.Match, error)
	JoinMatch(ctx context.Context, matchID, name string) (*entity.Match, error)
	StartMatch(ctx context.Context, matchID string) (*entity.Match, error)
	RollDice(ctx context.Context, matchID string, playerIndex int) (*entity.Match, error)
	MoveToken(ctx context.Context, matchID string, playerIndex, tokenIndex int) (*entity.Match, error)
	GetMatch(ctx context.Context, matchID string) (*entity.Match, error)
}

type Handlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewHandlers(logger *slog.Logger, game gameUseCase) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	ErrorCode string    `json:"errorCode"`
}

func (that *Handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

func (that *Handlers) CreateGame(ctx echo.Context) error {
	match, err := that.game.CreateMatch(ctx.Request().Context())
	return that.respond(ctx, "CreateGame", match, err)
}

func (that *Handlers) AddPlayer(ctx echo.Context) error {
	gameID := ctx.QueryParam("gameId")
	if gameID == "" {
		return that.badRequest(ctx, "gameId")
	}

	match, err := that.game.JoinMatch(ctx.Request().Context(), gameID, ctx.QueryParam("playerName"))
	return that.respond(ctx, "AddPlayer", match, err)
}

func (that *Handlers) StartGame(ctx echo.Context) error {
	gameID := ctx.QueryParam("gameId")
	if gameID == "" {
		return that.badRequest(ctx, "gameId")
	}

	match, err := that.game.StartMatch(ctx.Request().Context(), gameID)
	return that.respond(ctx, "StartGame", match, err)
}

func (that *Handlers) RollDice(ctx echo.Context) error {
	gameID := ctx.QueryParam("gameId")
	if gameID == "" {
		return that.badRequest(ctx, "gameId")
	}

	playerIndex, err := strconv.Atoi(ctx.QueryParam("playerIndex"))
	if err != nil {
		return that.badRequest(ctx, "playerIndex")
	}

	match, err := that.game.RollDice(ctx.Request().Context(), gameID, playerIndex)
	return that.respond(ctx, "RollDice", match, err)
}

func (that *Handlers) MoveToken(ctx echo.Context) error {
	gameID := ctx.QueryParam("gameId")
	if gameID == "" {
		return that.badRequest(ctx, "gameId")
	}

	playerIndex, err := strconv.Atoi(ctx.QueryParam("playerIndex"))
	if err != nil {
		return that.badRequest(ctx, "playerIndex")
	}

	tokenIndex, err := strconv.Atoi(ctx.QueryParam("tokenIndex"))
	if err != nil {
		return that.badRequest(ctx, "tokenIndex")
	}

	match, err := that.game.MoveToken(ctx.Request().Context(), gameID, playerIndex, tokenIndex)
	return that.respond(ctx, "MoveToken", match, err)
}

func (that *Handlers) GetGameState(ctx echo.Context) error {
	gameID := ctx.QueryParam("gameId")
	if gameID == "" {
		return that.badRequest(ctx, "gameId")
	}

	match, err := that.game.GetMatch(ctx.Request().Context(), gameID)
	return that.respond(ctx, "GetGameState", match, err)
}

func (that *Handlers) respond(ctx echo.Context, method string, match *entity.Match, err error) error {
	if err == nil {
		return ctx.JSON(http.StatusOK, view.NewMatchView(match))
	}

	log := that.logger.With("method", method)

	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status, code = http.StatusNotFound, "GAME_NOT_FOUND"
		log.Warn("game not found", "error", err)
	case errors.Is(err, apperror.ErrInvalidAction):
		status, code = http.StatusBadRequest, "INVALID_ACTION"
		log.Warn("invalid action", "error", err)
	default:
		log.Error("unexpected error", "error", err)
	}

	return ctx.JSON(status, newErrorResponse(status, code, err.Error()))
}

func (that *Handlers) badRequest(ctx echo.Context, param string) error {
	return ctx.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "INVALID_ACTION", errMissingParam.Error()+": "+param))
}

func newErrorResponse(status int, code, message string) errorResponse {
	return errorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		ErrorCode: code,
	}
}
