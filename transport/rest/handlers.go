package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

const qrSize = 320

type Handlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params)
	GetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	DeleteGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	SetPlayerNames(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	PlaceMarker(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	ResetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	GameQRCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params)

	ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params)
	SaveUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
}

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	SetPlayerNames(ctx context.Context, gameID, player1, player2 string) (*entity.Game, error)
	PlaceMarker(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type presenceUseCase interface {
	SaveProfile(ctx context.Context, id, fullName string) (*entity.Profile, error)
	ListProfiles(ctx context.Context, excludeID string) ([]*entity.Profile, error)
}

type handlers struct {
	logger    *slog.Logger
	publicURL string

	game     gameUseCase
	presence presenceUseCase
}

// NewHandlers - publicURL is the base of share links, the request host is used when it is empty.
func NewHandlers(logger *slog.Logger, publicURL string, game gameUseCase, presence presenceUseCase) Handlers {
	return &handlers{
		logger:    logger.With("component", "rest"),
		publicURL: strings.TrimSuffix(publicURL, "/"),
		game:      game,
		presence:  presence,
	}
}

type namesRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type profileRequest struct {
	FullName string `json:"full_name"`
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "CreateGame")

	game, err := that.game.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entity.NewGameView(game))
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "GetGame", "gameID", ps.ByName("id"))

	game, err := that.game.GetGame(r.Context(), ps.ByName("id"))
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, entity.NewGameView(game))
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "DeleteGame", "gameID", ps.ByName("id"))

	if err := that.game.DeleteGame(r.Context(), ps.ByName("id")); err != nil {
		that.writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) SetPlayerNames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "SetPlayerNames", "gameID", ps.ByName("id"))

	var req namesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.game.SetPlayerNames(r.Context(), ps.ByName("id"), req.Player1, req.Player2)
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, entity.NewGameView(game))
}

func (that *handlers) PlaceMarker(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "PlaceMarker", "gameID", ps.ByName("id"))

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	game, err := that.game.PlaceMarker(r.Context(), ps.ByName("id"), *req.Cell)
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, entity.NewGameView(game))
}

func (that *handlers) ResetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "ResetGame", "gameID", ps.ByName("id"))

	game, err := that.game.ResetGame(r.Context(), ps.ByName("id"))
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, entity.NewGameView(game))
}

// GameQRCode - PNG QR code pointing at the game's share link.
func (that *handlers) GameQRCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "GameQRCode", "gameID", ps.ByName("id"))

	game, err := that.game.GetGame(r.Context(), ps.ByName("id"))
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	png, err := qrcode.Encode(that.shareURL(r, game.ID), qrcode.Medium, qrSize)
	if err != nil {
		that.writeError(w, log, fmt.Errorf("failed to encode qr code: %w", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err = w.Write(png); err != nil {
		log.Error("failed to write qr code", "error", err)
	}
}

func (that *handlers) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "ListUsers")

	profiles, err := that.presence.ListProfiles(r.Context(), r.URL.Query().Get("exclude"))
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (that *handlers) SaveUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "SaveUser", "userID", ps.ByName("id"))

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	profile, err := that.presence.SaveProfile(r.Context(), ps.ByName("id"), req.FullName)
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (that *handlers) shareURL(r *http.Request, gameID string) string {
	if that.publicURL != "" {
		return that.publicURL + "/games/" + gameID
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host + "/games/" + gameID
}

func (that *handlers) writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrProfileNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrProfileNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidCell):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCell.Error()})
	case apperror.IsNameError(err):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
