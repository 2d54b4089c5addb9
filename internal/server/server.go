package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
	"github.com/ChizhovVadim/CounterXO/pkg/engine"
)

type Handler struct {
	logger  *zap.SugaredLogger
	options engine.Options
}

func NewHandler(logger *zap.SugaredLogger, options engine.Options) *Handler {
	return &Handler{
		logger:  logger,
		options: options,
	}
}

func (h *Handler) Router() chi.Router {
	var r = chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Post("/bestmove", h.bestMove)
	return r
}

type bestMoveRequest struct {
	Board    string `json:"board"`
	Piece    string `json:"piece,omitempty"`
	Parallel *bool  `json:"parallel,omitempty"`
}

type candidate struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

type bestMoveResponse struct {
	Move       string      `json:"move"`
	X          int         `json:"x"`
	Y          int         `json:"y"`
	Piece      string      `json:"piece"`
	Score      int         `json:"score"`
	Nodes      int64       `json:"nodes"`
	Candidates []candidate `json:"candidates"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) bestMove(w http.ResponseWriter, r *http.Request) {
	var req bestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("json unmarshalling error: %w", err))
		return
	}
	var params, err = req.searchParams()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var options = h.options
	if req.Parallel != nil {
		options.Parallel = *req.Parallel
	}
	si, err := engine.NewEngine(options).Search(r.Context(), params)
	if err != nil {
		if errors.Is(err, engine.ErrGameOver) || errors.Is(err, engine.ErrNoLegalMoves) {
			writeError(w, http.StatusConflict, err)
			return
		}
		h.logger.Errorw("search failed",
			"board", params.Board,
			"requestID", middleware.GetReqID(r.Context()),
			"error", err)
		writeInternalError(w)
		return
	}

	var resp = bestMoveResponse{
		Move:  si.Move.String(),
		X:     si.Move.X,
		Y:     si.Move.Y,
		Piece: params.Piece.String(),
		Score: si.Score,
		Nodes: si.Nodes,
	}
	for _, c := range si.Candidates {
		resp.Candidates = append(resp.Candidates, candidate{Move: c.Move.String(), Score: c.Score})
	}
	writeResponse(w, http.StatusOK, resp)
}

// searchParams takes the side to move from the piece counts unless the request names it.
func (req *bestMoveRequest) searchParams() (common.SearchParams, error) {
	var board, err = common.ParseBoard(req.Board)
	if err != nil {
		return common.SearchParams{}, err
	}
	var piece common.Piece
	if req.Piece != "" {
		piece, err = common.ParsePiece(req.Piece)
		if err != nil {
			return common.SearchParams{}, err
		}
	} else {
		var ok bool
		piece, ok = board.SideToMove()
		if !ok {
			return common.SearchParams{}, fmt.Errorf("%w: cannot tell side to move", common.ErrInvalidBoard)
		}
	}
	return common.SearchParams{Board: board, Piece: piece}, nil
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var start = time.Now()
		var ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()))
	})
}
