// Package web serves the dialog over HTTP for web chat widgets and
// messenger bridges.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
	"github.com/yourusername/dram-rate-bot/internal/usecase"
)

const turnTimeout = time.Minute

// MessageRequest body of POST /api/messages
type MessageRequest struct {
	Conversation string `json:"conversation"`
	Channel      string `json:"channel"`
	Text         string `json:"text"`
}

// Message one outbound message
type Message struct {
	Text     string     `json:"text"`
	Keyboard [][]string `json:"keyboard,omitempty"`
	Markdown bool       `json:"markdown,omitempty"`
}

// MessageResponse body returned by POST /api/messages
type MessageResponse struct {
	Messages []Message `json:"messages"`
}

// ErrorResponse body of rejected requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server HTTP channel
type Server struct {
	router chi.Router
	dialog usecase.DialogUseCase
	logger *zap.Logger
}

// NewServer creates the server with all routes
func NewServer(dialog usecase.DialogUseCase, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{dialog: dialog, logger: logger}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router for testing
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * turnTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/messages", s.handleMessage)
		r.Delete("/conversations/{channel}/{conversation}", s.handleReset)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	channel, ok := parseChannel(req.Channel)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown channel")
		return
	}
	if strings.TrimSpace(req.Conversation) == "" {
		writeError(w, http.StatusBadRequest, "conversation is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), turnTimeout)
	defer cancel()

	replies, err := s.dialog.HandleTurn(ctx, ConversationKey(channel, req.Conversation), channel, req.Text)
	if err != nil {
		// the user sees the generic error text, the dialog logged the cause
		s.logger.Debug("turn failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusOK, MessageResponse{
			Messages: []Message{{Text: i18n.Global("error", nil)}},
		})
		return
	}

	resp := MessageResponse{Messages: make([]Message, 0, len(replies))}
	for _, m := range replies {
		resp.Messages = append(resp.Messages, Message{Text: m.Text, Keyboard: m.Keyboard, Markdown: m.Markdown})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	channel, ok := parseChannel(chi.URLParam(r, "channel"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown channel")
		return
	}

	key := ConversationKey(channel, chi.URLParam(r, "conversation"))
	if err := s.dialog.ResetConversation(r.Context(), key); err != nil {
		s.logger.Error("failed to reset conversation", zap.String("conversation", key), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to reset conversation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ConversationKey state key of a conversation on channel
func ConversationKey(channel, conversation string) string {
	return channel + ":" + conversation
}

// parseChannel defaults to web
func parseChannel(raw string) (string, bool) {
	switch ch := strings.ToLower(strings.TrimSpace(raw)); ch {
	case "":
		return entity.ChannelWeb, true
	case entity.ChannelWeb, entity.ChannelFacebook, entity.ChannelTelegram:
		return ch, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
