package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
)

type turn struct {
	key, channel, text string
}

type stubDialog struct {
	turns   []turn
	resets  []string
	replies []entity.OutboundMessage
	err     error
	reset   error
}

func (d *stubDialog) HandleTurn(_ context.Context, key, channel, text string) ([]entity.OutboundMessage, error) {
	d.turns = append(d.turns, turn{key, channel, text})
	return d.replies, d.err
}

func (d *stubDialog) ResetConversation(_ context.Context, key string) error {
	d.resets = append(d.resets, key)
	return d.reset
}

func post(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, MessageResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp MessageResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec, resp
}

func TestPostMessage(t *testing.T) {
	dialog := &stubDialog{replies: []entity.OutboundMessage{
		{Text: "choose", Keyboard: [][]string{{"ACBA"}, {"VTB"}}},
		{Text: "'USD'", Markdown: false},
	}}
	s := NewServer(dialog, nil)

	rec, resp := post(t, s, `{"conversation":"u1","channel":"facebook","text":"banks"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	want := MessageResponse{Messages: []Message{
		{Text: "choose", Keyboard: [][]string{{"ACBA"}, {"VTB"}}},
		{Text: "'USD'"},
	}}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []turn{{"facebook:u1", "facebook", "banks"}}, dialog.turns)
}

func TestPostMessageDefaultsToWeb(t *testing.T) {
	dialog := &stubDialog{}
	s := NewServer(dialog, nil)

	rec, resp := post(t, s, `{"conversation":"abc","text":"help"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, resp.Messages)
	assert.Equal(t, []turn{{"web:abc", "web", "help"}}, dialog.turns)
}

func TestPostMessageErrorBoundary(t *testing.T) {
	dialog := &stubDialog{err: apperr.Upstream("rateam.fetch", errors.New("502"))}
	s := NewServer(dialog, nil)

	rec, resp := post(t, s, `{"conversation":"abc","channel":"web","text":"acba"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []Message{{Text: i18n.Global("error", nil)}}, resp.Messages)
}

func TestPostMessageBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"unknown channel", `{"conversation":"a","channel":"sms","text":"x"}`},
		{"missing conversation", `{"channel":"web","text":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := &stubDialog{}
			rec, _ := post(t, NewServer(dialog, nil), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, dialog.turns)
		})
	}
}

func TestResetConversation(t *testing.T) {
	dialog := &stubDialog{}
	s := NewServer(dialog, nil)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/conversations/web/u9", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"web:u9"}, dialog.resets)

	dialog.reset = errors.New("down")
	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/conversations/web/u9", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/conversations/sms/u9", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := NewServer(&stubDialog{}, nil)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := NewServer(&stubDialog{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.ListenAndServe(ctx, "127.0.0.1:0"))
}
