package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
	"github.com/yourusername/dram-rate-bot/internal/metrics"
	"github.com/yourusername/dram-rate-bot/internal/recognizer"
	"github.com/yourusername/dram-rate-bot/internal/responder"
)

// StartCommand restarts the conversation with the preference flow
const StartCommand = "/start"

// DialogUseCase per-turn conversation logic
type DialogUseCase interface {
	// HandleTurn answers one user message of the conversation key
	HandleTurn(ctx context.Context, key, channel, text string) ([]entity.OutboundMessage, error)

	// ResetConversation forgets preferences and any flow in progress
	ResetConversation(ctx context.Context, key string) error
}

type dialogUseCase struct {
	states     repository.StateRepository
	recognizer *recognizer.Chain
	registry   *responder.Registry
	flow       *PreferencesFlow
	logger     *zap.Logger
}

// NewDialogUseCase creates the DialogUseCase
func NewDialogUseCase(
	states repository.StateRepository,
	rec *recognizer.Chain,
	registry *responder.Registry,
	flow *PreferencesFlow,
	logger *zap.Logger,
) DialogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dialogUseCase{
		states:     states,
		recognizer: rec,
		registry:   registry,
		flow:       flow,
		logger:     logger,
	}
}

// HandleTurn loads the conversation state, dispatches the message and saves
// the state once the reply is ready. A failed turn saves nothing.
func (u *dialogUseCase) HandleTurn(ctx context.Context, key, channel, text string) ([]entity.OutboundMessage, error) {
	log := u.logger.With(
		zap.String("turn_id", uuid.NewString()),
		zap.String("conversation", key),
		zap.String("channel", channel),
	)

	state, err := u.loadState(ctx, key)
	if err != nil {
		return nil, u.fail(log, err)
	}

	var (
		out        []entity.OutboundMessage
		intent     = entity.IntentPreferences
		recognized bool
	)

	switch {
	case strings.TrimSpace(text) == StartCommand:
		out = u.flow.Start(&state, true)

	case state.Flow.Active():
		out = u.flow.Continue(&state, text)

	case state.Preferences.IsEmpty():
		out = u.flow.Start(&state, true)

	default:
		msg := u.recognizer.Recognize(text)
		intent, recognized = msg.Intent, true
		log = log.With(zap.Stringer("intent", msg.Intent), zap.String("action", msg.Action))

		resp, ok := u.registry.Find(msg, channel)
		if !ok {
			return nil, u.fail(log, apperr.Internal("usecase.HandleTurn", "no responder for intent %s action %q", msg.Intent, msg.Action))
		}

		reply, err := resp.Respond(ctx, msg, channel, text, state.Preferences)
		if err != nil {
			return nil, u.fail(log.With(zap.String("responder", resp.Name())), err)
		}

		if reply.StartPreferences {
			out = u.flow.Start(&state, false)
		} else {
			out = reply.Messages
		}
	}

	if err := u.states.Set(ctx, key, state); err != nil {
		return nil, u.fail(log, apperr.Storage("usecase.HandleTurn", err))
	}

	metrics.TurnsTotal.WithLabelValues(channel, intent.String()).Inc()
	if !recognized {
		log = log.With(zap.Stringer("intent", intent))
	}
	log.Debug("turn handled", zap.Int("messages", len(out)))

	return out, nil
}

// loadState returns an empty state for new conversations and drops
// half-filled preferences.
func (u *dialogUseCase) loadState(ctx context.Context, key string) (entity.UserState, error) {
	state, err := u.states.Get(ctx, key)
	if errors.Is(err, repository.ErrStateNotFound) {
		return entity.UserState{}, nil
	}
	if err != nil {
		return entity.UserState{}, apperr.Storage("usecase.loadState", err)
	}
	if state == nil {
		return entity.UserState{}, nil
	}

	s := *state
	s.Preferences.Normalize()
	return s, nil
}

// fail logs err with its kind and counts it
func (u *dialogUseCase) fail(log *zap.Logger, err error) error {
	kind := apperr.KindOf(err)
	metrics.TurnErrors.WithLabelValues(string(kind)).Inc()

	if kind == apperr.KindInternal {
		log.Error("turn failed: internal error", zap.String("error_kind", string(kind)), zap.Error(err))
	} else {
		log.Warn("turn failed", zap.String("error_kind", string(kind)), zap.Error(err))
	}
	return err
}

// ResetConversation deletes the conversation state
func (u *dialogUseCase) ResetConversation(ctx context.Context, key string) error {
	if err := u.states.Delete(ctx, key); err != nil {
		return apperr.Storage("usecase.ResetConversation", err)
	}
	return nil
}
