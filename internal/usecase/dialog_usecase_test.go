package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
	"github.com/yourusername/dram-rate-bot/internal/infrastructure/storage"
	"github.com/yourusername/dram-rate-bot/internal/recognizer"
	"github.com/yourusername/dram-rate-bot/internal/responder"
)

type stubSource struct {
	mu      sync.Mutex
	err     error
	fetched []string
}

func (s *stubSource) ListBankNames(context.Context, entity.Language) ([]string, error) {
	return nil, s.err
}

func (s *stubSource) GetAllRates(_ context.Context, _ entity.Language, cur entity.Currency, _ bool) (entity.BestRatePair, []entity.BankRateSheet, error) {
	if s.err != nil {
		return entity.BestRatePair{}, nil, s.err
	}
	return entity.BestRatePair{BestBuy: "480.00", BestSell: "485.00"}, []entity.BankRateSheet{
		{ExternalID: "x", Name: "Bank", Rates: []entity.ExchangeRate{{Currency: cur, Buy: "480.00", Sell: "485.00"}}},
	}, nil
}

func (s *stubSource) GetBankRates(_ context.Context, externalID string, _ entity.Language, _ bool) (entity.BankRateSheet, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, externalID)
	s.mu.Unlock()

	if s.err != nil {
		return entity.BankRateSheet{}, s.err
	}
	return entity.BankRateSheet{
		ExternalID: externalID,
		Name:       "Bank",
		UpdatedAt:  "19.10.26, 12:30",
		Rates: []entity.ExchangeRate{
			{Currency: entity.CurrencyUSD, Buy: "480", Sell: "485"},
			{Currency: entity.CurrencyRUR, Buy: "6.1", Sell: "6.5"},
		},
	}, nil
}

// countingStates counts writes of the wrapped store
type countingStates struct {
	repository.StateRepository
	sets   int
	setErr error
}

func (c *countingStates) Set(ctx context.Context, key string, state entity.UserState) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	return c.StateRepository.Set(ctx, key, state)
}

type fixture struct {
	dialog DialogUseCase
	states *countingStates
	source *stubSource
	cat    *catalog.Catalog
}

func newFixture(t *testing.T, registry *responder.Registry) *fixture {
	t.Helper()
	cat := catalog.Default()
	src := &stubSource{}
	if registry == nil {
		registry = responder.Default(src, cat)
	}
	states := &countingStates{StateRepository: storage.NewMemoryStateRepository()}

	return &fixture{
		dialog: NewDialogUseCase(states, recognizer.Default(cat), registry, NewPreferencesFlow(cat), zap.NewNop()),
		states: states,
		source: src,
		cat:    cat,
	}
}

func (f *fixture) withPrefs(t *testing.T, key string, lang entity.Language, bank entity.BankID) {
	t.Helper()
	var state entity.UserState
	state.Preferences.Set(lang, bank)
	require.NoError(t, f.states.StateRepository.Set(context.Background(), key, state))
}

func (f *fixture) state(t *testing.T, key string) entity.UserState {
	t.Helper()
	s, err := f.states.Get(context.Background(), key)
	require.NoError(t, err)
	return *s
}

func texts(msgs []entity.OutboundMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

func TestNewUserStartsPreferenceFlow(t *testing.T) {
	f := newFixture(t, nil)

	for _, text := range []string{"all", "200", "help"} {
		key := "web:" + text
		out, err := f.dialog.HandleTurn(context.Background(), key, entity.ChannelWeb, text)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, i18n.Global("choose_language", nil), out[0].Text)
		assert.Equal(t, [][]string{{"🇦🇲 Հայերեն"}, {"🇺🇸 English"}, {"🇷🇺 Русский"}}, out[0].Keyboard)

		st := f.state(t, key)
		assert.Equal(t, entity.FlowAskLanguage, st.Flow.Stage)
		assert.True(t, st.Flow.FirstTime)
	}
	assert.Empty(t, f.source.fetched)
}

func TestFirstTimePreferenceFlow(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	key := "telegram:1"

	_, err := f.dialog.HandleTurn(ctx, key, entity.ChannelTelegram, "/start")
	require.NoError(t, err)

	out, err := f.dialog.HandleTurn(ctx, key, entity.ChannelTelegram, "🇺🇸 English")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Choose your preferred bank.", out[0].Text)
	assert.Len(t, out[0].Keyboard, f.cat.Len())

	// unknown bank names re-prompt
	out, err = f.dialog.HandleTurn(ctx, key, entity.ChannelTelegram, "Bank of Nowhere")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Choose your preferred bank.", out[0].Text)
	assert.Equal(t, entity.FlowAskBank, f.state(t, key).Flow.Stage)

	out, err = f.dialog.HandleTurn(ctx, key, entity.ChannelTelegram, "Ameriabank")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, i18n.Get("prefs_saved", entity.LanguageEn, i18n.Subs{"bank": "Ameriabank"}), out[0].Text)
	assert.Equal(t, MenuKeyboard(entity.LanguageEn), out[0].Keyboard)
	assert.Equal(t, i18n.Get("welcome", entity.LanguageEn, nil)+"\n\n"+i18n.Get("help", entity.LanguageEn, nil), out[1].Text)

	st := f.state(t, key)
	assert.Equal(t, entity.UserPreferences{Language: entity.LanguageEn, BankID: catalog.Ameria}, st.Preferences)
	assert.False(t, st.Flow.Active())
}

func TestLanguageChoiceDefaultsToArmenian(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.dialog.HandleTurn(ctx, "web:1", entity.ChannelWeb, "hi")
	require.NoError(t, err)
	out, err := f.dialog.HandleTurn(ctx, "web:1", entity.ChannelWeb, "klingon")
	require.NoError(t, err)

	assert.Equal(t, i18n.Get("choose_bank", entity.LanguageHy, nil), out[0].Text)
	assert.Equal(t, entity.LanguageHy, f.state(t, "web:1").Flow.Language)
}

func TestStartRestartsFlowForKnownUser(t *testing.T) {
	f := newFixture(t, nil)
	f.withPrefs(t, "telegram:2", entity.LanguageRu, catalog.Acba)

	out, err := f.dialog.HandleTurn(context.Background(), "telegram:2", entity.ChannelTelegram, "/start")
	require.NoError(t, err)
	assert.Equal(t, i18n.Global("choose_language", nil), out[0].Text)

	st := f.state(t, "telegram:2")
	assert.True(t, st.Flow.FirstTime)
	// preferences stay until the flow completes
	assert.Equal(t, catalog.Acba, st.Preferences.BankID)
}

func TestChangePreferencesIsNotFirstTime(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	key := "web:3"
	f.withPrefs(t, key, entity.LanguageEn, catalog.Acba)

	_, err := f.dialog.HandleTurn(ctx, key, entity.ChannelWeb, "settings")
	require.NoError(t, err)
	assert.False(t, f.state(t, key).Flow.FirstTime)

	_, err = f.dialog.HandleTurn(ctx, key, entity.ChannelWeb, "🇷🇺 Русский")
	require.NoError(t, err)
	out, err := f.dialog.HandleTurn(ctx, key, entity.ChannelWeb, "Америабанк")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, entity.UserPreferences{Language: entity.LanguageRu, BankID: catalog.Ameria}, f.state(t, key).Preferences)
}

func TestBankNameScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.withPrefs(t, "web:4", entity.LanguageEn, catalog.Ameria)

	out, err := f.dialog.HandleTurn(context.Background(), "web:4", entity.ChannelWeb, "ACBA-Credit Agricole Bank")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out[0].Text, "Non-cash")
	assert.Contains(t, out[0].Text, "Cash")

	acba, _ := f.cat.ByID(catalog.Acba)
	assert.Equal(t, []string{acba.ExternalID, acba.ExternalID}, f.source.fetched)
}

func TestConvertScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.withPrefs(t, "web:5", entity.LanguageEn, catalog.Ameria)

	out, err := f.dialog.HandleTurn(context.Background(), "web:5", entity.ChannelWeb, "200")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out[0].Text, "🇺🇸 200.00$ (Buy) - 🇦🇲 96,000.00֏")
	assert.Equal(t, 2, strings.Count(out[0].Text, "🇺🇸 200.00$ (Buy)"))

	ameria, _ := f.cat.ByID(catalog.Ameria)
	assert.ElementsMatch(t, []string{ameria.ExternalID, ameria.ExternalID}, f.source.fetched)
}

func TestAllRatesSendsTwoMessages(t *testing.T) {
	f := newFixture(t, nil)
	f.withPrefs(t, "telegram:6", entity.LanguageEn, catalog.Ameria)

	out, err := f.dialog.HandleTurn(context.Background(), "telegram:6", entity.ChannelTelegram, "🇺🇸 All $")
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.True(t, out[0].Markdown)
}

func TestNoResponderIsInternalError(t *testing.T) {
	f := newFixture(t, responder.NewRegistry(responder.ContactResponder{}))
	f.withPrefs(t, "web:7", entity.LanguageEn, catalog.Ameria)
	f.states.sets = 0

	_, err := f.dialog.HandleTurn(context.Background(), "web:7", entity.ChannelWeb, "help")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.Zero(t, f.states.sets)
}

func TestUpstreamErrorFailsTurn(t *testing.T) {
	f := newFixture(t, nil)
	f.source.err = apperr.Upstream("test", errors.New("rate.am is down"))
	f.withPrefs(t, "web:8", entity.LanguageEn, catalog.Ameria)
	f.states.sets = 0

	_, err := f.dialog.HandleTurn(context.Background(), "web:8", entity.ChannelWeb, "my bank")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUpstream))
	assert.Zero(t, f.states.sets)
}

func TestStorageErrorFailsTurn(t *testing.T) {
	f := newFixture(t, nil)
	f.states.setErr = errors.New("disk full")

	_, err := f.dialog.HandleTurn(context.Background(), "web:9", entity.ChannelWeb, "hi")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindStorage))
}

func TestHalfFilledPreferencesStartFlow(t *testing.T) {
	f := newFixture(t, nil)
	half := entity.UserState{Preferences: entity.UserPreferences{Language: entity.LanguageEn}}
	require.NoError(t, f.states.StateRepository.Set(context.Background(), "web:10", half))

	out, err := f.dialog.HandleTurn(context.Background(), "web:10", entity.ChannelWeb, "all")
	require.NoError(t, err)
	assert.Equal(t, []string{i18n.Global("choose_language", nil)}, texts(out))
}

func TestResetConversation(t *testing.T) {
	f := newFixture(t, nil)
	f.withPrefs(t, "web:11", entity.LanguageEn, catalog.Ameria)

	require.NoError(t, f.dialog.ResetConversation(context.Background(), "web:11"))
	_, err := f.states.Get(context.Background(), "web:11")
	assert.ErrorIs(t, err, repository.ErrStateNotFound)
}
