package usecase

import (
	"strings"

	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
	"github.com/yourusername/dram-rate-bot/internal/responder"
)

// PreferencesFlow collects the user's language and bank over several turns.
// Its cursor lives in UserState.Flow so it survives between turns.
type PreferencesFlow struct {
	catalog *catalog.Catalog
}

// NewPreferencesFlow creates the flow over the bank catalog
func NewPreferencesFlow(cat *catalog.Catalog) *PreferencesFlow {
	return &PreferencesFlow{catalog: cat}
}

// Start resets the cursor and asks for the language
func (f *PreferencesFlow) Start(state *entity.UserState, firstTime bool) []entity.OutboundMessage {
	state.Flow = entity.PreferenceFlow{Stage: entity.FlowAskLanguage, FirstTime: firstTime}

	buttons := make([]string, len(entity.Languages))
	for i, lang := range entity.Languages {
		buttons[i] = i18n.LanguageButton(lang)
	}

	return []entity.OutboundMessage{{
		Text:     i18n.Global("choose_language", nil),
		Keyboard: responder.Buttons(buttons...),
	}}
}

// Continue feeds the user's answer to the current stage
func (f *PreferencesFlow) Continue(state *entity.UserState, text string) []entity.OutboundMessage {
	switch state.Flow.Stage {
	case entity.FlowAskLanguage:
		lang := parseLanguageChoice(text)
		state.Flow.Language = lang
		state.Flow.Stage = entity.FlowAskBank
		return f.askBank(lang)

	case entity.FlowAskBank:
		lang := state.Flow.Language
		if !lang.Valid() {
			lang = entity.LanguageHy
		}

		bank, ok := f.catalog.ByName(strings.TrimSpace(text))
		if !ok {
			return f.askBank(lang)
		}
		return f.finish(state, lang, bank)

	default:
		return f.Start(state, state.Preferences.IsEmpty())
	}
}

func (f *PreferencesFlow) askBank(lang entity.Language) []entity.OutboundMessage {
	return []entity.OutboundMessage{{
		Text:     i18n.Get("choose_bank", lang, nil),
		Keyboard: responder.Buttons(f.catalog.Names(lang)...),
	}}
}

func (f *PreferencesFlow) finish(state *entity.UserState, lang entity.Language, bank entity.Bank) []entity.OutboundMessage {
	firstTime := state.Flow.FirstTime
	state.Preferences.Set(lang, bank.ID)
	state.Flow = entity.PreferenceFlow{}

	out := []entity.OutboundMessage{{
		Text:     i18n.Get("prefs_saved", lang, i18n.Subs{"bank": bank.Name(lang)}),
		Keyboard: MenuKeyboard(lang),
	}}
	if firstTime {
		out = append(out, entity.OutboundMessage{
			Text: i18n.Get("welcome", lang, nil) + "\n\n" + i18n.Get("help", lang, nil),
		})
	}
	return out
}

// MenuKeyboard main menu shown after preferences are saved
func MenuKeyboard(lang entity.Language) [][]string {
	get := func(id string) string { return i18n.Get(id, lang, nil) }
	return [][]string{
		{get("all_usd"), get("all_rur")},
		{get("banks"), get("my_bank")},
		{get("preferences")},
	}
}

// parseLanguageChoice maps a language button to a language, Armenian by default
func parseLanguageChoice(text string) entity.Language {
	switch strings.TrimSpace(text) {
	case i18n.LanguageButton(entity.LanguageEn):
		return entity.LanguageEn
	case i18n.LanguageButton(entity.LanguageRu):
		return entity.LanguageRu
	default:
		return entity.LanguageHy
	}
}
