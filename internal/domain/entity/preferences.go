package entity

// UserPreferences language and bank chosen by the user.
// Both fields are set together or both are empty.
type UserPreferences struct {
	Language Language `json:"language,omitempty"`
	BankID   BankID   `json:"bank_id,omitempty"`
}

// IsEmpty reports whether preferences still need to be collected
func (p UserPreferences) IsEmpty() bool {
	return p.Language == "" || p.BankID == ""
}

// Set stores language and bank as a pair
func (p *UserPreferences) Set(lang Language, bank BankID) {
	if lang == "" || bank == "" {
		p.Language, p.BankID = "", ""
		return
	}
	p.Language, p.BankID = lang, bank
}

// Normalize drops a half-filled record
func (p *UserPreferences) Normalize() {
	if p.IsEmpty() {
		p.Language, p.BankID = "", ""
	}
}

// FlowStage step of the preference-collection flow
type FlowStage string

const (
	FlowIdle        FlowStage = ""
	FlowAskLanguage FlowStage = "language"
	FlowAskBank     FlowStage = "bank"
)

// PreferenceFlow cursor of an in-progress preference-collection flow
type PreferenceFlow struct {
	Stage     FlowStage `json:"stage,omitempty"`
	Language  Language  `json:"language,omitempty"`
	FirstTime bool      `json:"first_time,omitempty"`
}

// Active reports whether the flow is waiting for user input
func (f PreferenceFlow) Active() bool {
	return f.Stage != FlowIdle
}

// UserState per-conversation document kept by the state store
type UserState struct {
	Preferences UserPreferences `json:"preferences"`
	Flow        PreferenceFlow  `json:"flow"`
}
