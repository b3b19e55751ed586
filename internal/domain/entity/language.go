package entity

// Language user interface language
type Language string

const (
	LanguageHy Language = "hy"
	LanguageEn Language = "en"
	LanguageRu Language = "ru"
)

// Languages supported languages in display order
var Languages = []Language{LanguageHy, LanguageEn, LanguageRu}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageHy, LanguageEn, LanguageRu:
		return true
	}
	return false
}

// ParseLanguage parses a language code, ok is false for unsupported codes
func ParseLanguage(s string) (Language, bool) {
	l := Language(s)
	return l, l.Valid()
}
