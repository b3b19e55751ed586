package entity

// BankID internal bank identifier
type BankID string

// Bank static bank catalog entry
type Bank struct {
	ID         BankID
	ExternalID string // rate.am row id
	Names      map[Language]string
}

// Name bank name in the given language
func (b Bank) Name(lang Language) string {
	return b.Names[lang]
}
