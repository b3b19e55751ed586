package recognizer

import (
	"strings"

	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// Exchange rate actions besides the per-bank ones
const (
	ActionAll    = "all"
	ActionBanks  = "banks"
	ActionMyBank = "mybank"
)

var helpCommands = []Command{
	{Action: "help", Synonyms: []string{
		"help",
		"помощь", "помощ", "помошь", "помош",
		"օգնություն", "օգնել",
	}},
}

var contactCommands = []Command{
	{Action: "get", Synonyms: []string{
		"contact", "contacts", "about",
		"связь", "контакт", "контакты",
		"կապ", "կոնտակտ", "կոնտակտներ", "մասին",
	}},
}

var preferencesCommands = []Command{
	{Action: "edit", Synonyms: []string{
		"preference", "pref", "setting", "option",
		"preferences", "prefs", "settings", "options",
		"language", "lang",
		"настройка", "настройки", "опции", "язык",
		"կարգավորում", "կարգավորումներ", "լեզու", "լեզուն",
	}},
}

var myBankCommand = Command{Action: ActionMyBank, Synonyms: []string{
	"my", "mine", "mybanks", "mybank", "my banks", "my bank",
	"мой", "мои", "моибанки", "мойбанки", "мойбанк", "моибанк",
	"мои банки", "мой банки", "мой банк", "мои банк",
	"իմ", "իմ բանկերը", "իմ բանկեր", "իմ բանկը", "իմ բանկ",
	"իմբանկերը", "իմբանկեր", "իմբանկը", "իմբանկ",
}}

var banksCommand = Command{Action: ActionBanks, Synonyms: []string{
	"banks", "банки", "բանկեր",
}}

var allCommand = Command{Action: ActionAll, Synonyms: []string{
	"all", "al", "все", "всё", "բոլոր", "բոլորը",
}}

// ExchangeRateCommands builds the exchange rate table. More specific actions
// come first: bank names, then mybank, banks and all, so "все банки" is banks
// and "мои банки" is mybank.
func ExchangeRateCommands(cat *catalog.Catalog) []Command {
	banks := cat.All()
	cmds := make([]Command, 0, len(banks)+3)

	for _, b := range banks {
		syns := make([]string, 0, len(entity.Languages))
		for _, lang := range entity.Languages {
			syns = append(syns, strings.ToLower(b.Name(lang)))
		}
		cmds = append(cmds, Command{Action: string(b.ID), Synonyms: syns})
	}

	return append(cmds, myBankCommand, banksCommand, allCommand)
}
