package rateam

import "github.com/yourusername/dram-rate-bot/internal/domain/entity"

// The rate.am bank table has no machine-readable schema. Every positional
// read of the page goes through the constants below; when the page layout
// changes this is the only place to update.
//
// Bank row cells:
//
//	0 index | 1 name (<a>) | 2,3 branch info | 4 update time |
//	5,6 USD buy/sell | 7,8 EUR buy/sell | 9,10 RUR buy/sell | ...
//
// The last rows of the table summarize the best rates: the 4th row from the
// end holds the best sell prices, the 3rd row from the end the best buy prices.
const (
	// rowsSelector bank table rows, with or without a parser-inserted tbody
	rowsSelector = "#rb > tr, #rb > tbody > tr"
	// bankNameSelector bank name links, used for listing names only
	bankNameSelector = "td.bank > a"

	headerRows  = 2
	trailerRows = 5

	bestBuyRowFromEnd  = 3
	bestSellRowFromEnd = 4
	bestBuyCol         = 1
	bestSellCol        = 2

	nameCol    = 1
	updatedCol = 4
	buyCol     = 5
	sellCol    = 6

	// rurOffset distance between USD and RUR columns
	rurOffset = 4
)

// currencyOffset column offset of cur relative to USD
func currencyOffset(cur entity.Currency) int {
	if cur == entity.CurrencyRUR {
		return rurOffset
	}
	return 0
}
