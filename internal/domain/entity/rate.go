package entity

// Currency foreign currency quoted against AMD
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyRUR Currency = "rur"
)

// ExchangeRate AMD buy/sell prices for one currency.
// An empty Buy or Sell means the source had no quote for it.
type ExchangeRate struct {
	Currency Currency
	Buy      string
	Sell     string
}

// BankRateSheet rates published by one bank for one mode (cash or non-cash)
type BankRateSheet struct {
	ExternalID string
	Name       string
	UpdatedAt  string
	Rates      []ExchangeRate // USD first, then RUR
}

// Rate returns the rate for cur, ok is false when the sheet has none
func (s BankRateSheet) Rate(cur Currency) (ExchangeRate, bool) {
	for _, r := range s.Rates {
		if r.Currency == cur {
			return r, true
		}
	}
	return ExchangeRate{Currency: cur}, false
}

// BestRatePair most favorable buy and sell across all banks
type BestRatePair struct {
	BestBuy  string
	BestSell string
}
