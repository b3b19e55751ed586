// Package rateam reads AMD exchange rates from the rate.am bank table.
package rateam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
	"github.com/yourusername/dram-rate-bot/internal/metrics"
)

// DefaultBaseURL public rate.am site
const DefaultBaseURL = "http://rate.am"

// UserAgent desktop browser user agent, rate.am serves a different page to bots
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/79.0.3945.130 Safari/537.36"

// ErrHTTP non-2xx response from rate.am
type ErrHTTP struct {
	StatusCode int
	Status     string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.Status)
}

// errCellShape row cells do not match the expected layout
var errCellShape = errors.New("unexpected cell layout")

type source struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewSource creates a rate.am backed RateSource. The client is shared by all
// fetches; its timeout is the only timeout applied.
func NewSource(client *http.Client, baseURL string, logger *zap.Logger) repository.RateSource {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &source{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// pageURL rate.am page of one language and mode. Armenian pages live under "am".
func (s *source) pageURL(lang entity.Language, nonCash bool) string {
	urlLang := string(lang)
	if lang == entity.LanguageHy || lang == "" {
		urlLang = "am"
	}
	mode := "cash"
	if nonCash {
		mode = "non-cash"
	}
	return fmt.Sprintf("%s/%s/armenian-dram-exchange-rates/banks/%s", s.baseURL, urlLang, mode)
}

func (s *source) fetch(ctx context.Context, lang entity.Language, nonCash bool) (*goquery.Document, error) {
	start := time.Now()
	defer func() {
		metrics.RateFetchDuration.WithLabelValues(metrics.Mode(nonCash)).Observe(time.Since(start).Seconds())
	}()

	url := s.pageURL(lang, nonCash)
	doc, err := s.get(ctx, url)
	if err != nil {
		metrics.RateFetchErrors.Inc()
		s.logger.Warn("rate page fetch failed", zap.String("url", url), zap.Error(err))
		return nil, apperr.Upstream("rateam.fetch", err)
	}
	return doc, nil
}

func (s *source) get(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &ErrHTTP{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return doc, nil
}

// ListBankNames names of every bank on the non-cash page
func (s *source) ListBankNames(ctx context.Context, lang entity.Language) ([]string, error) {
	doc, err := s.fetch(ctx, lang, true)
	if err != nil {
		return nil, err
	}

	var names []string
	doc.Find(bankNameSelector).Each(func(_ int, a *goquery.Selection) {
		if name := strings.TrimSpace(a.Text()); name != "" {
			names = append(names, name)
		}
	})
	return names, nil
}

// GetAllRates best pair and per-bank rates of one currency. Rows that do not
// match the layout are skipped.
func (s *source) GetAllRates(ctx context.Context, lang entity.Language, cur entity.Currency, nonCash bool) (entity.BestRatePair, []entity.BankRateSheet, error) {
	doc, err := s.fetch(ctx, lang, nonCash)
	if err != nil {
		return entity.BestRatePair{}, nil, err
	}

	rows := doc.Find(rowsSelector)
	offset := currencyOffset(cur)

	best := readBestPair(rows, offset)

	var sheets []entity.BankRateSheet
	for i := headerRows; i < rows.Length()-trailerRows; i++ {
		sheet, err := readBankRow(rows.Eq(i), cur, offset)
		if err != nil {
			metrics.SkippedRows.Inc()
			s.logger.Debug("rate row skipped", zap.Int("row", i), zap.Error(err))
			continue
		}
		sheets = append(sheets, sheet)
	}

	return best, sheets, nil
}

// GetBankRates USD and RUR rates of one bank. Missing rate cells are left empty.
func (s *source) GetBankRates(ctx context.Context, externalID string, lang entity.Language, nonCash bool) (entity.BankRateSheet, error) {
	doc, err := s.fetch(ctx, lang, nonCash)
	if err != nil {
		return entity.BankRateSheet{}, err
	}

	var row *goquery.Selection
	doc.Find(rowsSelector).EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if id, _ := tr.Attr("id"); id == externalID {
			row = tr
			return false
		}
		return true
	})
	if row == nil {
		return entity.BankRateSheet{}, apperr.Upstream("rateam.GetBankRates", fmt.Errorf("bank %q not found on page", externalID))
	}

	cells := row.ChildrenFiltered("td")
	name, err := bankName(cells)
	if err != nil {
		return entity.BankRateSheet{}, apperr.Upstream("rateam.GetBankRates", fmt.Errorf("bank %q: %w", externalID, err))
	}

	sheet := entity.BankRateSheet{
		ExternalID: externalID,
		Name:       name,
		UpdatedAt:  strings.TrimSpace(cells.Eq(updatedCol).Text()),
	}
	for _, cur := range []entity.Currency{entity.CurrencyUSD, entity.CurrencyRUR} {
		offset := currencyOffset(cur)
		buy, _ := cellValue(cells, buyCol+offset)
		sell, _ := cellValue(cells, sellCol+offset)
		sheet.Rates = append(sheet.Rates, entity.ExchangeRate{Currency: cur, Buy: buy, Sell: sell})
	}

	return sheet, nil
}

// readBestPair reads the best-rate summary rows. Both values are left empty
// when either cell is missing.
func readBestPair(rows *goquery.Selection, offset int) entity.BestRatePair {
	n := rows.Length()
	if n < bestSellRowFromEnd {
		return entity.BestRatePair{}
	}

	buyCells := rows.Eq(n - bestBuyRowFromEnd).ChildrenFiltered("td")
	sellCells := rows.Eq(n - bestSellRowFromEnd).ChildrenFiltered("td")

	if buyCells.Length() <= bestBuyCol+offset || sellCells.Length() <= bestSellCol+offset {
		return entity.BestRatePair{}
	}

	return entity.BestRatePair{
		BestBuy:  normalizeAmount(ownText(buyCells.Eq(bestBuyCol + offset))),
		BestSell: normalizeAmount(ownText(sellCells.Eq(bestSellCol + offset))),
	}
}

func readBankRow(tr *goquery.Selection, cur entity.Currency, offset int) (entity.BankRateSheet, error) {
	id, ok := tr.Attr("id")
	if !ok || id == "" {
		return entity.BankRateSheet{}, fmt.Errorf("row without id: %w", errCellShape)
	}

	cells := tr.ChildrenFiltered("td")
	name, err := bankName(cells)
	if err != nil {
		return entity.BankRateSheet{}, err
	}

	buy, ok := cellValue(cells, buyCol+offset)
	if !ok {
		return entity.BankRateSheet{}, fmt.Errorf("buy cell: %w", errCellShape)
	}
	sell, ok := cellValue(cells, sellCol+offset)
	if !ok {
		return entity.BankRateSheet{}, fmt.Errorf("sell cell: %w", errCellShape)
	}

	return entity.BankRateSheet{
		ExternalID: id,
		Name:       name,
		Rates: []entity.ExchangeRate{{
			Currency: cur,
			Buy:      normalizeAmount(buy),
			Sell:     normalizeAmount(sell),
		}},
	}, nil
}

func bankName(cells *goquery.Selection) (string, error) {
	if cells.Length() <= nameCol {
		return "", fmt.Errorf("name cell: %w", errCellShape)
	}
	a := cells.Eq(nameCol).ChildrenFiltered("a").First()
	if a.Length() == 0 {
		return "", fmt.Errorf("name link: %w", errCellShape)
	}
	return strings.TrimSpace(a.Text()), nil
}

// cellValue text of the cell at col. A cell without own text falls back to
// its first child element (rate.am wraps the best values in a span).
func cellValue(cells *goquery.Selection, col int) (string, bool) {
	if cells.Length() <= col {
		return "", false
	}
	cell := cells.Eq(col)
	if text := ownText(cell); text != "" {
		return text, true
	}
	child := cell.Children().First()
	if child.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(child.Text()), true
}

// ownText text preceding the first child element of the cell
func ownText(cell *goquery.Selection) string {
	if cell.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for n := cell.Nodes[0].FirstChild; n != nil && n.Type == html.TextNode; n = n.NextSibling {
		b.WriteString(n.Data)
	}
	return strings.TrimSpace(b.String())
}

// normalizeAmount appends ".00" to whole numbers
func normalizeAmount(v string) string {
	if v == "" || strings.Contains(v, ".") {
		return v
	}
	return v + ".00"
}
