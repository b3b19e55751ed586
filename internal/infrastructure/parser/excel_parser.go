package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

// column keys of the catalog sheet
const (
	colID       = "id"
	colExternal = "external"
)

// default layout when the sheet has no header: id | rate.am id | hy | en | ru
var defaultColumns = map[string]int{
	colID:                     0,
	colExternal:               1,
	string(entity.LanguageHy): 2,
	string(entity.LanguageEn): 3,
	string(entity.LanguageRu): 4,
}

type excelCatalogParser struct {
	logger *zap.Logger
}

// NewExcelCatalogParser creates a BankCatalogParser for xlsx workbooks
func NewExcelCatalogParser(logger *zap.Logger) repository.BankCatalogParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &excelCatalogParser{logger: logger}
}

// ParseBanks reads banks from the first sheet of the workbook at path
func (e *excelCatalogParser) ParseBanks(ctx context.Context, path string) ([]entity.Bank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseWorkbook(f)
}

// ParseBanksFromBytes same as ParseBanks for an in-memory workbook
func (e *excelCatalogParser) ParseBanksFromBytes(ctx context.Context, data []byte) ([]entity.Bank, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	return e.parseWorkbook(f)
}

func (e *excelCatalogParser) parseWorkbook(f *excelize.File) ([]entity.Bank, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	columns := defaultColumns
	startRow := 0
	if mapped, ok := mapColumns(rows[0]); ok {
		columns = mapped
		startRow = 1
	}
	e.logger.Debug("catalog sheet layout",
		zap.String("sheet", sheets[0]),
		zap.Int("rows", len(rows)),
		zap.Bool("header", startRow == 1),
	)

	var banks []entity.Bank
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		bank, err := bankFromRow(row, columns)
		if err != nil {
			// 1-based row numbers, as shown by spreadsheet editors
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		banks = append(banks, bank)
	}

	if len(banks) == 0 {
		return nil, fmt.Errorf("no banks found in excel file")
	}
	e.logger.Info("bank catalog parsed", zap.Int("banks", len(banks)))
	return banks, nil
}

func bankFromRow(row []string, columns map[string]int) (entity.Bank, error) {
	bank := entity.Bank{
		ID:         entity.BankID(cell(row, columns[colID])),
		ExternalID: cell(row, columns[colExternal]),
		Names:      make(map[entity.Language]string, len(entity.Languages)),
	}
	if bank.ID == "" {
		return entity.Bank{}, fmt.Errorf("empty bank id")
	}
	if bank.ExternalID == "" {
		return entity.Bank{}, fmt.Errorf("bank %q: empty rate.am id", bank.ID)
	}

	for _, lang := range entity.Languages {
		name := cell(row, columns[string(lang)])
		if name == "" {
			return entity.Bank{}, fmt.Errorf("bank %q: empty %s name", bank.ID, lang)
		}
		bank.Names[lang] = name
	}
	return bank, nil
}

// mapColumns builds the column mapping from a header row. ok is false when
// the row does not name every required column.
func mapColumns(header []string) (map[string]int, bool) {
	columns := make(map[string]int)

	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))

		switch {
		case oneOf(name, "id", "bank id", "bank_id"):
			columns[colID] = i
		case contains(name, "rate.am", "rateam", "external"):
			columns[colExternal] = i
		case oneOf(name, "hy", "armenian", "հայերեն"):
			columns[string(entity.LanguageHy)] = i
		case oneOf(name, "en", "english"):
			columns[string(entity.LanguageEn)] = i
		case oneOf(name, "ru", "russian", "русский"):
			columns[string(entity.LanguageRu)] = i
		}
	}

	for key := range defaultColumns {
		if _, ok := columns[key]; !ok {
			return nil, false
		}
	}
	return columns, true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow reports whether every cell is blank
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}

func oneOf(str string, values ...string) bool {
	for _, v := range values {
		if str == v {
			return true
		}
	}
	return false
}
