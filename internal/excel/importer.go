// Package excel imports wordbook content from spreadsheets uploaded by
// admins.
package excel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/wordrecall/internal/database"
	"github.com/example/wordrecall/pkg/models"
)

// ImportConfig defines which spreadsheet columns feed which word fields.
type ImportConfig struct {
	FilePath            string
	SheetName           string
	StartRow            int // 1-based first data row
	WordColumn          string
	PhoneticColumn      string
	MeaningColumn       string
	ExampleColumn       string
	TranslationColumn   string
	WordbookColumn      string
	ExamPriorityColumn  string
	FrequencyRankColumn string
}

// DefaultImportConfig returns the standard column layout.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:           "Sheet1",
		StartRow:            2, // skip the header row
		WordColumn:          "A",
		PhoneticColumn:      "B",
		MeaningColumn:       "C",
		ExampleColumn:       "D",
		TranslationColumn:   "E",
		WordbookColumn:      "F",
		ExamPriorityColumn:  "G",
		FrequencyRankColumn: "H",
	}
}

// ImportResult holds the outcome of an import run.
type ImportResult struct {
	TotalProcessed   int
	WordbooksCreated int
	Created          int
	Updated          int
	Skipped          int
	Errors           []string
}

// ImportWords loads words from an XLSX file into the catalog, creating
// wordbooks on demand and updating words that already exist.
func ImportWords(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v", config.SheetName, err)
	}

	imp := &importer{
		books:  database.NewWordbookRepository(),
		words:  database.NewWordRepository(),
		byName: make(map[string]int64),
	}
	result := &ImportResult{Errors: make([]string, 0)}

	existing, err := imp.books.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wordbooks: %v", err)
	}
	for _, book := range existing {
		imp.byName[strings.ToLower(book.Name)] = book.ID
	}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := imp.processRow(ctx, row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

type importer struct {
	books  *database.WordbookRepository
	words  *database.WordRepository
	byName map[string]int64
}

func (imp *importer) processRow(ctx context.Context, row []string, config ImportConfig, result *ImportResult) error {
	text := cell(row, config.WordColumn)
	meaning := cell(row, config.MeaningColumn)
	if text == "" || meaning == "" {
		result.Skipped++
		return nil
	}

	bookName := cell(row, config.WordbookColumn)
	if bookName == "" {
		bookName = "Imported"
	}
	bookID, err := imp.getOrCreateWordbook(ctx, bookName, result)
	if err != nil {
		return err
	}

	word := models.Word{
		WordbookID:         bookID,
		Word:               text,
		Phonetic:           cell(row, config.PhoneticColumn),
		Meaning:            meaning,
		Example:            cell(row, config.ExampleColumn),
		ExampleTranslation: cell(row, config.TranslationColumn),
		ExamPriority:       cellInt(row, config.ExamPriorityColumn, 0, 100),
		FrequencyRank:      cellInt(row, config.FrequencyRankColumn, 0, 1<<31-1),
	}
	word.IsHighFrequency = word.FrequencyRank > 0 && word.FrequencyRank <= 3000

	existing, err := imp.words.GetByWordAndWordbook(ctx, word.Word, bookID)
	if err != nil {
		return err
	}
	if existing != nil {
		word.ID = existing.ID
		word.SortOrder = existing.SortOrder
		if err := imp.words.Update(ctx, &word); err != nil {
			return err
		}
		result.Updated++
		return nil
	}
	if err := imp.words.Create(ctx, &word); err != nil {
		return err
	}
	result.Created++
	return nil
}

func (imp *importer) getOrCreateWordbook(ctx context.Context, name string, result *ImportResult) (int64, error) {
	if id, ok := imp.byName[strings.ToLower(name)]; ok {
		return id, nil
	}
	book := &models.Wordbook{Name: name, Category: "custom"}
	if err := imp.books.Create(ctx, book); err != nil {
		return 0, err
	}
	imp.byName[strings.ToLower(name)] = book.ID
	result.WordbooksCreated++
	return book.ID, nil
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, column string, lo, hi int) int {
	v, err := strconv.Atoi(cell(row, column))
	if err != nil || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// columnToIndex converts a spreadsheet column name ("A", "AB") to 0-based.
func columnToIndex(column string) int {
	idx := 0
	for _, r := range strings.ToUpper(column) {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
