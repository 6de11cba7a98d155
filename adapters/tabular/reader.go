package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// RosterReader loads participant records from .csv or .xlsx files, switched
// on the file extension.
type RosterReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
	mapping  FieldMapping
}

// NewRosterReader creates a reader for the given file. The field mapping
// decides which columns become which participant fields.
func NewRosterReader(filePath string, mapping FieldMapping) *RosterReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := strings.TrimPrefix(ext, ".")
	return &RosterReader{filePath: filePath, fileType: fileType, mapping: mapping}
}

// Load reads every data row into raw participant records, in file order.
func (r *RosterReader) Load(ctx context.Context) ([]roster.RawParticipant, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readXLSXRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row in %s", r.filePath)
	}

	records := r.toRecords(rows)
	log.Printf("[RosterReader] Loaded %d participants from %s", len(records), r.filePath)
	return records, nil
}

func (r *RosterReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	// Form exports often start with a UTF-8 BOM.
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}

	return rows, nil
}

func (r *RosterReader) readXLSXRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// toRecords projects raw rows through the field mapping. Headers and cells
// are whitespace trimmed; cells past the header width are dropped and
// missing cells read as empty.
func (r *RosterReader) toRecords(rows [][]string) []roster.RawParticipant {
	headers := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headers[strings.TrimSpace(h)] = i
	}

	get := func(row []string, column string) string {
		idx, ok := headers[strings.TrimSpace(column)]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]roster.RawParticipant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		wishes := make([]roster.Wish, 0, len(r.mapping.Wishes))
		for _, wc := range r.mapping.Wishes {
			wishes = append(wishes, roster.Wish{
				Label:       get(row, wc.Label),
				Description: get(row, wc.Description),
			})
		}

		records = append(records, roster.RawParticipant{
			Section: get(row, r.mapping.Section),
			Email:   get(row, r.mapping.Email),
			Name:    get(row, r.mapping.Name),
			Wishes:  wishes,
		})
	}
	return records
}
