package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
)

// CleanConfig drives the raw sign-up export cleanup: which columns survive
// into the output and which section/attendance answers qualify a row.
type CleanConfig struct {
	Columns      []string
	SectionCol   string
	SectionValue string
	AttendCol    string
	AttendValue  string
}

// DefaultCleanConfig mirrors the sign-up form for the 2-1N exchange. The
// trailing spaces in the wish columns are real: the form export has them.
func DefaultCleanConfig() CleanConfig {
	return CleanConfig{
		Columns: []string{
			"Enter your Section",
			"Username",
			"Enter your Name (FN, MI, LN)",
			"What is your wish #1? (Priority Wish)",
			"Describe your wish #1! (Priority Wish)",
			"What is your wish #2? ",
			"Describe your wish #2! ",
			"What is your wish #3? ",
			"Describe your wish #3! ",
		},
		SectionCol:   "Enter your Section",
		SectionValue: "BSCS 2-1N",
		AttendCol:    "Will you attend the event and participate in our exchange of gifts?",
		AttendValue:  "Will attend and Will participate for the Exchange Gifts",
	}
}

// CleanStats reports what the cleaner saw and kept.
type CleanStats struct {
	Processed int
	Matched   int
}

// Cleaner filters a raw sign-up CSV down to confirmed participants of one
// section and projects it onto the columns the roster reader expects.
type Cleaner struct {
	config CleanConfig
}

// NewCleaner creates a cleaner with the given config.
func NewCleaner(config CleanConfig) *Cleaner {
	return &Cleaner{config: config}
}

// Clean reads inputPath, keeps rows whose section and attendance answers
// match the config, and writes the projected rows to outputPath. Missing
// expected columns are warnings, not errors; their values read as empty.
func (c *Cleaner) Clean(inputPath, outputPath string) (CleanStats, error) {
	stats := CleanStats{}

	reader := &RosterReader{filePath: inputPath, fileType: "csv"}
	rows, err := reader.readCSVRows()
	if err != nil {
		return stats, err
	}
	if len(rows) == 0 {
		return stats, fmt.Errorf("no header row in %s", inputPath)
	}

	headers := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headers[strings.TrimSpace(h)] = i
	}

	for _, required := range []string{c.config.AttendCol, c.config.SectionCol} {
		if _, ok := headers[strings.TrimSpace(required)]; !ok {
			log.Printf("[Cleaner] Warning: required column %q not found in input CSV", required)
		}
	}

	get := func(row []string, column string) string {
		idx, ok := headers[strings.TrimSpace(column)]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(c.config.Columns); err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows[1:] {
		stats.Processed++

		section := get(row, c.config.SectionCol)
		attend := get(row, c.config.AttendCol)
		if section != c.config.SectionValue || attend != c.config.AttendValue {
			continue
		}

		outRow := make([]string, len(c.config.Columns))
		for i, col := range c.config.Columns {
			outRow[i] = get(row, col)
		}
		if err := writer.Write(outRow); err != nil {
			return stats, fmt.Errorf("failed to write row: %w", err)
		}
		stats.Matched++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	log.Printf("[Cleaner] Matched %d of %d rows from %s", stats.Matched, stats.Processed, inputPath)
	return stats, nil
}
