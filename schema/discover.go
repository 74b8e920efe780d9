package schema

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ============================================================================
// AUTO-DISCOVERY - Column typing for schema-on-read CSV
// ============================================================================
// Pipeline:
//   1. Read header + all rows (strict: every row has the header's width)
//   2. Per column: count missing cells, collect distinct values
//   3. Numeric if every non-missing cell parses as int/float, else text
//   4. Attach samples and a cardinality hint for display
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	Name       string // Dataset name (otherwise "Auto-discovered Dataset")
	MaxSamples int    // Distinct sample values kept per column. Default: 10
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		MaxSamples: 10,
	}
}

// Discover types every column of an already-read table.
// rows must all have len(headers) cells (ReadCSV guarantees it).
func Discover(headers []string, rows [][]string, opts ...DiscoverOptions) *Config {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
		if opt.MaxSamples <= 0 {
			opt.MaxSamples = DefaultDiscoverOptions().MaxSamples
		}
	}

	config := &Config{
		Name:           opt.Name,
		RowCount:       len(rows),
		Columns:        make([]ColumnMeta, len(headers)),
		DiscoveredFrom: "CSV",
		DiscoveredAt:   time.Now().Format(time.RFC3339),
	}
	if config.Name == "" {
		config.Name = "Auto-discovered Dataset"
	}

	for i, header := range headers {
		config.Columns[i] = analyzeColumn(header, i, rows, opt.MaxSamples)
	}
	return config
}

// ============================================================================
// CSV READING
// ============================================================================

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses CSV bytes into a header and data rows.
// An empty input, or a row whose width differs from the header, is an error.
// Duplicate header names get ".1", ".2" suffixes; blank ones become "Unnamed: <i>".
func ReadCSV(data []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("no columns to parse from file")
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read CSV headers")
	}
	headers = dedupeHeaders(headers)

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to read CSV row %d", len(rows)+1)
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func dedupeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	taken := make(map[string]bool, len(headers))
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for n := 1; taken[name]; n++ {
			name = fmt.Sprintf("%s.%d", h, n)
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

// analyzeColumn inspects all values in a column and classifies it.
func analyzeColumn(header string, index int, rows [][]string, maxSamples int) ColumnMeta {
	col := ColumnMeta{
		Name:  header,
		Index: index,
		Kind:  KindNumeric,
	}

	uniqueSet := make(map[string]bool)
	for _, row := range rows {
		if index >= len(row) || IsMissing(row[index]) {
			col.MissingCount++
			continue
		}
		val := row[index]
		uniqueSet[val] = true

		if col.Kind == KindNumeric {
			if _, ok := ParseNumber(val); !ok {
				col.Kind = KindText
			} else if strings.ContainsAny(val, ".eE") {
				col.HasDecimals = true
			}
		}
	}

	col.UniqueCount = len(uniqueSet)
	col.SampleValues = collectSamples(uniqueSet, maxSamples)
	if col.Kind == KindText {
		col.HasDecimals = false
	}

	switch {
	case col.UniqueCount <= 10:
		col.CardinalityHint = "low"
	case col.UniqueCount <= 100:
		col.CardinalityHint = "medium"
	default:
		col.CardinalityHint = "high"
	}
	return col
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

// missingTokens are the cell spellings read as "no value".
var missingTokens = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true,
	"None": true, "n/a": true, "nan": true, "null": true,
}

// IsMissing reports whether a raw cell holds no value. Tokens match
// exactly: " NA" is a value.
func IsMissing(s string) bool {
	return missingTokens[s]
}

// ParseNumber parses a finite decimal integer or floating-point cell.
// Missing cells, infinities and hex floats do not parse.
func ParseNumber(s string) (float64, bool) {
	if IsMissing(s) {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// collectSamples picks up to maxSamples representative values.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}

	// Sort for deterministic output
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
