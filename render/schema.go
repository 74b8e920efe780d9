package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/spektr-org/momwatch/schema"
)

// Schema writes discovered column metadata. Text shows one grid row per
// column; csv writes the same rows; json/pretty encode the Config.
func Schema(w io.Writer, sch *schema.Config, format Format) error {
	switch format {
	case FormatJSON, FormatPretty:
		return writeJSON(w, sch, format == FormatPretty)
	case FormatCSV:
		cw := csv.NewWriter(w)
		cw.Write(schemaHeaders)
		cw.WriteAll(schemaRows(sch))
		return errors.Wrap(cw.Error(), "failed to write CSV schema")
	case FormatText, "":
		fmt.Fprintf(w, "%s: %d rows, %d columns\n", sch.Name, sch.RowCount, len(sch.Columns))
		if numeric := sch.NumericColumns(); len(numeric) > 0 {
			fmt.Fprintf(w, "Numeric: %s\n", strings.Join(numeric, ", "))
		}
		grid := newGrid(w, schemaHeaders)
		grid.AppendBulk(schemaRows(sch))
		grid.Render()
		return nil
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

var schemaHeaders = []string{"Column", "Kind", "Missing", "Unique", "Cardinality", "Samples"}

func schemaRows(sch *schema.Config) [][]string {
	rows := make([][]string, 0, len(sch.Columns))
	for _, c := range sch.Columns {
		rows = append(rows, []string{
			c.Name,
			string(c.Kind),
			strconv.Itoa(c.MissingCount),
			strconv.Itoa(c.UniqueCount),
			c.CardinalityHint,
			strings.Join(c.SampleValues, " | "),
		})
	}
	return rows
}
