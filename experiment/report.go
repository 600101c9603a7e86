package experiment

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Report column headers; the leading empty cell heads the index column.
var reportHeader = []string{"", "Steered Parameter Value", "Fitness", "Time"}

// ReportFileName returns results_<basename without extension>.csv for a
// plan path.
func ReportFileName(planPath string) string {
	base := filepath.Base(planPath)

	return "results_" + strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}

// WriteReport writes rep as CSV: an index column, the steered value, the
// fitness and the elapsed time in seconds.
func WriteReport(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for i, row := range rep.Rows {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(row.Value, 'g', -1, 64),
			strconv.Itoa(row.Fitness),
			strconv.FormatFloat(row.Elapsed.Seconds(), 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
