package export

import (
	"encoding/csv"
	"io"

	"docuextract/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the outcome as a BOM-prefixed CSV with a header row.
func WriteCSV(w io.Writer, o *domain.ExtractionOutcome) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, r := range Rows(o) {
		if err := cw.Write([]string{r.Field, r.Value}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
