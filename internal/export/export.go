package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"docuextract/internal/domain"
)

// Kind is an export file format.
type Kind string

const (
	KindCSV  Kind = "csv"
	KindXLSX Kind = "xlsx"
)

// ErrUnknownKind is returned for export formats other than csv and xlsx.
var ErrUnknownKind = errors.New("unknown export format; allowed: csv, xlsx")

// ParseKind parses a user-supplied export format name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCSV:
		return KindCSV, nil
	case KindXLSX:
		return KindXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ContentType returns the MIME type of files of this kind.
func (k Kind) ContentType() string {
	if k == KindXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write writes o to w in the given format.
func Write(w io.Writer, kind Kind, o *domain.ExtractionOutcome) error {
	switch kind {
	case KindCSV:
		return WriteCSV(w, o)
	case KindXLSX:
		return WriteXLSX(w, o)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
