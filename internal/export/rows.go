// Package export writes extraction outcomes as two-column field/value sheets.
package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"docuextract/internal/domain"
)

// Row is one field/value line of an export.
type Row struct {
	Field string
	Value string
}

// columns defines the header row.
var columns = []string{"Field", "Value"}

// Rows flattens an outcome. Structured values become dotted paths, key-value
// text is split on the first colon of each line, other text is a single row.
func Rows(o *domain.ExtractionOutcome) []Row {
	switch o.Content.Kind {
	case domain.ContentStructured:
		var rows []Row
		flatten("", o.Content.Value, &rows)
		return rows
	case domain.ContentParseFailure:
		if o.Content.Failure == nil {
			return nil
		}
		return []Row{
			{Field: "error", Value: o.Content.Failure.Error},
			{Field: "rawResponse", Value: o.Content.Failure.RawResponse},
		}
	case domain.ContentPlainText:
		if o.Format == domain.FormatKeyValuePairs {
			return keyValueRows(o.Content.Text)
		}
		return []Row{{Field: string(o.Format), Value: o.Content.Text}}
	default:
		return nil
	}
}

func flatten(prefix string, v any, rows *[]Row) {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			*rows = append(*rows, Row{Field: prefix, Value: "{}"})
			return
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(joinPath(prefix, k), t[k], rows)
		}
	case []any:
		if len(t) == 0 {
			*rows = append(*rows, Row{Field: prefix, Value: "[]"})
			return
		}
		for i, item := range t {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), item, rows)
		}
	case nil:
		*rows = append(*rows, Row{Field: prefix, Value: ""})
	case string:
		*rows = append(*rows, Row{Field: prefix, Value: t})
	case json.Number:
		*rows = append(*rows, Row{Field: prefix, Value: t.String()})
	default:
		*rows = append(*rows, Row{Field: prefix, Value: fmt.Sprint(t)})
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func keyValueRows(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-* ")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			rows = append(rows, Row{Value: line})
			continue
		}
		rows = append(rows, Row{Field: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return rows
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "extraction"
	}
	return s
}

// BuildFilename returns {sanitized_source}_{format}_{YYYY-MM-DD}.{ext}.
func BuildFilename(sourceName string, format domain.FormatID, ext string) string {
	base := strings.TrimSuffix(sourceName, pathExt(sourceName))
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s_%s.%s", SanitizeFilename(base), strings.ToLower(string(format)), date, ext)
}

func pathExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}
