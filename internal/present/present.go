// Package present renders extraction outcomes for display and copying.
package present

import (
	"bytes"
	"encoding/json"

	"docuextract/internal/domain"
)

// Render returns the text to display for an outcome. Structured values are
// pretty-printed; a parse failure shows the unparsed response instead.
func Render(o *domain.ExtractionOutcome) string {
	switch o.Content.Kind {
	case domain.ContentPlainText:
		return o.Content.Text
	case domain.ContentStructured:
		return indent(o.Content.Value)
	case domain.ContentParseFailure:
		raw := failureRaw(o.Content)
		return prettyIfJSON(raw)
	default:
		return o.RawText
	}
}

// CopyText returns the text to place on the clipboard: the raw response when
// present, else the envelope's raw response, else the stringified content.
func CopyText(o *domain.ExtractionOutcome) string {
	if o.RawText != "" {
		return o.RawText
	}
	switch o.Content.Kind {
	case domain.ContentParseFailure:
		return failureRaw(o.Content)
	case domain.ContentPlainText:
		return o.Content.Text
	case domain.ContentStructured:
		return indent(o.Content.Value)
	default:
		return ""
	}
}

func failureRaw(c domain.NormalizedContent) string {
	if c.Failure == nil {
		return ""
	}
	return c.Failure.RawResponse
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

func prettyIfJSON(s string) string {
	if !json.Valid([]byte(s)) {
		return s
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
