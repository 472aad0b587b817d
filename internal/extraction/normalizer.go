package extraction

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"

	"docuextract/internal/domain"
)

// ParseFailureMessage is the error carried by the envelope for unparseable JSON.
const ParseFailureMessage = "Failed to parse JSON response from AI."

// fenceRe matches a fenced block spanning the entire string. It is anchored at both
// ends so fences in the middle of the text are left alone.
var fenceRe = regexp.MustCompile("(?is)^```(?:json)?\\s*\\n?(.*?)\\n?\\s*```$")

// Normalized is the normalizer output: display content plus the untouched raw text.
type Normalized struct {
	Content domain.NormalizedContent
	RawText string
}

// Normalize turns a raw model response into display-ready content. It never fails:
// malformed structured output becomes a parse-failure envelope.
func Normalize(raw string, requiresStructuredOutput bool) Normalized {
	if !requiresStructuredOutput {
		return Normalized{Content: domain.PlainTextContent(raw), RawText: raw}
	}

	text := StripFence(strings.TrimSpace(raw))

	value, err := decodeJSON(text)
	if err != nil {
		return Normalized{
			Content: domain.ParseFailureContent(ParseFailureMessage, text),
			RawText: raw,
		}
	}
	return Normalized{Content: domain.StructuredContent(value), RawText: raw}
}

// StripFence removes a fence wrapping the whole of text. Text without a wrapping
// fence, or with an empty fenced body, is returned unchanged.
func StripFence(text string) string {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return text
	}
	return strings.TrimSpace(m[1])
}

// decodeJSON decodes exactly one JSON value. Numbers are kept as json.Number so
// re-serialization does not lose precision.
func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
