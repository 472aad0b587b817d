package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutputFormatSpec describes one selectable output shape.
type OutputFormatSpec struct {
	ID                       FormatID `json:"id"`
	Label                    string   `json:"label"`
	PromptBase               string   `json:"-"`
	RequiresStructuredOutput bool     `json:"requires_structured_output"`
}

// UploadedDocument is a validated upload. Payload holds UTF-8 text for plain text
// documents and standard base64 for images and PDFs.
type UploadedDocument struct {
	FileName  string
	MediaType string
	Size      int64
	Category  Category
	Payload   string
}

// InlineData is a binary segment tagged with its media type. Data is base64.
type InlineData struct {
	MediaType string
	Data      string
}

// ContentSegment is one part of a multi-part request: either inline data or text.
type ContentSegment struct {
	InlineData *InlineData
	Text       string
}

// ExtractionRequest is the fully shaped call to the generation endpoint.
type ExtractionRequest struct {
	Category                 Category
	MediaType                string
	Payload                  string
	ComposedPrompt           string
	RequiresStructuredOutput bool
	Model                    string
	ResponseFormat           ResponseFormat
	Segments                 []ContentSegment
}

// ParseFailure is the envelope substituted for structured output that could not be parsed.
type ParseFailure struct {
	Error       string `json:"error"`
	RawResponse string `json:"rawResponse"`
}

// NormalizedContent is the display-ready result of an extraction. Exactly one
// variant is populated, selected by Kind.
type NormalizedContent struct {
	Kind    ContentKind
	Text    string
	Value   any
	Failure *ParseFailure
}

// PlainTextContent wraps free text.
func PlainTextContent(text string) NormalizedContent {
	return NormalizedContent{Kind: ContentPlainText, Text: text}
}

// StructuredContent wraps a decoded JSON value.
func StructuredContent(value any) NormalizedContent {
	return NormalizedContent{Kind: ContentStructured, Value: value}
}

// ParseFailureContent wraps the error envelope for unparseable structured output.
func ParseFailureContent(message, rawResponse string) NormalizedContent {
	return NormalizedContent{
		Kind:    ContentParseFailure,
		Failure: &ParseFailure{Error: message, RawResponse: rawResponse},
	}
}

// MarshalJSON renders the variant in its natural shape: a string, the structured
// value, or the {error, rawResponse} envelope.
func (c NormalizedContent) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ContentPlainText:
		return json.Marshal(c.Text)
	case ContentStructured:
		return json.Marshal(c.Value)
	case ContentParseFailure:
		if c.Failure == nil {
			return json.Marshal(ParseFailure{})
		}
		return json.Marshal(c.Failure)
	default:
		return nil, fmt.Errorf("unknown content kind %q", c.Kind)
	}
}

// ExtractionOutcome is the result of a completed extraction.
type ExtractionOutcome struct {
	ID          uuid.UUID         `json:"id"`
	Format      FormatID          `json:"format"`
	Content     NormalizedContent `json:"content"`
	ContentKind ContentKind       `json:"content_kind"`
	RawText     string            `json:"raw_text,omitempty"`
	Model       string            `json:"model"`
	CompletedAt time.Time         `json:"completed_at"`
}
