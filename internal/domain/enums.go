package domain

// Category is the class of an uploaded file. It drives payload encoding and model routing.
type Category string

const (
	CategoryPlainText        Category = "plain_text"
	CategoryImage            Category = "image"
	CategoryPortableDocument Category = "portable_document"
)

// IsBinary reports whether documents of this category travel as base64 inline data.
func (c Category) IsBinary() bool {
	return c == CategoryImage || c == CategoryPortableDocument
}

// MaxFileSizeBytes is the upload size ceiling (10 MiB).
const MaxFileSizeBytes int64 = 10 * 1024 * 1024

// AllowedMediaTypes maps each accepted media type to its category.
// The three allow-lists are disjoint.
var AllowedMediaTypes = map[string]Category{
	"text/plain":      CategoryPlainText,
	"text/markdown":   CategoryPlainText,
	"image/png":       CategoryImage,
	"image/jpeg":      CategoryImage,
	"image/jpg":       CategoryImage,
	"image/webp":      CategoryImage,
	"application/pdf": CategoryPortableDocument,
}

// AllowedExtensions maps file extensions (without dot) to media types.
var AllowedExtensions = map[string]string{
	"txt":      "text/plain",
	"md":       "text/markdown",
	"markdown": "text/markdown",
	"png":      "image/png",
	"jpg":      "image/jpeg",
	"jpeg":     "image/jpeg",
	"webp":     "image/webp",
	"pdf":      "application/pdf",
}

// FormatID identifies one of the supported output formats.
type FormatID string

const (
	FormatSummary       FormatID = "SUMMARY"
	FormatJSONExtract   FormatID = "JSON_EXTRACT"
	FormatKeyValuePairs FormatID = "KEY_VALUE_PAIRS"
)

// ResponseFormat constrains the shape of the remote model's answer.
type ResponseFormat string

const (
	ResponseFormatFreeText   ResponseFormat = ""
	ResponseFormatStructured ResponseFormat = "structured"
)

// ContentKind tags the variant held by NormalizedContent.
type ContentKind string

const (
	ContentPlainText    ContentKind = "plain_text"
	ContentStructured   ContentKind = "structured"
	ContentParseFailure ContentKind = "parse_failure"
)

// ExtractionState is a step of the single-flight extraction lifecycle.
type ExtractionState string

const (
	StateIdle             ExtractionState = "idle"
	StateValidating       ExtractionState = "validating"
	StateAwaitingResponse ExtractionState = "awaiting_response"
	StateDone             ExtractionState = "done"
	StateFailed           ExtractionState = "failed"
)

// stateTransitions lists the legal next states for every state.
var stateTransitions = map[ExtractionState][]ExtractionState{
	StateIdle:             {StateValidating},
	StateValidating:       {StateAwaitingResponse, StateFailed},
	StateAwaitingResponse: {StateDone, StateFailed},
	StateDone:             {StateValidating},
	StateFailed:           {StateValidating},
}

// CanTransition reports whether moving from s to next is allowed.
func (s ExtractionState) CanTransition(next ExtractionState) bool {
	for _, allowed := range stateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InFlight reports whether an extraction is currently running.
func (s ExtractionState) InFlight() bool {
	return s == StateValidating || s == StateAwaitingResponse
}
