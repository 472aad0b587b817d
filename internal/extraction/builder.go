package extraction

import (
	"strings"

	"docuextract/internal/domain"
)

// DefaultModel is the Gemini model used for both text and multimodal uploads.
const DefaultModel = "gemini-2.5-flash-preview-04-17"

const (
	instructionsPrefix = "Additionally, consider the following: "
	documentLabel      = "Document Content:"
)

// Builder turns a validated document and a chosen format into an ExtractionRequest.
type Builder struct {
	TextModel       string
	MultimodalModel string
}

// NewBuilder creates a Builder. Empty model names fall back to DefaultModel.
func NewBuilder(textModel, multimodalModel string) *Builder {
	if textModel == "" {
		textModel = DefaultModel
	}
	if multimodalModel == "" {
		multimodalModel = DefaultModel
	}
	return &Builder{TextModel: textModel, MultimodalModel: multimodalModel}
}

// ComposePrompt appends the trimmed user instructions to the base prompt, if any.
func ComposePrompt(base, instructions string) string {
	trimmed := strings.TrimSpace(instructions)
	if trimmed == "" {
		return base
	}
	return base + "\n\n" + instructionsPrefix + trimmed
}

// SelectModel is the single routing decision between the text and multimodal models.
func (b *Builder) SelectModel(category domain.Category) string {
	isBinaryUpload := category.IsBinary()
	if isBinaryUpload {
		return b.MultimodalModel
	}
	return b.TextModel
}

// Build shapes the request. Binary uploads send the inline data first and the
// prompt second; text uploads send one segment holding prompt and content.
func (b *Builder) Build(doc *domain.UploadedDocument, format domain.OutputFormatSpec, instructions string) domain.ExtractionRequest {
	prompt := ComposePrompt(format.PromptBase, instructions)

	var segments []domain.ContentSegment
	if doc.Category.IsBinary() {
		segments = []domain.ContentSegment{
			{InlineData: &domain.InlineData{MediaType: doc.MediaType, Data: doc.Payload}},
			{Text: prompt},
		}
	} else {
		segments = []domain.ContentSegment{
			{Text: prompt + "\n\n" + documentLabel + "\n" + doc.Payload},
		}
	}

	responseFormat := domain.ResponseFormatFreeText
	if format.RequiresStructuredOutput {
		responseFormat = domain.ResponseFormatStructured
	}

	return domain.ExtractionRequest{
		Category:                 doc.Category,
		MediaType:                doc.MediaType,
		Payload:                  doc.Payload,
		ComposedPrompt:           prompt,
		RequiresStructuredOutput: format.RequiresStructuredOutput,
		Model:                    b.SelectModel(doc.Category),
		ResponseFormat:           responseFormat,
		Segments:                 segments,
	}
}
