package catalog

import (
	"fmt"

	"docuextract/internal/domain"
)

var formats = []domain.OutputFormatSpec{
	{
		ID:                       domain.FormatSummary,
		Label:                    "Summary",
		PromptBase:               "Summarize the key information from the following document content. Provide a concise and comprehensive overview.",
		RequiresStructuredOutput: false,
	},
	{
		ID:    domain.FormatJSONExtract,
		Label: "JSON Structure",
		PromptBase: "Analyze the following document content and extract structured information as a JSON object. " +
			"Identify meaningful fields and values. If the document appears to be a form, invoice, or has a clear tabular structure, try to replicate that. " +
			"For unstructured text, identify key entities, topics, and their relevant details. Ensure the output is a valid JSON object.",
		RequiresStructuredOutput: true,
	},
	{
		ID:                       domain.FormatKeyValuePairs,
		Label:                    "Key-Value Pairs",
		PromptBase:               "Extract the most important key-value pairs from the following document content. List them clearly, for example:\nKey1: Value1\nKey2: Value2",
		RequiresStructuredOutput: false,
	},
}

// DefaultFormat is used when a caller does not choose one.
const DefaultFormat = domain.FormatSummary

// All returns the supported formats in display order.
func All() []domain.OutputFormatSpec {
	out := make([]domain.OutputFormatSpec, len(formats))
	copy(out, formats)
	return out
}

// Lookup returns the format with the given id.
func Lookup(id domain.FormatID) (domain.OutputFormatSpec, error) {
	for _, f := range formats {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.OutputFormatSpec{}, fmt.Errorf("%w: %s", domain.ErrFormatNotFound, id)
}
