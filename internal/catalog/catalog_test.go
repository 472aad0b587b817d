package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuextract/internal/catalog"
	"docuextract/internal/domain"
)

func TestAll_Order(t *testing.T) {
	formats := catalog.All()
	require.Len(t, formats, 3)

	assert.Equal(t, domain.FormatSummary, formats[0].ID)
	assert.Equal(t, "Summary", formats[0].Label)
	assert.Equal(t, domain.FormatJSONExtract, formats[1].ID)
	assert.Equal(t, "JSON Structure", formats[1].Label)
	assert.Equal(t, domain.FormatKeyValuePairs, formats[2].ID)
	assert.Equal(t, "Key-Value Pairs", formats[2].Label)
}

func TestAll_OnlyJSONExtractIsStructured(t *testing.T) {
	for _, f := range catalog.All() {
		assert.Equal(t, f.ID == domain.FormatJSONExtract, f.RequiresStructuredOutput, f.ID)
		assert.NotEmpty(t, f.PromptBase, f.ID)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	formats := catalog.All()
	formats[0].Label = "changed"

	assert.Equal(t, "Summary", catalog.All()[0].Label)
}

func TestLookup_Found(t *testing.T) {
	f, err := catalog.Lookup(domain.FormatKeyValuePairs)
	require.NoError(t, err)
	assert.Contains(t, f.PromptBase, "Key1: Value1\nKey2: Value2")
}

func TestLookup_NotFound(t *testing.T) {
	_, err := catalog.Lookup("XML")
	assert.ErrorIs(t, err, domain.ErrFormatNotFound)
}

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, domain.FormatSummary, catalog.DefaultFormat)
}
