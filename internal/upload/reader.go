// Package upload turns an uploaded file body into an UploadedDocument payload.
package upload

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"docuextract/internal/classifier"
	"docuextract/internal/domain"
)

// Input describes a file as declared by the client, plus its body.
type Input struct {
	FileName  string
	MediaType string
	Size      int64
	Body      io.Reader
}

// Read validates the declared type and size, then reads the body into a document.
// Text documents keep their content as a UTF-8 string; images and PDFs are base64
// encoded. The body is never read past the size ceiling.
func Read(input Input) (*domain.UploadedDocument, error) {
	mediaType := classifier.ResolveMediaType(input.MediaType, input.FileName)
	category, err := classifier.Classify(mediaType, input.Size)
	if err != nil {
		return nil, err
	}
	if input.Body == nil {
		return nil, domain.ErrMissingFile
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, domain.MaxFileSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s file: %v", domain.ErrFileReadFailure, mediaType, err)
	}
	if int64(len(data)) > domain.MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrTooLarge, domain.MaxFileSizeBytes)
	}

	return &domain.UploadedDocument{
		FileName:  input.FileName,
		MediaType: mediaType,
		Size:      int64(len(data)),
		Category:  category,
		Payload:   encodePayload(category, data),
	}, nil
}

func encodePayload(category domain.Category, data []byte) string {
	if category.IsBinary() {
		return base64.StdEncoding.EncodeToString(data)
	}
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
