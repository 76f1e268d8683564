package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bloom/internal/domain"
	"bloom/internal/port"
)

// UploadInput is the DTO for file upload requests.
type UploadInput struct {
	Filename string
	Size     int64
	File     io.Reader
	Question string
}

// generate calls the gateway and classifies its failure. A missing API key
// keeps its own identity; anything else becomes an upstream failure that
// carries the provider's error text.
func generate(ctx context.Context, gw port.ModelGateway, prompt string) (string, error) {
	reply, err := gw.Generate(ctx, prompt)
	if err == nil {
		return reply, nil
	}
	if errors.Is(err, domain.ErrConfigurationMissing) {
		return "", err
	}
	return "", fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
}

// readUpload reads at most maxBytes from the upload.
func readUpload(input UploadInput, maxBytes int64) ([]byte, error) {
	if input.File == nil {
		return nil, domain.ErrUnreadableFile
	}
	if maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	r := input.File
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}
