package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/logger"
	"bloom/internal/port"
	"bloom/internal/prompt"
)

// AssistantService answers chat messages, uploaded documents and insight
// requests through the model gateway.
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
	Insights(ctx context.Context, summary string) (string, error)
	ProcessFile(ctx context.Context, input UploadInput) (string, error)
	Ping(ctx context.Context) (string, error)
}

type assistantService struct {
	gateway   port.ModelGateway
	extractor port.TextExtractor
	maxUpload int64
}

// NewAssistantService creates a new AssistantService implementation.
func NewAssistantService(
	gateway port.ModelGateway,
	extractor port.TextExtractor,
	maxUploadBytes int64,
) AssistantService {
	return &assistantService{
		gateway:   gateway,
		extractor: extractor,
		maxUpload: maxUploadBytes,
	}
}

func (s *assistantService) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyMessage
	}
	return generate(ctx, s.gateway, prompt.Chat(message))
}

func (s *assistantService) Insights(ctx context.Context, summary string) (string, error) {
	if strings.TrimSpace(summary) == "" {
		return "", domain.ErrEmptyMessage
	}
	return generate(ctx, s.gateway, prompt.Insights(summary))
}

// ProcessFile runs two-stage document Q&A: summarize the financial content,
// then answer the question from that summary alone. A refusal in the first
// stage is returned as-is.
func (s *assistantService) ProcessFile(ctx context.Context, input UploadInput) (string, error) {
	data, err := readUpload(input, s.maxUpload)
	if err != nil {
		return "", err
	}

	text, err := s.extractor.Extract(data, input.Filename)
	if err != nil {
		return "", err
	}

	log := logger.Get().With(zap.String("filename", input.Filename))
	log.Debug("document extracted", zap.Int("bytes", len(data)), zap.Int("text_chars", len(text)))

	summary, err := generate(ctx, s.gateway, prompt.DocumentSummary(text))
	if err != nil {
		return "", err
	}
	if prompt.IsRefusal(summary) {
		log.Info("document declined as non-financial")
		return summary, nil
	}

	return generate(ctx, s.gateway, prompt.DocumentAnswer(summary, input.Question))
}

func (s *assistantService) Ping(ctx context.Context) (string, error) {
	return generate(ctx, s.gateway, prompt.GatewayCheck)
}
