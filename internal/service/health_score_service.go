package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/logger"
	"bloom/internal/port"
	"bloom/internal/prompt"
	"bloom/internal/reply"
)

// HealthScoreService scores a user's financial health.
type HealthScoreService interface {
	Calculate(ctx context.Context, financialData string) (*domain.HealthScoreResult, error)
}

type healthScoreService struct {
	gateway port.ModelGateway
}

// NewHealthScoreService creates a new HealthScoreService implementation.
func NewHealthScoreService(gateway port.ModelGateway) HealthScoreService {
	return &healthScoreService{gateway: gateway}
}

func (s *healthScoreService) Calculate(ctx context.Context, financialData string) (*domain.HealthScoreResult, error) {
	if strings.TrimSpace(financialData) == "" {
		return nil, domain.ErrEmptyMessage
	}

	raw, err := generate(ctx, s.gateway, prompt.HealthScore(financialData))
	if err != nil {
		return nil, err
	}

	res := reply.ParseHealthScore(raw)
	logger.Get().Debug("health score parsed",
		zap.Int("score", res.Score),
		zap.Int("recommendations", len(res.Recommendations)))
	return res, nil
}
