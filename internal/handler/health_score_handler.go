package handler

import (
	"github.com/gin-gonic/gin"

	"bloom/internal/domain"
	"bloom/internal/service"
)

// HealthScoreResponse is the body of POST /bloomLogic/healthScore.
type HealthScoreResponse struct {
	Score                    int      `json:"score" example:"87"`
	BudgetAdherenceScore     int      `json:"budgetAdherenceScore" example:"35"`
	SavingsRateScore         int      `json:"savingsRateScore" example:"25"`
	SpendingConsistencyScore int      `json:"spendingConsistencyScore" example:"18"`
	EmergencyFundScore       int      `json:"emergencyFundScore" example:"9"`
	Recommendations          string   `json:"recommendations" example:"Keep groceries under budget.\n"`
	RecommendationList       []string `json:"recommendationList"`
	Message                  string   `json:"message"`
}

func newHealthScoreResponse(r *domain.HealthScoreResult) HealthScoreResponse {
	return HealthScoreResponse{
		Score:                    r.Score,
		BudgetAdherenceScore:     r.BudgetAdherenceScore,
		SavingsRateScore:         r.SavingsRateScore,
		SpendingConsistencyScore: r.SpendingConsistencyScore,
		EmergencyFundScore:       r.EmergencyFundScore,
		Recommendations:          r.RecommendationsText(),
		RecommendationList:       r.Recommendations,
		Message:                  r.RawReply,
	}
}

// HealthScoreHandler handles the financial health score endpoint.
type HealthScoreHandler struct {
	healthScoreService service.HealthScoreService
}

// NewHealthScoreHandler creates a new HealthScoreHandler.
func NewHealthScoreHandler(healthScoreService service.HealthScoreService) *HealthScoreHandler {
	return &HealthScoreHandler{healthScoreService: healthScoreService}
}

// Calculate handles POST /bloomLogic/healthScore
// @Summary Calculate financial health score
// @Description Scores financial data 0-100 with a four-part breakdown and recommendations.
// @Tags health-score
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Financial data"
// @Success 200 {object} HealthScoreResponse "Parsed health score"
// @Failure 400 {object} ErrorResponse "Empty or malformed message"
// @Failure 500 {object} ErrorResponse "API key not configured"
// @Failure 502 {object} ErrorResponse "Model provider failed"
// @Security BearerAuth
// @Router /bloomLogic/healthScore [post]
func (h *HealthScoreHandler) Calculate(c *gin.Context) {
	msg, ok := bindMessage(c)
	if !ok {
		return
	}

	res, err := h.healthScoreService.Calculate(c.Request.Context(), msg)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, newHealthScoreResponse(res))
}
