package reply_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloom/internal/reply"
)

const fullHealthReply = `SCORE: 87/100
BREAKDOWN:
Budget Adherence: 35/40
Savings Rate: 25/30
Spending Consistency: 18/20
Emergency Fund: 9/10
RECOMMENDATIONS:
Keep groceries under budget.

Move 10% of income into savings each month.
`

func TestParseHealthScore_Full(t *testing.T) {
	res := reply.ParseHealthScore(fullHealthReply)

	assert.Equal(t, 87, res.Score)
	assert.Equal(t, 35, res.BudgetAdherenceScore)
	assert.Equal(t, 25, res.SavingsRateScore)
	assert.Equal(t, 18, res.SpendingConsistencyScore)
	assert.Equal(t, 9, res.EmergencyFundScore)
	assert.Equal(t, []string{
		"Keep groceries under budget.",
		"Move 10% of income into savings each month.",
	}, res.Recommendations)
	assert.Equal(t, "Keep groceries under budget.\nMove 10% of income into savings each month.\n", res.RecommendationsText())
	assert.Equal(t, fullHealthReply, res.RawReply)
}

func TestParseHealthScore_ScoreOnly(t *testing.T) {
	res := reply.ParseHealthScore("SCORE: 87/100")

	assert.Equal(t, 87, res.Score)
	assert.Zero(t, res.BudgetAdherenceScore)
	assert.Zero(t, res.SavingsRateScore)
	assert.Zero(t, res.SpendingConsistencyScore)
	assert.Zero(t, res.EmergencyFundScore)
	assert.Empty(t, res.Recommendations)
}

func TestParseHealthScore_BreakdownLabelsIgnoredOutsideBreakdown(t *testing.T) {
	res := reply.ParseHealthScore("SCORE: 50\nBudget Adherence: 30/40")

	assert.Equal(t, 50, res.Score)
	assert.Zero(t, res.BudgetAdherenceScore)
}

func TestParseHealthScore_Empty(t *testing.T) {
	res := reply.ParseHealthScore("")

	assert.Zero(t, res.Score)
	assert.NotNil(t, res.Recommendations)
	assert.Empty(t, res.Recommendations)
}

func TestParseHealthScore_UnparsableScore(t *testing.T) {
	res := reply.ParseHealthScore("SCORE: about eighty\nBREAKDOWN:\nSavings Rate: n/a")

	assert.Zero(t, res.Score)
	assert.Zero(t, res.SavingsRateScore)
}

func TestParseHealthScore_OverflowingNumberIsZero(t *testing.T) {
	res := reply.ParseHealthScore("SCORE: 99999999999999999999999999")

	assert.Zero(t, res.Score)
}

func TestParseHealthScore_SubScoresNotCrossChecked(t *testing.T) {
	res := reply.ParseHealthScore("SCORE: 10\nBREAKDOWN:\nBudget Adherence: 40/40\nSavings Rate: 30/30")

	assert.Equal(t, 10, res.Score)
	assert.Equal(t, 40, res.BudgetAdherenceScore)
	assert.Equal(t, 30, res.SavingsRateScore)
}

func TestParseHealthScore_LabelsInsideLine(t *testing.T) {
	raw := "BREAKDOWN:\n- Budget Adherence: 31 out of 40\n* Emergency Fund: 4/10 (low)"

	res := reply.ParseHealthScore(raw)

	assert.Equal(t, 31, res.BudgetAdherenceScore)
	assert.Equal(t, 4, res.EmergencyFundScore)
}

func TestParseHealthScore_MarkdownAndCRLF(t *testing.T) {
	raw := "**SCORE:** 72/100\r\n## BREAKDOWN:\r\nSavings Rate: 20/30\r\nRECOMMENDATIONS:\r\nSpend less.\r\n"

	res := reply.ParseHealthScore(raw)

	assert.Equal(t, 72, res.Score)
	assert.Equal(t, 20, res.SavingsRateScore)
	assert.Equal(t, []string{"Spend less."}, res.Recommendations)
}

func TestParseHealthScore_RecommendationsHeaderDiscarded(t *testing.T) {
	res := reply.ParseHealthScore("RECOMMENDATIONS: ignored text\nfirst\nsecond")

	assert.Equal(t, []string{"first", "second"}, res.Recommendations)
}

func TestParseHealthScore_RecommendationsKeptVerbatim(t *testing.T) {
	raw := "SCORE: 80\nRECOMMENDATIONS:\n**Emergency fund**: save 3 months\n   - indented tip\n## Heading rec\n"

	res := reply.ParseHealthScore(raw)

	assert.Equal(t, []string{
		"**Emergency fund**: save 3 months",
		"   - indented tip",
		"## Heading rec",
	}, res.Recommendations)
}

func TestParseHealthScore_MarkersInsideRecommendationsAreText(t *testing.T) {
	raw := "SCORE: 80\nBREAKDOWN:\nSavings Rate: 20/30\nRECOMMENDATIONS:\nSCORE: 10 is a great target for fees\nBREAKDOWN: Savings Rate: 1\n"

	res := reply.ParseHealthScore(raw)

	assert.Equal(t, 80, res.Score)
	assert.Equal(t, 20, res.SavingsRateScore)
	assert.Equal(t, []string{
		"SCORE: 10 is a great target for fees",
		"BREAKDOWN: Savings Rate: 1",
	}, res.Recommendations)
}
