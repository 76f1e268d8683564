// Package reply parses the model's free-text replies into typed results.
// Parsers never fail: missing or malformed fields fall back to zero values.
package reply

import (
	"strconv"
	"strings"

	"bloom/internal/domain"
)

const (
	scoreMarker           = "SCORE:"
	breakdownMarker       = "BREAKDOWN:"
	recommendationsMarker = "RECOMMENDATIONS:"
)

type healthMode int

const (
	modeNone healthMode = iota
	modeBreakdown
	modeRecommendations
)

// breakdownLabels maps each breakdown label to the result field it fills.
var breakdownLabels = []struct {
	label string
	set   func(r *domain.HealthScoreResult, v int)
}{
	{"Budget Adherence:", func(r *domain.HealthScoreResult, v int) { r.BudgetAdherenceScore = v }},
	{"Savings Rate:", func(r *domain.HealthScoreResult, v int) { r.SavingsRateScore = v }},
	{"Spending Consistency:", func(r *domain.HealthScoreResult, v int) { r.SpendingConsistencyScore = v }},
	{"Emergency Fund:", func(r *domain.HealthScoreResult, v int) { r.EmergencyFundScore = v }},
}

// ParseHealthScore reads a reply of the form
//
//	SCORE: 87/100
//	BREAKDOWN:
//	Budget Adherence: 35/40
//	...
//	RECOMMENDATIONS:
//	one recommendation per line
//
// Sub-scores are kept as reported, without clamping or checking their sum.
// Markdown emphasis is ignored when matching markers. Every non-empty line
// after RECOMMENDATIONS: is a recommendation, stored verbatim.
func ParseHealthScore(raw string) *domain.HealthScoreResult {
	res := &domain.HealthScoreResult{RawReply: raw, Recommendations: []string{}}
	mode := modeNone

	for _, text := range splitLines(raw) {
		// Recommendations run to the end of the reply and are kept as written.
		if mode == modeRecommendations {
			if strings.TrimSpace(text) != "" {
				res.Recommendations = append(res.Recommendations, text)
			}
			continue
		}

		line := cleanLine(text)
		switch {
		case strings.HasPrefix(line, scoreMarker):
			res.Score = firstNumber(line[len(scoreMarker):])
		case strings.HasPrefix(line, breakdownMarker):
			mode = modeBreakdown
		case strings.HasPrefix(line, recommendationsMarker):
			mode = modeRecommendations
		case mode == modeBreakdown:
			for _, b := range breakdownLabels {
				if idx := strings.Index(line, b.label); idx >= 0 {
					b.set(res, firstNumber(line[idx+len(b.label):]))
					break
				}
			}
		}
	}
	return res
}

// firstNumber returns the first run of ASCII digits in s, or 0.
func firstNumber(s string) int {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoi(s[start:i])
		}
	}
	if start >= 0 {
		return atoi(s[start:])
	}
	return 0
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// cleanLine trims whitespace and leading markdown emphasis or heading marks
// for marker matching.
func cleanLine(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*#"))
}
