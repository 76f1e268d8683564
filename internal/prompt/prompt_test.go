package prompt_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"bloom/internal/prompt"
)

func TestTruncate(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, prompt.Truncate(short))

	exact := strings.Repeat("a", prompt.MaxContentChars)
	assert.Equal(t, exact, prompt.Truncate(exact))

	long := strings.Repeat("a", prompt.MaxContentChars) + "TAIL"
	got := prompt.Truncate(long)
	assert.Len(t, got, prompt.MaxContentChars)
	assert.NotContains(t, got, "TAIL")
}

func TestTruncate_CountsCharactersNotBytes(t *testing.T) {
	s := strings.Repeat("€", prompt.MaxContentChars+10)

	got := prompt.Truncate(s)

	assert.Equal(t, prompt.MaxContentChars, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestCompose_Order(t *testing.T) {
	p := prompt.Compose("INSTRUCTION", "CONTENT", "QUESTION?")

	i := strings.Index(p, "INSTRUCTION")
	c := strings.Index(p, "CONTENT")
	q := strings.Index(p, "QUESTION?")
	g := strings.Index(p, "Answer only using the content above")
	assert.True(t, i >= 0 && i < c && c < q && q < g, p)
}

func TestCompose_NoQuestion(t *testing.T) {
	p := prompt.Compose("I", "C", "  ")

	assert.NotContains(t, p, "Question:")
	assert.True(t, strings.HasSuffix(p, "instead of guessing."))
}

func TestCompose_TruncatesContent(t *testing.T) {
	content := strings.Repeat("x", prompt.MaxContentChars) + "DROPPED"

	p := prompt.Compose("I", content, "")

	assert.NotContains(t, p, "DROPPED")
}

func TestDocumentSummary_MentionsSentinel(t *testing.T) {
	p := prompt.DocumentSummary("Balance: 100")

	assert.Contains(t, p, prompt.RefusalSentinel)
	assert.Contains(t, p, "Balance: 100")
}

func TestDocumentAnswer_DefaultQuestion(t *testing.T) {
	p := prompt.DocumentAnswer("summary text", "")

	assert.Contains(t, p, prompt.DefaultDocumentQuestion)
	assert.Contains(t, p, "summary text")
}

func TestDocumentAnswer_UserQuestion(t *testing.T) {
	p := prompt.DocumentAnswer("summary text", "How much did I spend on food?")

	assert.Contains(t, p, "Question: How much did I spend on food?")
	assert.NotContains(t, p, prompt.DefaultDocumentQuestion)
}

func TestIsRefusal(t *testing.T) {
	assert.True(t, prompt.IsRefusal("Sorry. I cannot help with the provided file."))
	assert.False(t, prompt.IsRefusal("i cannot help with the provided file"))
	assert.False(t, prompt.IsRefusal("Your balance is 100."))
}

func TestHealthScore_RequestsParsableFormat(t *testing.T) {
	p := prompt.HealthScore("income 5000")

	for _, want := range []string{"SCORE:", "BREAKDOWN:", "Budget Adherence: <score>/40",
		"Savings Rate: <score>/30", "Spending Consistency: <score>/20",
		"Emergency Fund: <score>/10", "RECOMMENDATIONS:"} {
		assert.Contains(t, p, want)
	}
}

func TestCSVValidation_ListsCanonicalFields(t *testing.T) {
	p := prompt.CSVValidation("Name, Amount")

	for _, want := range []string{"STATUS:", "REASON:", "COLUMN_MAPPING:",
		"- Transaction Name (required)", "- Payment Method (optional)",
		"Date: <column name or MISSING>"} {
		assert.Contains(t, p, want)
	}
}

func TestChatAndInsights_EmbedMessage(t *testing.T) {
	assert.Contains(t, prompt.Chat("how do I save?"), "how do I save?")
	assert.Contains(t, prompt.Insights("Total Income: $10"), "Total Income: $10")
}
