// Package prompt builds the instruction prompts sent to the model gateway.
package prompt

import (
	"fmt"
	"strings"

	"bloom/internal/domain"
)

// MaxContentChars bounds how much user content is embedded in one prompt.
// Longer content is cut silently.
const MaxContentChars = 30000

// RefusalSentinel is the phrase the summary stage is told to reply with when
// a document has no financial content. Seeing it ends the request early.
const RefusalSentinel = "I cannot help with the provided file"

// DefaultDocumentQuestion is asked when a document is uploaded without a question.
const DefaultDocumentQuestion = "Summarize the key financial information in this document."

const groundingInstruction = "Answer only using the content above. If the content does not contain the answer, say so instead of guessing."

// Truncate cuts s to at most MaxContentChars characters.
func Truncate(s string) string {
	n := 0
	for i := range s {
		if n == MaxContentChars {
			return s[:i]
		}
		n++
	}
	return s
}

// Compose builds a prompt from a system instruction, the bounded content and
// an optional question, ending with the grounding instruction.
func Compose(instruction, content, question string) string {
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\n--- CONTENT START ---\n")
	b.WriteString(Truncate(content))
	b.WriteString("\n--- CONTENT END ---\n\n")
	if q := strings.TrimSpace(question); q != "" {
		b.WriteString("Question: ")
		b.WriteString(q)
		b.WriteString("\n\n")
	}
	b.WriteString(groundingInstruction)
	return b.String()
}

// DocumentSummary is the first stage of document Q&A: extract the financial
// content of an uploaded file, or refuse with RefusalSentinel.
func DocumentSummary(documentText string) string {
	instruction := fmt.Sprintf(`You are a financial document assistant.
Read the document below and produce a concise summary of its financial content only: balances, income, expenses, transactions, dates, totals and account details.
Ignore anything that is not financial.
If the document contains no financial information at all, reply with exactly: %s`, RefusalSentinel)
	return Compose(instruction, documentText, "")
}

// DocumentAnswer is the second stage: answer the user's question strictly
// from the stage-one summary.
func DocumentAnswer(summary, question string) string {
	if strings.TrimSpace(question) == "" {
		question = DefaultDocumentQuestion
	}
	instruction := `You are a financial document assistant.
The content below is a summary of a user's financial document. Answer the user's question strictly from this summary.`
	return Compose(instruction, summary, question)
}

// IsRefusal reports whether a summary-stage reply is the refusal sentinel.
func IsRefusal(reply string) bool {
	return strings.Contains(reply, RefusalSentinel)
}

// Chat builds the prompt for a free-form chat message.
func Chat(message string) string {
	instruction := `You are Bloom, a friendly personal finance assistant.
Help the user with budgeting, saving, spending, debt and general money questions.
If the message is not about personal finance, politely decline and steer the conversation back to finances.
Keep answers short and practical.`
	return Compose(instruction, message, "")
}

// Insights builds the prompt that turns a monthly financial summary into
// personalized insights.
func Insights(summary string) string {
	instruction := `You are a personal finance analyst.
From the user's financial summary below, provide 3-4 personalized financial insights with an actionable recommendation for each.
Use short paragraphs or bullet points and refer to the actual figures.`
	return Compose(instruction, summary, "")
}

// HealthScore builds the prompt for the financial health score. The reply
// format it requests is what reply.ParseHealthScore reads.
func HealthScore(financialData string) string {
	instruction := fmt.Sprintf(`You are a financial health evaluator.
Score the user's financial health from 0 to 100 using their data below. The score is the sum of four components:
- Budget Adherence (0-%d)
- Savings Rate (0-%d)
- Spending Consistency (0-%d)
- Emergency Fund (0-%d)

Reply in exactly this format and nothing else:
SCORE: <overall score>/100
BREAKDOWN:
Budget Adherence: <score>/%d
Savings Rate: <score>/%d
Spending Consistency: <score>/%d
Emergency Fund: <score>/%d
RECOMMENDATIONS:
<one recommendation per line>`,
		domain.MaxBudgetAdherenceScore, domain.MaxSavingsRateScore,
		domain.MaxSpendingConsistencyScore, domain.MaxEmergencyFundScore,
		domain.MaxBudgetAdherenceScore, domain.MaxSavingsRateScore,
		domain.MaxSpendingConsistencyScore, domain.MaxEmergencyFundScore)
	return Compose(instruction, financialData, "")
}

// CSVValidation builds the prompt asking the model to judge whether a CSV
// sample holds transactions and to map its columns onto the canonical
// fields. The reply format it requests is what reply.ParseCSVValidation reads.
func CSVValidation(csvSample string) string {
	var fields, mapping strings.Builder
	for _, f := range domain.TransactionFields {
		req := "optional"
		if isRequired(f) {
			req = "required"
		}
		fmt.Fprintf(&fields, "- %s (%s)\n", f.Label(), req)
		fmt.Fprintf(&mapping, "%s: <column name or MISSING>\n", f.Label())
	}

	instruction := fmt.Sprintf(`You are validating a CSV file that a user wants to import as financial transactions.
The first line of the content is the header row. Decide which column holds each of these fields:
%s
Use STATUS VALID when every required field has a column, INVALID when the data is transactional but a required field is missing, and IRRELEVANT when the file does not contain financial transactions.

Reply in exactly this format and nothing else:
STATUS: <VALID, INVALID or IRRELEVANT>
REASON: <one sentence>
COLUMN_MAPPING:
%s`, fields.String(), strings.TrimRight(mapping.String(), "\n"))
	return Compose(instruction, csvSample, "")
}

// GatewayCheck is the fixed prompt used by the gateway smoke test.
const GatewayCheck = "Why is the sky blue?"

func isRequired(f domain.TransactionField) bool {
	for _, r := range domain.RequiredTransactionFields {
		if r == f {
			return true
		}
	}
	return false
}
