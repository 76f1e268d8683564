package domain

import "strings"

// Transaction is a single imported transaction. Amount is kept as the raw
// cell text; currency and locale parsing are left to the client.
type Transaction struct {
	TransactionName string `json:"transactionName"`
	Amount          string `json:"amount"`
	TransactionType string `json:"transactionType"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	PaymentMethod   string `json:"paymentMethod"`
}

// Value returns the transaction's value for a canonical field.
func (t *Transaction) Value(f TransactionField) string {
	switch f {
	case FieldTransactionName:
		return t.TransactionName
	case FieldAmount:
		return t.Amount
	case FieldTransactionType:
		return t.TransactionType
	case FieldDate:
		return t.Date
	case FieldDescription:
		return t.Description
	case FieldPaymentMethod:
		return t.PaymentMethod
	default:
		return ""
	}
}

// RawRow is one CSV data row keyed by header name.
type RawRow map[string]string

// HealthScoreResult is the parsed form of a health-score reply. Sub-scores
// are taken as reported; they are not checked against Score.
type HealthScoreResult struct {
	Score                    int      `json:"score"`
	BudgetAdherenceScore     int      `json:"budgetAdherenceScore"`
	SavingsRateScore         int      `json:"savingsRateScore"`
	SpendingConsistencyScore int      `json:"spendingConsistencyScore"`
	EmergencyFundScore       int      `json:"emergencyFundScore"`
	Recommendations          []string `json:"recommendationList"`
	RawReply                 string   `json:"message"`
}

// Sub-score ceilings as requested from the model.
const (
	MaxBudgetAdherenceScore     = 40
	MaxSavingsRateScore         = 30
	MaxSpendingConsistencyScore = 20
	MaxEmergencyFundScore       = 10
)

// RecommendationsText joins the recommendations one per line, each line
// terminated by a newline.
func (r *HealthScoreResult) RecommendationsText() string {
	var b strings.Builder
	for _, rec := range r.Recommendations {
		b.WriteString(rec)
		b.WriteString("\n")
	}
	return b.String()
}

// ColumnMatch is one "field: column" line of a CSV-validation reply. Field is
// the canonical field name as the model wrote it.
type ColumnMatch struct {
	Field  string `json:"field"`
	Column string `json:"column"`
}

// ColumnMapping holds the reply's mapping lines in reply order.
type ColumnMapping []ColumnMatch

// Lookup returns the column for field, matched exactly. A field listed more
// than once resolves to its last line.
func (m ColumnMapping) Lookup(field string) (string, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Field == field {
			return m[i].Column, true
		}
	}
	return "", false
}

// CSVValidationResult is the parsed form of a CSV-validation reply.
type CSVValidationResult struct {
	Status        ValidationStatus `json:"status"`
	Reason        string           `json:"reason"`
	ColumnMapping ColumnMapping    `json:"columnMapping"`
}

// ImportResult is the outcome of a successful CSV import.
type ImportResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Transactions []Transaction `json:"transactions"`
	TotalRows    int           `json:"totalRows"`
	ValidRows    int           `json:"validRows"`
	SkippedRows  int           `json:"skippedRows"`
}
