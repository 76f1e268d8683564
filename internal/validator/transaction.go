package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"bloom/internal/domain"
)

// FieldMapping maps canonical transaction fields to CSV column names.
type FieldMapping map[domain.TransactionField]string

var errRowUnreadable = errors.New("row could not be read")

// canonicalKeys indexes every accepted spelling of a field, normalized by
// normalizeKey: the camelCase name and the display label.
var canonicalKeys = func() map[string]domain.TransactionField {
	m := make(map[string]domain.TransactionField, len(domain.TransactionFields)*2)
	for _, f := range domain.TransactionFields {
		m[normalizeKey(string(f))] = f
		m[normalizeKey(f.Label())] = f
	}
	return m
}()

// normalizeKey lowercases s and drops everything but letters and digits, so
// "Transaction Name", "transaction_name" and "transactionName" agree.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ResolveMapping converts the model's column mapping into canonical fields.
// Keys that name no known field are ignored. Lines are applied in reply
// order, so when two spellings name the same field the later line wins.
func ResolveMapping(m domain.ColumnMapping) FieldMapping {
	out := make(FieldMapping, len(m))
	for _, match := range m {
		f, ok := canonicalKeys[normalizeKey(match.Field)]
		if !ok || strings.TrimSpace(match.Column) == "" {
			continue
		}
		out[f] = match.Column
	}
	return out
}

// UnmappedFields lists, in display order, the canonical fields with no column.
func UnmappedFields(m FieldMapping) []domain.TransactionField {
	var out []domain.TransactionField
	for _, f := range domain.TransactionFields {
		if _, ok := m[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// CheckImportable applies the import policy to a parsed validation reply and
// returns the resolved mapping when the import may proceed.
//
// IRRELEVANT always fails. INVALID, or a mapping that resolves to nothing,
// fails and names the unmapped fields. Any other status proceeds.
func CheckImportable(v *domain.CSVValidationResult) (FieldMapping, error) {
	if v.Status == domain.ValidationStatusIrrelevant {
		msg := "the file does not contain financial transactions"
		if v.Reason != "" {
			msg += ": " + v.Reason
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailure, msg)
	}

	mapping := ResolveMapping(v.ColumnMapping)
	if v.Status == domain.ValidationStatusInvalid || len(mapping) == 0 {
		msg := "missing columns: " + labels(UnmappedFields(mapping))
		if v.Reason != "" {
			msg += ". " + v.Reason
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailure, msg)
	}
	return mapping, nil
}

// FilterTransactions builds a Transaction from every row whose required
// fields are present, and counts the rest as skipped. A nil row stands for a
// record that failed to parse and is skipped as well.
func FilterTransactions(rows []domain.RawRow, m FieldMapping) ([]domain.Transaction, int) {
	txs := make([]domain.Transaction, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		tx, err := toTransaction(row, m)
		if err != nil {
			skipped++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, skipped
}

// RequireTransactions fails when no row survived filtering.
func RequireTransactions(txs []domain.Transaction, skipped int) error {
	if len(txs) > 0 {
		return nil
	}
	return fmt.Errorf("%w: no valid transactions found (%d rows skipped); every row needs %s",
		domain.ErrValidationFailure, skipped, labels(domain.RequiredTransactionFields))
}

func toTransaction(row domain.RawRow, m FieldMapping) (domain.Transaction, error) {
	if row == nil {
		return domain.Transaction{}, errRowUnreadable
	}
	get := func(f domain.TransactionField) string {
		col, ok := m[f]
		if !ok {
			return ""
		}
		return strings.TrimSpace(cell(row, col))
	}

	tx := domain.Transaction{
		TransactionName: get(domain.FieldTransactionName),
		Amount:          get(domain.FieldAmount),
		TransactionType: get(domain.FieldTransactionType),
		Date:            get(domain.FieldDate),
		Description:     get(domain.FieldDescription),
		PaymentMethod:   get(domain.FieldPaymentMethod),
	}
	for _, f := range domain.RequiredTransactionFields {
		if tx.Value(f) == "" {
			return domain.Transaction{}, fmt.Errorf("missing %s", f.Label())
		}
	}
	return tx, nil
}

// cell looks up a column exactly, then ignoring case and surrounding space.
func cell(row domain.RawRow, column string) string {
	if v, ok := row[column]; ok {
		return v
	}
	want := strings.TrimSpace(column)
	for k, v := range row {
		if strings.EqualFold(strings.TrimSpace(k), want) {
			return v
		}
	}
	return ""
}

func labels(fields []domain.TransactionField) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Label()
	}
	return strings.Join(out, ", ")
}
