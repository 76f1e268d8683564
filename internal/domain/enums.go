package domain

// FileType represents the upload formats the extractor understands.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeCSV FileType = "csv"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
	"csv": FileTypeCSV,
}

// ValidationStatus is the verdict the model gives for an uploaded CSV.
type ValidationStatus string

const (
	ValidationStatusValid      ValidationStatus = "VALID"
	ValidationStatusInvalid    ValidationStatus = "INVALID"
	ValidationStatusIrrelevant ValidationStatus = "IRRELEVANT"
	ValidationStatusUnknown    ValidationStatus = "unknown"
)

// ParseValidationStatus maps a raw status token to a known status, or
// ValidationStatusUnknown.
func ParseValidationStatus(raw string) ValidationStatus {
	switch ValidationStatus(raw) {
	case ValidationStatusValid, ValidationStatusInvalid, ValidationStatusIrrelevant:
		return ValidationStatus(raw)
	default:
		return ValidationStatusUnknown
	}
}

// TransactionField is a canonical transaction column.
type TransactionField string

const (
	FieldTransactionName TransactionField = "transactionName"
	FieldAmount          TransactionField = "amount"
	FieldTransactionType TransactionField = "transactionType"
	FieldDate            TransactionField = "date"
	FieldDescription     TransactionField = "description"
	FieldPaymentMethod   TransactionField = "paymentMethod"
)

// TransactionFields lists the canonical fields in display order.
var TransactionFields = []TransactionField{
	FieldTransactionName,
	FieldAmount,
	FieldTransactionType,
	FieldDate,
	FieldDescription,
	FieldPaymentMethod,
}

// RequiredTransactionFields must be non-empty for a row to become a Transaction.
var RequiredTransactionFields = []TransactionField{
	FieldTransactionName,
	FieldAmount,
	FieldTransactionType,
	FieldDate,
}

// fieldLabels are the human-readable names used in prompts and error messages.
var fieldLabels = map[TransactionField]string{
	FieldTransactionName: "Transaction Name",
	FieldAmount:          "Amount",
	FieldTransactionType: "Transaction Type",
	FieldDate:            "Date",
	FieldDescription:     "Description",
	FieldPaymentMethod:   "Payment Method",
}

// Label returns the human-readable name of the field.
func (f TransactionField) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}
