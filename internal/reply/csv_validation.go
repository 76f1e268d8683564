package reply

import (
	"strings"
	"unicode"

	"bloom/internal/domain"
)

const (
	statusMarker  = "STATUS:"
	reasonMarker  = "REASON:"
	mappingMarker = "COLUMN_MAPPING:"
	missingToken  = "MISSING"
)

// ParseCSVValidation reads a reply of the form
//
//	STATUS: VALID
//	REASON: ...
//	COLUMN_MAPPING:
//	Transaction Name: Description
//	Amount: MISSING
//
// Fields mapped to MISSING are left out of the mapping. Mapping lines keep
// their reply order.
func ParseCSVValidation(raw string) *domain.CSVValidationResult {
	res := &domain.CSVValidationResult{
		Status:        domain.ValidationStatusUnknown,
		ColumnMapping: domain.ColumnMapping{},
	}
	inMapping := false

	for _, line := range splitLines(raw) {
		line = cleanLine(line)
		switch {
		case strings.HasPrefix(line, statusMarker):
			res.Status = parseStatus(afterColon(line))
		case strings.HasPrefix(line, reasonMarker):
			res.Reason = afterColon(line)
		case strings.HasPrefix(line, mappingMarker):
			inMapping = true
		case inMapping:
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			key = strings.TrimSpace(strings.TrimLeft(key, "-*• \t"))
			value = strings.Trim(strings.TrimSpace(value), "\"'`*")
			value = strings.TrimSpace(value)
			if key == "" || value == "" || strings.EqualFold(value, missingToken) {
				continue
			}
			res.ColumnMapping = append(res.ColumnMapping, domain.ColumnMatch{Field: key, Column: value})
		}
	}
	return res
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}

// parseStatus takes the leading word of the status value, so "VALID." and
// "valid - all columns found" both read as VALID.
func parseStatus(v string) domain.ValidationStatus {
	v = strings.TrimLeft(v, "*`\"' ")
	end := strings.IndexFunc(v, func(r rune) bool { return !unicode.IsLetter(r) })
	if end >= 0 {
		v = v[:end]
	}
	return domain.ParseValidationStatus(strings.ToUpper(v))
}
