package transfers

import (
	"strconv"
	"strings"

	"fedtransfers-backend/lib/textutil"
)

// NormalizeComponent cleans a raw row label into a candidate component
// name by stripping a trailing footnote marker and surrounding
// whitespace. Matching against the canonical component set happens
// case-insensitively at the cleaning stage; labels that match nothing
// are simply dropped there.
func NormalizeComponent(label string) string {
	return textutil.StripFootnote(label)
}

var currencyChars = strings.NewReplacer("$", "", ",", "")

// CoerceNumber converts a raw formatted cell into a numeric value.
// A lone "-" is the source document's placeholder for "not applicable"
// and coerces to an explicit 0. Any other token has currency symbols and
// thousands separators stripped before parsing; tokens that still fail
// to parse report ok=false and are treated as missing, not as an error.
func CoerceNumber(raw string) (value float64, ok bool) {
	if raw == "-" {
		return 0, true
	}
	cleaned := strings.TrimSpace(currencyChars.Replace(raw))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
