package lookup

import (
	"fmt"
	"strings"
)

// IdentifierLength is the number of digits in a CNPJ.
const IdentifierLength = 14

// InvalidIdentifierError reports a CNPJ that does not have 14 digits once
// formatting characters are removed.
type InvalidIdentifierError struct {
	Input string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("CNPJ %s inválido.", e.Input)
}

// Normalize strips every non-digit from raw and checks that exactly 14
// digits remain. Check digits are not verified.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if len(cleaned) != IdentifierLength {
		return "", &InvalidIdentifierError{Input: raw}
	}
	return cleaned, nil
}

// Mask formats a normalized CNPJ as 00.000.000/0000-00. Anything that is not
// a normalized CNPJ is returned unchanged.
func Mask(id string) string {
	if len(id) != IdentifierLength {
		return id
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", id[0:2], id[2:5], id[5:8], id[8:12], id[12:14])
}
