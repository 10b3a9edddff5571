package generate

import (
	"fmt"
	"strings"
)

// DigitCode returns a string of exactly length decimal digits, each drawn
// independently from the secure random source. Intended for verification codes.
func DigitCode(length int) (string, error) {
	if err := validateLength(length); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		d, err := RandomDigit()
		if err != nil {
			return "", fmt.Errorf("generate digit code: %w", err)
		}
		b.WriteByte(byte('0' + d))
	}

	return b.String(), nil
}
