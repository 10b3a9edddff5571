package generate

import (
	"crypto/rand"
	"fmt"
)

// DefaultPasswordLength is the length used by DefaultPassword.
const DefaultPasswordLength = 12

// Character classes a password position is drawn from.
const (
	PasswordLowercase = "abcdefghijklmnopqrstuvwxyz"
	PasswordUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	PasswordDigits    = "1234567890"
	PasswordSymbols   = "!@#$%^&*_-=+"
)

var passwordClasses = [...]string{
	PasswordLowercase,
	PasswordUppercase,
	PasswordDigits,
	PasswordSymbols,
}

// Password returns a random password of the given length.
//
// Every position independently picks one of the four character classes with
// a separate secure draw, then indexes that class with a random byte modulo
// its size. A class may therefore be missing from the result; callers with
// composition rules must check and regenerate.
func Password(length int) (string, error) {
	if err := validateLength(length); err != nil {
		return "", err
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		class, err := RandomIntegerN(len(passwordClasses))
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		alphabet := passwordClasses[class]
		out[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(out), nil
}

// DefaultPassword returns a password of DefaultPasswordLength characters.
func DefaultPassword() (string, error) {
	return Password(DefaultPasswordLength)
}
