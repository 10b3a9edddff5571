// Package generate provides stateless helpers for URL slugs and cryptographically
// secure random values: numeric codes, integers, passwords and strings.
//
// All randomness comes from crypto/rand. No function keeps state, so every
// helper is safe for concurrent use without locking.
//
// # Features
//
// - Slugs restricted to [a-z0-9-] with a 45 character limit
// - Fixed-length decimal codes for verification flows
// - Bias-free bounded integers via crypto/rand.Int
// - Passwords mixing lowercase, uppercase, digit and symbol classes
// - Random strings from the English or Russian alphanumeric alphabet
// - Random strings from any caller-supplied character set
//
// # Usage
//
// Slugs:
//
//	s := generate.Slug("Hello   World!!")
//	// Output: "hello-world"
//
// Verification codes and integers:
//
//	code, err := generate.DigitCode(6)      // "042917"
//	n, err := generate.RandomIntegerN(5)    // 0..4
//	n, err = generate.RandomIntegerRange(-3, 3) // -3..2
//
// Passwords:
//
//	pw, err := generate.DefaultPassword() // 12 characters
//	pw, err = generate.Password(20)
//
// Note that Password draws the character class of every position independently,
// so a short password may lack a class entirely.
//
// Random strings:
//
//	s, err := generate.RandomString(8, generate.En)
//	s, err = generate.RandomStringFromString(10, "ab")
//	s, err = generate.RandomStringFrom(4, []rune{'x', 'y', 'z'})
//
// # Error Handling
//
// Validation happens before any random bytes are read. Failures are
// *ArgumentError values that unwrap to one of two sentinels:
//
//	_, err := generate.DigitCode(-1)
//	if errors.Is(err, generate.ErrInvalidArgument) {
//		// bad length, empty character set, inverted range
//	}
//
//	_, err = generate.RandomStringFrom(5, nil)
//	if errors.Is(err, generate.ErrMissingArgument) {
//		// character set not provided at all
//	}
//
// Lengths are limited to MaxLength (math.MaxInt32 / 8).
package generate
