package generate

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
)

// RandomInteger returns a uniformly distributed int32 in [math.MinInt32, math.MaxInt32).
func RandomInteger() (int32, error) {
	n, err := RandomIntegerRange(math.MinInt32, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// RandomIntegerN returns a uniformly distributed integer in [0, max).
func RandomIntegerN(max int) (int, error) {
	if max <= 0 {
		return 0, invalidArgument("max", "must be positive")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("read random integer: %w", err)
	}
	return int(n.Int64()), nil
}

// RandomIntegerRange returns a uniformly distributed integer in [min, max).
// The span is computed with big.Int so the full int range is usable.
func RandomIntegerRange(min, max int) (int, error) {
	if min >= max {
		return 0, invalidArgument("min", "must be less than max")
	}

	lo := big.NewInt(int64(min))
	span := new(big.Int).Sub(big.NewInt(int64(max)), lo)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("read random integer: %w", err)
	}
	return int(n.Add(n, lo).Int64()), nil
}

// RandomDigit returns a uniformly distributed integer in [0, 10).
func RandomDigit() (int, error) {
	return RandomIntegerN(10)
}
