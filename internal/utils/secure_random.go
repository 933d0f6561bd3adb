package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomDigits generates a cryptographically random string of exactly n
// decimal digits, zero-padded on the left.
func RandomDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("digit count must be positive")
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random digits: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v), nil
}
