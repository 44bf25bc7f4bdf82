package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpDigits = 6

// DigitOTPGenerator draws fixed-length numeric codes from crypto/rand.
// Codes are uniform over [0, 10^6); leading zeros are preserved.
type DigitOTPGenerator struct{}

func NewDigitOTPGenerator() *DigitOTPGenerator {
	return &DigitOTPGenerator{}
}

func (g *DigitOTPGenerator) Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
