/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
)

const (
	pinLength = 6
	maxDigit  = 10
)

type PinGenerator struct {
}

func NewPinGenerator() *PinGenerator {
	return &PinGenerator{}
}

// Generate returns a fresh unpredictable numeric PIN.
func (p *PinGenerator) Generate() (string, error) {
	var pin strings.Builder

	for i := 0; i < pinLength; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(maxDigit))
		if err != nil {
			return "", fmt.Errorf("read random digit: %w", err)
		}

		pin.WriteString(digit.String())
	}

	return pin.String(), nil
}

// Validate compares the supplied PIN against the stored one in constant time.
func (p *PinGenerator) Validate(pin, got string) bool {
	return subtle.ConstantTimeCompare([]byte(pin), []byte(got)) == 1
}
