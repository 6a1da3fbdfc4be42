// Package validation holds request-level input checks. Anything that passes
// here is safe to hand to the services; anything that fails is rejected
// before an upstream call is made.
package validation

import (
	"strings"

	"solsight/internal/errors"
)

// base58Alphabet is the bitcoin-style alphabet Solana addresses use: no 0,
// O, I, or l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ValidateAddress checks that a string is plausibly a Solana public key:
// base58, 32 to 44 characters. It does not prove the account exists.
func ValidateAddress(address string) error {
	if len(address) < 32 || len(address) > 44 {
		return errors.ErrInvalidAddress
	}
	for _, r := range address {
		if !strings.ContainsRune(base58Alphabet, r) {
			return errors.ErrInvalidAddress
		}
	}
	return nil
}

// ClampLimit applies the default when the caller sent nothing and caps the
// value at max. Non-positive values fall back to the default.
func ClampLimit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}
