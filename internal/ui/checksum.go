package ui

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumAddr returns the EIP-55 mixed-case form of addr for display.
// Accepts 0x-prefixed or bare 40-hex input.
func ChecksumAddr(addr string) (string, error) {
	clean := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if len(clean) != 40 {
		return "", fmt.Errorf("invalid address length: expected 40 hex chars, got %d", len(clean))
	}
	if _, err := hex.DecodeString(clean); err != nil {
		return "", fmt.Errorf("invalid hex address: %w", err)
	}
	return toChecksum(clean), nil
}

// toChecksum implements EIP-55 mixed-case checksum encoding.
func toChecksum(addr string) string {
	lower := strings.ToLower(addr)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := hex.EncodeToString(h.Sum(nil))

	var result strings.Builder
	result.WriteString("0x")
	for i, c := range lower {
		if c >= '0' && c <= '9' {
			result.WriteByte(byte(c))
			continue
		}
		// Uppercase when the corresponding hash nibble is >= 8.
		if hash[i] >= '8' {
			result.WriteByte(byte(c - 32))
		} else {
			result.WriteByte(byte(c))
		}
	}
	return result.String()
}
