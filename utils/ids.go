package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateShortID generates a short, URL-safe random ID
// Format: 8 characters, lowercase alphanumeric
// Example: "x7k9m2p1"
func GenerateShortID() string {
	return randomID(8)
}

// GenerateID generates a longer random ID, used as the stable handle for
// embedded notes and file entries
// Format: 16 characters, lowercase alphanumeric
// Example: "a7k9m2p1x5n8q3r6"
func GenerateID() string {
	return randomID(16)
}

func randomID(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		result[i] = chars[num.Int64()]
	}

	return string(result)
}
