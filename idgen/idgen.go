// Package idgen generates request-scoped identifiers.
package idgen

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// Hex returns a Generator of n random bytes, hex-encoded (2n characters).
// Short and log-friendly; not globally unique.
func Hex(n int) Generator {
	const digits = "0123456789abcdef"
	return func() string {
		buf := make([]byte, n)
		if _, err := rand.Read(buf); err != nil {
			panic("idgen: crypto/rand failed: " + err.Error())
		}
		out := make([]byte, 2*n)
		for i, b := range buf {
			out[2*i] = digits[b>>4]
			out[2*i+1] = digits[b&0x0f]
		}
		return string(out)
	}
}

// UUIDv7 returns a Generator of RFC 9562 UUID v7 strings (time-sortable).
func UUIDv7() Generator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Default is used by New.
var Default Generator = UUIDv7()

// New produces an ID using the Default generator.
func New() string {
	return Default()
}
