package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrHashMismatch = errors.New("hash mismatch")

// CalculateHash returns the hex-encoded HMAC-SHA256 of data under key, or an
// empty string when no key is configured.
func CalculateHash(data, key string) string {
	if key == "" {
		return ""
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHash checks the supplied hash against data under key. Verification is
// skipped when no key is configured.
func VerifyHash(data, key, hash string) error {
	if key == "" {
		return nil
	}

	expected := CalculateHash(data, key)
	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return ErrHashMismatch
	}
	return nil
}
