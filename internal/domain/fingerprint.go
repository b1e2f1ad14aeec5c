package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Fingerprint computes a stable digest of (trimmed title, content) used to
// detect resubmission of unchanged content. It is not a security primitive.
//
// Content is decoded and re-encoded so that object key order and insignificant
// whitespace do not affect the digest. Numbers keep their literal form.
// Invalid UTF-8 is rejected: the encoder would fold it into U+FFFD and
// distinct inputs would share a digest.
func Fingerprint(title string, content json.RawMessage) (string, error) {
	if !utf8.ValidString(title) {
		return "", fmt.Errorf("fingerprint: title is not valid UTF-8: %w", ErrValidation)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("fingerprint: content is not valid UTF-8: %w", ErrValidation)
	}

	var doc any
	if len(bytes.TrimSpace(content)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return "", fmt.Errorf("fingerprint: decode content: %w", err)
		}
	}

	// encoding/json writes map keys in sorted order.
	canonical, err := json.Marshal(map[string]any{
		"title":   strings.TrimSpace(title),
		"content": doc,
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint: encode: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
