package crypto

import (
	"encoding/base64"
	"strings"
)

// ToBase64 encodes bytes to standard base64 with padding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64. Surrounding whitespace is ignored and
// missing padding is tolerated.
func FromBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)

	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
