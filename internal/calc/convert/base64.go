package convert

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// ErrBinaryPayload is returned when decoded Base64 is not UTF-8 text.
var ErrBinaryPayload = errors.New("decoded data is not text")

// Alphabet selects the Base64 character set.
type Alphabet string

const (
	Standard Alphabet = "standard"
	URLSafe  Alphabet = "url"
)

func (a Alphabet) encoding() (*base64.Encoding, error) {
	switch a {
	case Standard, "":
		return base64.StdEncoding, nil
	case URLSafe:
		return base64.URLEncoding, nil
	default:
		return nil, fmt.Errorf("unknown alphabet %q", string(a))
	}
}

// EncodeBase64 encodes text with the chosen alphabet. Padding is omitted
// when pad is false.
func EncodeBase64(text string, alphabet Alphabet, pad bool) (string, error) {
	enc, err := alphabet.encoding()
	if err != nil {
		return "", err
	}
	if !pad {
		enc = enc.WithPadding(base64.NoPadding)
	}
	return enc.EncodeToString([]byte(text)), nil
}

// DecodeBase64 decodes s, ignoring whitespace and accepting missing padding.
// The error names the offending byte offset for malformed input.
func DecodeBase64(s string, alphabet Alphabet) ([]byte, error) {
	enc, err := alphabet.encoding()
	if err != nil {
		return nil, err
	}
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimRight(s, "=")
	out, err := enc.WithPadding(base64.NoPadding).DecodeString(s)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, fmt.Errorf("invalid %s base64 at offset %d", alphabetName(alphabet), int64(corrupt))
		}
		return nil, err
	}
	return out, nil
}

// DecodeBase64Text decodes s and requires the payload to be UTF-8 text.
// Binary payloads fail with ErrBinaryPayload and their sniffed MIME type.
func DecodeBase64Text(s string, alphabet Alphabet) (string, error) {
	raw, err := DecodeBase64(s, alphabet)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		mt := mimetype.Detect(raw)
		return "", fmt.Errorf("%w: %s, %d bytes", ErrBinaryPayload, mt.String(), len(raw))
	}
	return string(raw), nil
}

// DetectMIME reports the sniffed MIME type and extension of raw.
func DetectMIME(raw []byte) (mime, ext string) {
	mt := mimetype.Detect(raw)
	return mt.String(), mt.Extension()
}

func alphabetName(a Alphabet) string {
	if a == URLSafe {
		return "URL-safe"
	}
	return "standard"
}
