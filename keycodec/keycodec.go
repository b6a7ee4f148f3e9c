// Package keycodec normalizes key material arriving in any of the shapes a
// boundary (JSON API, CLI flag, wire message) might hand the library into
// canonical fixed-size byte arrays, or rejects it. It never accepts partial
// matches: a shape that almost fits is a BadKeyFormat error, not a
// best-effort coercion.
package keycodec

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/mr-tron/base58"

	"github.com/pivy-xyz/stealth/errs"
)

// Scalar is a canonical 32-byte secp256k1 private scalar.
type Scalar [32]byte

// CompressedPoint is a canonical 33-byte SEC1 compressed secp256k1 public
// key, leading byte 0x02 or 0x03.
type CompressedPoint [33]byte

// BufferObject mirrors the `{type:"Buffer", data:[...]}` shape that a
// JSON-decoded boundary value arrives as; it is one of the four input
// shapes NormalizeScalar and NormalizePoint accept.
type BufferObject struct {
	Type string
	Data []byte
}

// NormalizeScalar accepts 32 raw bytes, a 64-character hex string, a
// base58 string that decodes to exactly 32 bytes, or a BufferObject, and
// returns the canonical Scalar. Any other shape, or any length mismatch,
// fails with errs.BadKeyFormat.
func NormalizeScalar(raw any) (Scalar, error) {
	b, err := decode(raw, 32)
	if err != nil {
		return Scalar{}, err
	}
	var s Scalar
	copy(s[:], b)
	return s, nil
}

// NormalizePoint accepts 33 raw bytes, a 66-character hex string, a
// base58 string that decodes to exactly 33 bytes, or a BufferObject, and
// returns the canonical CompressedPoint. Any other shape, or any length
// mismatch, fails with errs.BadKeyFormat.
func NormalizePoint(raw any) (CompressedPoint, error) {
	b, err := decode(raw, 33)
	if err != nil {
		return CompressedPoint{}, err
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return CompressedPoint{}, errs.New(errs.BadKeyFormat, "compressed point must start with 0x02 or 0x03, got 0x%02x", b[0])
	}
	var p CompressedPoint
	copy(p[:], b)
	return p, nil
}

// decode dispatches on the shape of raw and returns exactly wantLen bytes
// or a BadKeyFormat error. It never truncates: a decoded value of the
// wrong length is rejected outright.
func decode(raw any, wantLen int) ([]byte, error) {
	switch v := raw.(type) {
	case []byte:
		if len(v) != wantLen {
			return nil, errs.New(errs.BadKeyFormat, "raw bytes: want %d bytes, got %d", wantLen, len(v))
		}
		out := make([]byte, wantLen)
		copy(out, v)
		return out, nil

	case BufferObject:
		if len(v.Data) != wantLen {
			return nil, errs.New(errs.BadKeyFormat, "buffer object: want %d bytes, got %d", wantLen, len(v.Data))
		}
		out := make([]byte, wantLen)
		copy(out, v.Data)
		return out, nil

	case map[string]any:
		data, ok := v["data"]
		if t, _ := v["type"].(string); t != "Buffer" || !ok {
			return nil, errs.New(errs.BadKeyFormat, "unrecognized object shape")
		}
		items, ok := data.([]any)
		if !ok {
			return nil, errs.New(errs.BadKeyFormat, "Buffer.data is not an array")
		}
		out := make([]byte, 0, len(items))
		for _, item := range items {
			n, ok := item.(float64)
			if !ok || n < 0 || n > 255 {
				return nil, errs.New(errs.BadKeyFormat, "Buffer.data contains a non-byte value")
			}
			out = append(out, byte(n))
		}
		if len(out) != wantLen {
			return nil, errs.New(errs.BadKeyFormat, "buffer object: want %d bytes, got %d", wantLen, len(out))
		}
		return out, nil

	case string:
		return decodeString(v, wantLen)

	default:
		return nil, errs.New(errs.BadKeyFormat, "unrecognized key material shape %T", raw)
	}
}

func decodeString(s string, wantLen int) ([]byte, error) {
	if len(s) == wantLen*2 && isHex(s) {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errs.Wrap(errs.BadKeyFormat, err, "invalid hex string")
		}
		return b, nil
	}

	b, err := base58.Decode(s)
	if err != nil {
		return nil, errs.Wrap(errs.BadKeyFormat, err, "invalid base58 string")
	}
	if len(b) != wantLen {
		return nil, errs.New(errs.BadKeyFormat, "base58 string decoded to %d bytes, want %d", len(b), wantLen)
	}
	return b, nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// EncodeUTF8 returns the UTF-8 bytes of s, validating that s is well-formed
// UTF-8.
func EncodeUTF8(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errs.New(errs.BadKeyFormat, "input is not valid UTF-8")
	}
	return []byte(s), nil
}

// PadLabel UTF-8 encodes label and right-zero-pads it to exactly 32 bytes,
// truncating silently if the encoded label is longer than 32 bytes. This
// matches the fixed-width on-chain event schema and
// is intentionally lossy for long labels.
func PadLabel(label string) [32]byte {
	var out [32]byte
	b := []byte(label)
	n := copy(out[:], b)
	_ = n
	return out
}
