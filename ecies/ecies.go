// Package ecies implements the ECDH shared-secret derivation and the
// unauthenticated, nonce-prefixed XOR keystream cipher used to protect the
// small payloads (ephemeral private keys, notes) that travel alongside a
// stealth payment. See the package-level Note on authenticity below before
// using this for anything beyond what this library already uses it for.
//
// Note on authenticity: this cipher provides confidentiality only, against
// a passive observer who does not know the derived key. It is not an AEAD
// and carries no MAC. The ephemeral-key specialization below gets an
// integrity check "for free" because the plaintext is self-describing
// (a private key and its own public key); EncryptNote/DecryptNote get no
// such check, and callers must validate decrypted note contents themselves.
package ecies

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/mr-tron/base58"

	"github.com/pivy-xyz/stealth/errs"
	"github.com/pivy-xyz/stealth/internal/curve"
	"github.com/pivy-xyz/stealth/keycodec"
)

// NonceSize is the length, in bytes, of the random prefix placed in front
// of every ciphertext. The cipher itself never reads the nonce back; the
// slot exists so a distinct-looking prefix is always present and so a
// future AEAD revision has somewhere to put one.
const NonceSize = 24

// SharedSecretHash computes K = SHA-256(ECDH(priv, pub)_X), the 32-byte
// value this module uses both as a symmetric key (this package) and,
// reinterpreted as a scalar mod the curve order, as the stealth tweak (see
// the root stealth package). priv and pub must be on opposite sides of a
// single ECDH: ECDH(a, B) == ECDH(b, A) whenever B = b*G and A = a*G.
func SharedSecretHash(priv keycodec.Scalar, pub keycodec.CompressedPoint) ([32]byte, error) {
	px, py := curve.Decompress(pub[:])
	if curve.IsInfinity(px, py) {
		return [32]byte{}, errs.New(errs.BadKeyFormat, "ECDH public input does not decode to a valid point")
	}

	k := new(big.Int).SetBytes(priv[:])
	if !curve.ScalarInRange(k) {
		return [32]byte{}, errs.New(errs.BadKeyFormat, "ECDH private input is zero or out of range")
	}

	sx, sy := curve.ScalarMult(px, py, priv[:])
	if curve.IsInfinity(sx, sy) {
		return [32]byte{}, errs.New(errs.BadKeyFormat, "ECDH result is the point at infinity")
	}

	shared := curve.Compress(sx, sy)
	return sha256.Sum256(shared[1:]), nil
}

// Encrypt draws a random NonceSize-byte nonce and XORs plaintext against a
// keystream derived by repeating key, returning nonce||ciphertext.
func Encrypt(plaintext []byte, key [32]byte, r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	out := make([]byte, NonceSize+len(plaintext))
	if _, err := io.ReadFull(r, out[:NonceSize]); err != nil {
		return nil, errs.Wrap(errs.BadKeyFormat, err, "failed to draw nonce")
	}
	xorKeystream(out[NonceSize:], plaintext, key)
	return out, nil
}

// Decrypt reverses Encrypt: it strips the leading nonce (which the cipher
// itself ignores) and XORs the remainder against the same keystream.
func Decrypt(blob []byte, key [32]byte) ([]byte, error) {
	if len(blob) < NonceSize {
		return nil, errs.New(errs.BadKeyFormat, "ciphertext shorter than nonce")
	}
	out := make([]byte, len(blob)-NonceSize)
	xorKeystream(out, blob[NonceSize:], key)
	return out, nil
}

func xorKeystream(dst, src []byte, key [32]byte) {
	for i := range src {
		dst[i] = src[i] ^ key[i%32]
	}
}

// EncryptEphemeralPrivKey encrypts ephPriv||ephPub under the key shared
// between the ephemeral key and the receiver's meta-view public key, and
// base58-encodes the result. This is the blob a payer publishes so the
// intended receiver, and only the intended receiver, can recover ephPriv.
func EncryptEphemeralPrivKey(ephPriv keycodec.Scalar, ephPub keycodec.CompressedPoint, viewPub keycodec.CompressedPoint, r io.Reader) (string, error) {
	key, err := SharedSecretHash(ephPriv, viewPub)
	if err != nil {
		return "", err
	}
	plaintext := make([]byte, 0, 65)
	plaintext = append(plaintext, ephPriv[:]...)
	plaintext = append(plaintext, ephPub[:]...)

	blob, err := Encrypt(plaintext, key, r)
	if err != nil {
		return "", err
	}
	return base58.Encode(blob), nil
}

// DecryptEphemeralPrivKey decrypts a blob produced by EncryptEphemeralPrivKey
// using the receiver's meta-view private key and the ephemeral public key
// published alongside the blob. It recomputes the ephemeral public key from
// the recovered private key and rejects the blob with DecryptionFailure if
// it does not match the trailing bytes of the decrypted plaintext -- the
// only integrity check this unauthenticated cipher gets, by redundancy
// rather than by MAC.
func DecryptEphemeralPrivKey(blobBase58 string, viewPriv keycodec.Scalar, ephPub keycodec.CompressedPoint) (keycodec.Scalar, error) {
	blob, err := base58.Decode(blobBase58)
	if err != nil {
		return keycodec.Scalar{}, errs.Wrap(errs.BadKeyFormat, err, "invalid base58 blob")
	}

	key, err := SharedSecretHash(viewPriv, ephPub)
	if err != nil {
		return keycodec.Scalar{}, err
	}

	plaintext, err := Decrypt(blob, key)
	if err != nil {
		return keycodec.Scalar{}, err
	}
	if len(plaintext) != 65 {
		return keycodec.Scalar{}, errs.New(errs.DecryptionFailure, "decrypted ephemeral blob has wrong length %d, want 65", len(plaintext))
	}

	var recoveredPriv keycodec.Scalar
	copy(recoveredPriv[:], plaintext[:32])
	recoveredPubTail := plaintext[32:65]

	x, y := curve.ScalarBaseMult(recoveredPriv[:])
	recomputedPub := curve.Compress(x, y)

	if !constantTimeEqual(recomputedPub, recoveredPubTail) {
		return keycodec.Scalar{}, errs.New(errs.DecryptionFailure, "recomputed ephemeral public key does not match decrypted blob")
	}
	return recoveredPriv, nil
}

// EncryptNote encrypts a UTF-8 message under the key shared between the
// ephemeral key and the receiver's meta-view public key. The result is raw
// nonce||ciphertext bytes; there is no authentication tag.
func EncryptNote(message string, ephPriv keycodec.Scalar, viewPub keycodec.CompressedPoint, r io.Reader) ([]byte, error) {
	key, err := SharedSecretHash(ephPriv, viewPub)
	if err != nil {
		return nil, err
	}
	return Encrypt([]byte(message), key, r)
}

// DecryptNote decrypts a blob produced by EncryptNote using the receiver's
// meta-view private key and the ephemeral public key published alongside
// the note. There is no integrity check; the caller must validate the
// resulting text at a higher layer.
func DecryptNote(blob []byte, viewPriv keycodec.Scalar, ephPub keycodec.CompressedPoint) (string, error) {
	key, err := SharedSecretHash(viewPriv, ephPub)
	if err != nil {
		return "", err
	}
	plaintext, err := Decrypt(blob, key)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
