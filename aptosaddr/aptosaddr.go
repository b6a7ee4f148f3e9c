// Package aptosaddr deterministically maps a compressed secp256k1 public
// key to a 32-byte Aptos account address using the single-key secp256k1
// authentication scheme, bit-for-bit compatible with the Aptos SDK.
package aptosaddr

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/pivy-xyz/stealth/errs"
	"github.com/pivy-xyz/stealth/internal/curve"
	"github.com/pivy-xyz/stealth/keycodec"
)

// Address is a 32-byte Aptos account address.
type Address [32]byte

const (
	keyTypeSecp256k1   = 0x01
	uncompressedKeyLen = 0x41 // 65, little-endian single byte
	singleKeyScheme    = 0x02
)

// Of computes the Aptos account address for a compressed secp256k1 public
// key:
//
//  1. decompress to 65-byte uncompressed SEC1 form (0x04 || X || Y)
//  2. build D = 0x01 || 0x41 || uncompressed(65) || 0x02  (68 bytes)
//  3. address = SHA3-256(D)
//
// This layout is normative: it must match the Aptos SDK's secp256k1
// single-key authentication-key derivation.
func Of(pub keycodec.CompressedPoint) (Address, error) {
	x, y := curve.Decompress(pub[:])
	if curve.IsInfinity(x, y) {
		return Address{}, errs.New(errs.BadKeyFormat, "public key does not decode to a valid curve point")
	}

	uncompressed := make([]byte, 65)
	uncompressed[0] = 0x04
	x.FillBytes(uncompressed[1:33])
	y.FillBytes(uncompressed[33:65])

	d := make([]byte, 0, 68)
	d = append(d, keyTypeSecp256k1)
	d = append(d, uncompressedKeyLen)
	d = append(d, uncompressed...)
	d = append(d, singleKeyScheme)

	sum := sha3.Sum256(d)
	return Address(sum), nil
}

// String renders the address as a 0x-prefixed, lowercase, 64-hex-digit
// string, the wire form used everywhere outside this package.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns the raw 32-byte address.
func (a Address) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, a[:])
	return out
}
