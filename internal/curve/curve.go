// Package curve wraps the secp256k1 primitives this module needs around a
// single, shared elliptic.Curve instance. Every exported package in this
// module (keycodec, aptosaddr, ecies, metakeys, and the root stealth
// package) builds on these few functions instead of touching
// github.com/ethereum/go-ethereum/crypto/secp256k1 directly, so the curve
// backend only has one place to change.
package curve

import (
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto/secp256k1"
)

// S256 is the secp256k1 curve used throughout this module.
var S256 = secp256k1.S256()

// N is the group order.
func N() *big.Int { return S256.N }

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k []byte) (x, y *big.Int) {
	return S256.ScalarBaseMult(k)
}

// ScalarMult returns k*(x,y).
func ScalarMult(x, y *big.Int, k []byte) (*big.Int, *big.Int) {
	return S256.ScalarMult(x, y, k)
}

// Add returns (x1,y1)+(x2,y2).
func Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return S256.Add(x1, y1, x2, y2)
}

// Compress returns the 33-byte SEC1 compressed encoding of (x,y).
func Compress(x, y *big.Int) []byte {
	return secp256k1.CompressPubkey(x, y)
}

// Decompress parses a 33-byte SEC1 compressed point. It reports failure by
// returning a nil x, mirroring secp256k1.DecompressPubkey's own contract.
func Decompress(compressed []byte) (x, y *big.Int) {
	return secp256k1.DecompressPubkey(compressed)
}

// IsInfinity reports whether (x,y) is the point at infinity.
func IsInfinity(x, y *big.Int) bool {
	return x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0)
}

// ReduceScalar interprets b as a big-endian integer and reduces it mod N.
func ReduceScalar(b []byte) *big.Int {
	return new(big.Int).Mod(new(big.Int).SetBytes(b), S256.N)
}

// ScalarInRange reports whether k is a valid private scalar: non-zero and
// strictly less than the group order.
func ScalarInRange(k *big.Int) bool {
	return k.Sign() != 0 && k.Cmp(S256.N) < 0
}

// RandomScalar draws a uniformly random scalar in [1, N-1] from r using
// rejection sampling on 32-byte draws.
func RandomScalar(r io.Reader) (*big.Int, error) {
	buf := make([]byte, 32)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		k := new(big.Int).SetBytes(buf)
		if ScalarInRange(k) {
			return k, nil
		}
	}
}
