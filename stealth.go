package stealth

import (
	"math/big"

	"github.com/pivy-xyz/stealth/aptosaddr"
	"github.com/pivy-xyz/stealth/ecies"
	"github.com/pivy-xyz/stealth/errs"
	"github.com/pivy-xyz/stealth/internal/curve"
	"github.com/pivy-xyz/stealth/keycodec"
)

// Re-exported leaf types so callers only need to import this one package
// for the common path; the leaf packages remain importable directly for
// callers who only need one component (e.g. a scanner that only needs
// aptosaddr).
type (
	Scalar          = keycodec.Scalar
	CompressedPoint = keycodec.CompressedPoint
	Address         = aptosaddr.Address
)

// StealthPublicResult is what a payer computes: the stealth public key
// and the Aptos address it maps to, plus the view tag a receiver can use
// to cheaply pre-filter candidate payments before doing a full derivation.
type StealthPublicResult struct {
	StealthPubKey  CompressedPoint
	StealthAddress Address
	ViewTag        byte
}

// StealthKeyPair is what a receiver computes: the private key that
// controls the stealth address, its public key, and the address itself.
// Invariant: DerivePublicKey(StealthPrivKey) == StealthPubKey, and
// aptosaddr.Of(StealthPubKey) == StealthAddress.
type StealthKeyPair struct {
	StealthPrivKey Scalar
	StealthPubKey  CompressedPoint
	StealthAddress Address
	ViewTag        byte
}

// DeriveStealthPub is the payer-side derivation. Given the receiver's
// meta-spend and meta-view public keys and the payer's ephemeral private
// key, it computes:
//
//	t = decode_scalar(SHA-256(ECDH(ephPriv, metaView)_X))
//	P = metaSpend + t*G
//
// and returns P's compressed form together with its Aptos address.
func DeriveStealthPub(metaSpendPub, metaViewPub CompressedPoint, ephPriv Scalar) (StealthPublicResult, error) {
	tweakHash, err := ecies.SharedSecretHash(ephPriv, metaViewPub)
	if err != nil {
		return StealthPublicResult{}, err
	}
	t := curve.ReduceScalar(tweakHash[:])
	if t.Sign() == 0 {
		return StealthPublicResult{}, errs.New(errs.DerivationFailure, "tweak reduced to zero, regenerate the ephemeral key")
	}

	sx, sy := curve.Decompress(metaSpendPub[:])
	if curve.IsInfinity(sx, sy) {
		return StealthPublicResult{}, errs.New(errs.BadKeyFormat, "meta-spend public key does not decode to a valid curve point")
	}

	px, py := stealthPoint(sx, sy, t)
	if curve.IsInfinity(px, py) {
		return StealthPublicResult{}, errs.New(errs.DerivationFailure, "stealth public key is the point at infinity")
	}

	compressed := curve.Compress(px, py)
	var pub CompressedPoint
	copy(pub[:], compressed)

	addr, err := aptosaddr.Of(pub)
	if err != nil {
		return StealthPublicResult{}, err
	}

	logger.Debug().Str("address", addr.String()).Msg("derived stealth public key")

	return StealthPublicResult{
		StealthPubKey:  pub,
		StealthAddress: addr,
		ViewTag:        tweakHash[0],
	}, nil
}

// DeriveStealthKeypair is the receiver-side derivation. Given the
// receiver's meta-spend and meta-view private keys and the payer's
// ephemeral public key, it computes:
//
//	t = decode_scalar(SHA-256(ECDH(metaView, ephPub)_X))
//	k = (metaSpend + t) mod n
//
// and returns the stealth private key together with its public key and
// Aptos address. ECDH commutativity guarantees this t equals the payer's,
// so the resulting address always matches DeriveStealthPub's.
func DeriveStealthKeypair(metaSpendPriv, metaViewPriv Scalar, ephPub CompressedPoint) (StealthKeyPair, error) {
	tweakHash, err := ecies.SharedSecretHash(metaViewPriv, ephPub)
	if err != nil {
		return StealthKeyPair{}, err
	}
	t := curve.ReduceScalar(tweakHash[:])
	if t.Sign() == 0 {
		return StealthKeyPair{}, errs.New(errs.DerivationFailure, "tweak reduced to zero, regenerate the ephemeral key")
	}

	s := new(big.Int).SetBytes(metaSpendPriv[:])
	k := new(big.Int).Add(s, t)
	k.Mod(k, curve.N())
	if k.Sign() == 0 {
		return StealthKeyPair{}, errs.New(errs.DerivationFailure, "stealth private key reduced to zero")
	}

	x, y := curve.ScalarBaseMult(k.Bytes())
	compressed := curve.Compress(x, y)

	var priv Scalar
	k.FillBytes(priv[:])
	var pub CompressedPoint
	copy(pub[:], compressed)

	addr, err := aptosaddr.Of(pub)
	if err != nil {
		return StealthKeyPair{}, err
	}

	logger.Debug().Str("address", addr.String()).Msg("derived stealth key pair")

	return StealthKeyPair{
		StealthPrivKey: priv,
		StealthPubKey:  pub,
		StealthAddress: addr,
		ViewTag:        tweakHash[0],
	}, nil
}

// DerivePublicKey returns the compressed public key for a private scalar,
// i.e. priv*G.
func DerivePublicKey(priv Scalar) (CompressedPoint, error) {
	k := new(big.Int).SetBytes(priv[:])
	if !curve.ScalarInRange(k) {
		return CompressedPoint{}, errs.New(errs.BadKeyFormat, "scalar is zero or out of range")
	}
	x, y := curve.ScalarBaseMult(priv[:])
	var pub CompressedPoint
	copy(pub[:], curve.Compress(x, y))
	return pub, nil
}

// stealthPoint computes (sx,sy) + t*G.
func stealthPoint(sx, sy, t *big.Int) (*big.Int, *big.Int) {
	tx, ty := curve.ScalarBaseMult(t.Bytes())
	return curve.Add(sx, sy, tx, ty)
}
