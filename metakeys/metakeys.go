// Package metakeys generates the secp256k1 keypairs a receiver and payer
// need: long-lived meta-spend/meta-view pairs for the receiver, and a
// single-use ephemeral pair for the payer. Every private scalar is drawn
// from a CSPRNG by rejection sampling into [1, n-1].
package metakeys

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"

	"github.com/pivy-xyz/stealth/internal/curve"
	"github.com/pivy-xyz/stealth/keycodec"
)

// KeyPair is a single secp256k1 private/public keypair.
type KeyPair struct {
	Priv keycodec.Scalar
	Pub  keycodec.CompressedPoint
}

// PubBase58 returns the public half as a base58 string, the serialization
// this module uses at its API boundary.
func (kp KeyPair) PubBase58() string {
	return base58.Encode(kp.Pub[:])
}

// EphemeralKeyPair is a one-shot keypair generated by the payer for a
// single payment. Callers must never reuse one across payments.
type EphemeralKeyPair = KeyPair

// MetaKeyPair is a receiver's long-lived (spend, view) pair. Spend
// authorizes spending from any stealth address derived for this receiver;
// view authorizes detection and message decryption only. Private halves
// must never leave the receiver.
type MetaKeyPair struct {
	Spend KeyPair
	View  KeyPair
}

// GenerateMetaKeys produces a fresh (spend, view) pair for a receiver. r
// defaults to crypto/rand.Reader when nil.
func GenerateMetaKeys(r io.Reader) (MetaKeyPair, error) {
	spend, err := generateKeyPair(r)
	if err != nil {
		return MetaKeyPair{}, err
	}
	view, err := generateKeyPair(r)
	if err != nil {
		return MetaKeyPair{}, err
	}
	return MetaKeyPair{Spend: spend, View: view}, nil
}

// GenerateEphemeralKey produces a fresh single-use keypair for a payer to
// use on exactly one payment. r defaults to crypto/rand.Reader when nil.
func GenerateEphemeralKey(r io.Reader) (EphemeralKeyPair, error) {
	return generateKeyPair(r)
}

func generateKeyPair(r io.Reader) (KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	k, err := curve.RandomScalar(r)
	if err != nil {
		return KeyPair{}, err
	}
	x, y := curve.ScalarBaseMult(k.Bytes())
	compressed := curve.Compress(x, y)

	var kp KeyPair
	k.FillBytes(kp.Priv[:])
	copy(kp.Pub[:], compressed)
	return kp, nil
}
