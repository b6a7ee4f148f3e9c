package stealth

import (
	"github.com/mr-tron/base58"

	"github.com/pivy-xyz/stealth/errs"
	"github.com/pivy-xyz/stealth/keycodec"
)

// EncodeMetaAddress concatenates a receiver's compressed spend and view
// public keys (33 bytes each) into a single base58 token, so a receiver
// can publish one string instead of two. It carries no cryptography of
// its own: decoding it and feeding the halves to DeriveStealthPub
// produces exactly the same result as passing spendPub/viewPub directly.
func EncodeMetaAddress(spendPub, viewPub CompressedPoint) string {
	buf := make([]byte, 0, 66)
	buf = append(buf, spendPub[:]...)
	buf = append(buf, viewPub[:]...)
	return base58.Encode(buf)
}

// DecodeMetaAddress reverses EncodeMetaAddress, rejecting anything that
// does not decode to exactly 66 bytes split evenly between the two keys.
func DecodeMetaAddress(metaAddress string) (spendPub, viewPub CompressedPoint, err error) {
	raw, decErr := base58.Decode(metaAddress)
	if decErr != nil {
		return CompressedPoint{}, CompressedPoint{}, errs.Wrap(errs.BadKeyFormat, decErr, "invalid base58 meta-address")
	}
	if len(raw) != 66 {
		return CompressedPoint{}, CompressedPoint{}, errs.New(errs.BadKeyFormat, "meta-address decoded to %d bytes, want 66", len(raw))
	}

	spendPub, err = keycodec.NormalizePoint(raw[:33])
	if err != nil {
		return CompressedPoint{}, CompressedPoint{}, err
	}
	viewPub, err = keycodec.NormalizePoint(raw[33:])
	if err != nil {
		return CompressedPoint{}, CompressedPoint{}, err
	}
	return spendPub, viewPub, nil
}
