package stealth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivy-xyz/stealth/metakeys"
)

func generateFixedMetaKeys(t *testing.T, seedByte byte) metakeys.MetaKeyPair {
	t.Helper()
	seed := bytes.Repeat([]byte{seedByte}, 256)
	mk, err := metakeys.GenerateMetaKeys(bytes.NewReader(seed))
	require.NoError(t, err)
	return mk
}

func generateFixedEphemeralKey(t *testing.T, seedByte byte) metakeys.EphemeralKeyPair {
	t.Helper()
	seed := bytes.Repeat([]byte{seedByte}, 128)
	kp, err := metakeys.GenerateEphemeralKey(bytes.NewReader(seed))
	require.NoError(t, err)
	return kp
}

func TestStealthRoundTrip(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0x11)
	eph := generateFixedEphemeralKey(t, 0x22)

	pubResult, err := DeriveStealthPub(mk.Spend.Pub, mk.View.Pub, eph.Priv)
	require.NoError(t, err)

	keyPair, err := DeriveStealthKeypair(mk.Spend.Priv, mk.View.Priv, eph.Pub)
	require.NoError(t, err)

	assert.Equal(t, pubResult.StealthPubKey, keyPair.StealthPubKey)
	assert.Equal(t, pubResult.StealthAddress, keyPair.StealthAddress)
	assert.Equal(t, pubResult.ViewTag, keyPair.ViewTag)
}

func TestStealthSignConsistency(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0x33)
	eph := generateFixedEphemeralKey(t, 0x44)

	keyPair, err := DeriveStealthKeypair(mk.Spend.Priv, mk.View.Priv, eph.Pub)
	require.NoError(t, err)

	derivedPub, err := DerivePublicKey(keyPair.StealthPrivKey)
	require.NoError(t, err)

	assert.Equal(t, keyPair.StealthPubKey, derivedPub)
}

func TestStealthAddressIsDeterministic(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0x55)
	eph := generateFixedEphemeralKey(t, 0x66)

	r1, err := DeriveStealthPub(mk.Spend.Pub, mk.View.Pub, eph.Priv)
	require.NoError(t, err)
	r2, err := DeriveStealthPub(mk.Spend.Pub, mk.View.Pub, eph.Priv)
	require.NoError(t, err)

	assert.Equal(t, r1.StealthAddress, r2.StealthAddress)
}

func TestStealthUnlinkability(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0x77)

	seen := make(map[Address]bool)
	for i := 0; i < 100; i++ {
		eph := generateFixedEphemeralKey(t, byte(i+1))
		r, err := DeriveStealthPub(mk.Spend.Pub, mk.View.Pub, eph.Priv)
		require.NoError(t, err)
		assert.False(t, seen[r.StealthAddress], "stealth address collided across distinct ephemeral keys")
		seen[r.StealthAddress] = true
	}
}

func TestDerivePublicKeyRejectsZeroScalar(t *testing.T) {
	_, err := DerivePublicKey(Scalar{})
	require.Error(t, err)
}

func TestDeriveStealthPubRejectsInvalidSpendKey(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0x88)
	eph := generateFixedEphemeralKey(t, 0x99)

	var bogus CompressedPoint
	bogus[0] = 0x02 // all-zero x does not decode to a curve point

	_, err := DeriveStealthPub(bogus, mk.View.Pub, eph.Priv)
	require.Error(t, err)
}
