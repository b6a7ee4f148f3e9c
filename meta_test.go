package stealth

import (
	"bytes"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaAddressRoundTrip(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0xaa)

	encoded := EncodeMetaAddress(mk.Spend.Pub, mk.View.Pub)
	assert.NotEmpty(t, encoded)

	spendPub, viewPub, err := DecodeMetaAddress(encoded)
	require.NoError(t, err)
	assert.Equal(t, mk.Spend.Pub, spendPub)
	assert.Equal(t, mk.View.Pub, viewPub)
}

func TestMetaAddressUsableForDerivation(t *testing.T) {
	mk := generateFixedMetaKeys(t, 0xbb)
	eph := generateFixedEphemeralKey(t, 0xcc)

	encoded := EncodeMetaAddress(mk.Spend.Pub, mk.View.Pub)
	spendPub, viewPub, err := DecodeMetaAddress(encoded)
	require.NoError(t, err)

	direct, err := DeriveStealthPub(mk.Spend.Pub, mk.View.Pub, eph.Priv)
	require.NoError(t, err)
	viaMeta, err := DeriveStealthPub(spendPub, viewPub, eph.Priv)
	require.NoError(t, err)

	assert.Equal(t, direct.StealthAddress, viaMeta.StealthAddress)
}

func TestDecodeMetaAddressRejectsWrongLength(t *testing.T) {
	_, _, err := DecodeMetaAddress(base58.Encode(bytes.Repeat([]byte{0x01}, 65)))
	require.Error(t, err)
}
