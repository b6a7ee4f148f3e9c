package aptosaddr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivy-xyz/stealth/internal/curve"
	"github.com/pivy-xyz/stealth/keycodec"
)

func compressedFromScalar(t *testing.T, k []byte) keycodec.CompressedPoint {
	t.Helper()
	x, y := curve.ScalarBaseMult(k)
	var p keycodec.CompressedPoint
	copy(p[:], curve.Compress(x, y))
	return p
}

func TestAddressIsDeterministic(t *testing.T) {
	pub := compressedFromScalar(t, []byte{0x01})

	a1, err := Of(pub)
	require.NoError(t, err)
	a2, err := Of(pub)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}

func TestAddressStringIsLowercaseHexPrefixed(t *testing.T) {
	pub := compressedFromScalar(t, []byte{0x02})
	addr, err := Of(pub)
	require.NoError(t, err)

	s := addr.String()
	assert.True(t, len(s) == 66)
	assert.Equal(t, "0x", s[:2])
	assert.Equal(t, strings.ToLower(s), s)
}

func TestAddressRejectsInvalidPoint(t *testing.T) {
	var bogus keycodec.CompressedPoint
	bogus[0] = 0x02 // all-zero x coordinate does not decode to a curve point
	_, err := Of(bogus)
	require.Error(t, err)
}

func TestDifferentKeysYieldDifferentAddresses(t *testing.T) {
	pubA := compressedFromScalar(t, []byte{0x03})
	pubB := compressedFromScalar(t, []byte{0x04})

	a, err := Of(pubA)
	require.NoError(t, err)
	b, err := Of(pubB)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
