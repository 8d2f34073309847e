package encoding_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/adventurer-api/internal/pkg/encoding"
)

func TestBase64RoundTrip(t *testing.T) {
	for n := 0; n <= 8; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 37)
		}
		enc := encoding.EncodeBase64(data)
		dec, err := encoding.DecodeBase64(enc)
		require.NoError(t, err)
		assert.Equal(t, data, dec, "length %d", n)
	}
}

func TestEncodeBase64Empty(t *testing.T) {
	assert.Equal(t, "", encoding.EncodeBase64(nil))
}

func TestJSONDataURI(t *testing.T) {
	uri := encoding.JSONDataURI([]byte(`{"name":"Thorin #1"}`))
	require.True(t, strings.HasPrefix(uri, encoding.JSONPrefix))

	dec, err := encoding.DecodeBase64(strings.TrimPrefix(uri, encoding.JSONPrefix))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Thorin #1"}`, string(dec))
}

func TestSVGDataURI(t *testing.T) {
	uri := encoding.SVGDataURI("<svg></svg>")
	require.True(t, strings.HasPrefix(uri, encoding.SVGPrefix))

	dec, err := encoding.DecodeBase64(strings.TrimPrefix(uri, encoding.SVGPrefix))
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(dec))
}

func TestBytesUsed(t *testing.T) {
	assert.Equal(t, 0, encoding.BytesUsed(nil))
	assert.Equal(t, 0, encoding.BytesUsed(big.NewInt(0)))
	assert.Equal(t, 1, encoding.BytesUsed(big.NewInt(1)))
	assert.Equal(t, 1, encoding.BytesUsed(big.NewInt(255)))
	assert.Equal(t, 2, encoding.BytesUsed(big.NewInt(256)))
	assert.Equal(t, 8, encoding.BytesUsed(new(big.Int).SetUint64(1<<63)))

	full := new(big.Int).Lsh(big.NewInt(1), 255)
	assert.Equal(t, 32, encoding.BytesUsed(full))
}

func TestBytesUsedMonotonic(t *testing.T) {
	prev := 0
	v := big.NewInt(1)
	for bits := 0; bits <= 256; bits += 8 {
		n := encoding.BytesUsed(new(big.Int).Lsh(v, uint(bits)))
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestBytesUsedSplit(t *testing.T) {
	assert.Equal(t, 0, encoding.BytesUsedSplit(nil, nil))
	assert.Equal(t, 1, encoding.BytesUsedSplit(big.NewInt(0), big.NewInt(200)))
	assert.Equal(t, 16, encoding.BytesUsedSplit(nil, new(big.Int).Lsh(big.NewInt(1), 120)))
	assert.Equal(t, 17, encoding.BytesUsedSplit(big.NewInt(1), big.NewInt(0)))
	assert.Equal(t, 32, encoding.BytesUsedSplit(new(big.Int).Lsh(big.NewInt(1), 120), big.NewInt(5)))
}
