package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string
	Count uint64
	Tags  []string
	Flag  bool
}

func TestMarshaler_RoundTrip(t *testing.T) {
	in := sample{Name: "kusama", Count: 7, Tags: []string{"a", "b"}, Flag: true}
	for _, ct := range []CodecType{CodecType_JSON, CodecType_RLP} {
		m := CreateMarshaler(ct)
		data, err := m.Marshal(&in)
		require.NoError(t, err, ct.String())

		var out sample
		require.NoError(t, m.Unmarshal(data, &out), ct.String())
		assert.Equal(t, in, out, ct.String())
	}
}

func TestEncoderDecoder_Stream(t *testing.T) {
	for _, ct := range []CodecType{CodecType_JSON, CodecType_RLP} {
		var buf bytes.Buffer
		enc := CreateEncoder(ct, &buf)
		require.NoError(t, enc.Encode(&sample{Name: "one", Count: 1}))
		require.NoError(t, enc.Encode(&sample{Name: "two", Count: 2}))

		dec := CreateDecoder(ct, &buf)
		var first, second sample
		require.NoError(t, dec.Decode(&first), ct.String())
		require.NoError(t, dec.Decode(&second), ct.String())
		assert.Equal(t, "one", first.Name)
		assert.Equal(t, uint64(2), second.Count)
	}
}

func TestParseCodecType(t *testing.T) {
	ct, err := ParseCodecType("RLP")
	require.NoError(t, err)
	assert.Equal(t, CodecType_RLP, ct)

	ct, err = ParseCodecType("")
	require.NoError(t, err)
	assert.Equal(t, CodecType_JSON, ct)

	_, err = ParseCodecType("proto")
	assert.Error(t, err)
}

func TestCreateMarshaler_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { CreateMarshaler(CodecType_Unknown) })
}
