package rvalue

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

func TestEncodeDecode(t *testing.T) {
	cases := []struct {
		objectType rentry.ObjectType
		in         any
		out        any
		bytes      []byte
	}{
		{rentry.Boolean, true, true, []byte{1}},
		{rentry.Int8, -1, int8(-1), []byte{0xFF}},
		{rentry.Uint16, 513, uint16(513), []byte{1, 2}},
		{rentry.Int32, 1, int32(1), []byte{1, 0, 0, 0}},
		{rentry.Int32, 7.0, int32(7), []byte{7, 0, 0, 0}},
		{rentry.Uint32, uint32(0xFFFFFFFF), uint32(0xFFFFFFFF), []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{rentry.Int64, int64(-2), int64(-2), []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{rentry.Single, float32(1), float32(1), []byte{0, 0, 0x80, 0x3F}},
		{rentry.Double, 1, float64(1), []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}},
		{rentry.UnicodeString, "Potion", "Potion", []byte("Potion")},
	}
	for _, c := range cases {
		bs, err := Encode(c.objectType, c.in)
		require.NoError(t, err, c.objectType.String())
		assert.Equal(t, c.bytes, bs, c.objectType.String())

		out, err := Decode(c.objectType, bs)
		require.NoError(t, err)
		assert.Equal(t, c.out, out, c.objectType.String())
	}
}

func TestVector4(t *testing.T) {
	bs, err := Encode(rentry.Vector4, Vector4{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Len(t, bs, 16)
	v, err := Decode(rentry.Vector4, bs)
	require.NoError(t, err)
	assert.Equal(t, Vector4{1, 2, 3, 4}, v)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(rentry.Int32, "one")
	assert.True(t, errors.Is(err, rerr.ErrUnsupportedType))

	_, err = Encode(rentry.Int32, 1.5)
	assert.Error(t, err)

	_, err = Encode(rentry.Class, nil)
	assert.True(t, errors.Is(err, rerr.ErrUnsupportedType))

	_, err = Decode(rentry.Int32, []byte{1})
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))
}

func TestGetSet(t *testing.T) {
	entry := rentry.NewValue("Num", rentry.Int32, []byte{5, 0, 0, 0})
	v, err := Get(entry)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)

	require.NoError(t, Set(entry, 999))
	assert.Equal(t, []byte{0xE7, 0x03, 0, 0}, entry.Data)

	array := rentry.NewValueArray("Flags", rentry.Int32, 4, make([]byte, 8))
	_, err = Get(array)
	assert.True(t, errors.Is(err, rerr.ErrUnsupportedType))
	assert.Error(t, Set(array, 1))
}

func TestParse(t *testing.T) {
	v, err := Parse(rentry.Int32, "0x10")
	require.NoError(t, err)
	assert.Equal(t, int64(16), v)

	v, err = Parse(rentry.Boolean, "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = Parse(rentry.Single, "0.5")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), v)

	v, err = Parse(rentry.Vector4, "1, 2, 3, 4")
	require.NoError(t, err)
	assert.Equal(t, Vector4{1, 2, 3, 4}, v)

	_, err = Parse(rentry.Uint8, "300")
	assert.True(t, errors.Is(err, rerr.ErrInvalidValue))

	_, err = Parse(rentry.Class, "x")
	assert.Error(t, err)
}

func TestEnumKeepsItsSize(t *testing.T) {
	cases := []struct {
		data []byte
		out  any
		set  int
		want []byte
	}{
		{[]byte{0xFE}, int8(-2), 7, []byte{7}},
		{[]byte{0x01, 0x02}, int16(0x0201), 0x0304, []byte{4, 3}},
		{[]byte{3, 0, 0, 0}, int32(3), -1, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{[]byte{1, 0, 0, 0, 0, 0, 0, 0}, int64(1), 2, []byte{2, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		entry := rentry.NewValue("Rank", rentry.Enum, c.data)
		v, err := Get(entry)
		require.NoError(t, err)
		assert.Equal(t, c.out, v)

		width, fixed := PayloadWidth(entry)
		assert.True(t, fixed)
		assert.Equal(t, len(c.data), width)

		require.NoError(t, Set(entry, c.set))
		assert.Equal(t, c.want, entry.Data)
	}

	entry := rentry.NewValue("Rank", rentry.Enum, []byte{1})
	err := Set(entry, 256)
	assert.True(t, errors.Is(err, rerr.ErrInvalidValue))
	assert.Equal(t, []byte{1}, entry.Data)
	require.NoError(t, Set(entry, 255))
	assert.Equal(t, []byte{0xFF}, entry.Data)

	_, err = Decode(rentry.Enum, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))

	width, _ := PayloadWidth(rentry.NewValue("Rank", rentry.Enum, nil))
	assert.Equal(t, 4, width)
}

func TestSet_RejectsOversizedPayload(t *testing.T) {
	entry := rentry.NewValue("Label", rentry.CString, []byte("Label"))
	err := Set(entry, "LongerLabel")
	assert.True(t, errors.Is(err, rerr.ErrUnsupportedType))
	assert.Equal(t, []byte("Label"), entry.Data)

	require.NoError(t, Set(entry, "Tag"))
	assert.Equal(t, []byte("Tag"), entry.Data)
}
