package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"re-savior/rsave/rerr"
)

func TestCursor_ReadInt32(t *testing.T) {
	cursor := NewCursor(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := cursor.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := cursor.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(1312301580), resultInt2)

	_, err = cursor.ReadInt32()
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))
}

func TestCursor_AlignTo_WritesPastContent(t *testing.T) {
	cursor := NewCursor([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, cursor.Seek(5))

	cursor.AlignTo(4)

	assert.Equal(t, 8, cursor.Pos())
	assert.Equal(t, 8, cursor.Len())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 0, 0, 0}, cursor.Bytes())
}

func TestCursor_AlignTo_SkipsExistingContent(t *testing.T) {
	source := make([]byte, 20)
	for i := range source {
		source[i] = byte(i + 1)
	}
	cursor := NewCursor(source)
	require.NoError(t, cursor.Seek(5))

	cursor.AlignTo(4)

	assert.Equal(t, 8, cursor.Pos())
	assert.Equal(t, source, cursor.Bytes())
}

func TestCursor_AlignTo_NoopWhenAligned(t *testing.T) {
	cursor := NewWriter()
	cursor.WriteUint64(7)
	cursor.AlignTo(8)
	assert.Equal(t, 8, cursor.Len())
	cursor.AlignTo(16)
	assert.Equal(t, 16, cursor.Len())
	assert.Equal(t, 16, cursor.Pos())
}

func TestCursor_WriteOverwritesThenExtends(t *testing.T) {
	cursor := NewCursor([]byte{9, 9, 9})
	require.NoError(t, cursor.Seek(1))
	cursor.WriteUint32(0x04030201)
	assert.Equal(t, []byte{9, 1, 2, 3, 4}, cursor.Bytes())
}

func TestCursor_Numbers(t *testing.T) {
	writer := NewWriter()
	writer.WriteInt8(-2)
	writer.WriteUint16(0xBEEF)
	writer.WriteInt64(-42)
	writer.WriteFloat32(1.5)
	writer.WriteFloat64(-0.25)

	reader := NewCursor(writer.Bytes())
	i8, err := reader.ReadInt8()
	require.NoError(t, err)
	u16, err := reader.ReadUint16()
	require.NoError(t, err)
	i64, err := reader.ReadInt64()
	require.NoError(t, err)
	f32, err := reader.ReadFloat32()
	require.NoError(t, err)
	f64, err := reader.ReadFloat64()
	require.NoError(t, err)

	assert.Equal(t, int8(-2), i8)
	assert.Equal(t, uint16(0xBEEF), u16)
	assert.Equal(t, int64(-42), i64)
	assert.Equal(t, float32(1.5), f32)
	assert.Equal(t, -0.25, f64)
	assert.Equal(t, 0, reader.Remaining())
}

func TestCursor_Strings(t *testing.T) {
	writer := NewWriter()
	units, err := writer.WriteString(UTF16LE, "Potion")
	require.NoError(t, err)
	assert.Equal(t, 6, units)
	assert.Equal(t, []byte{'P', 0, 'o', 0, 't', 0, 'i', 0, 'o', 0, 'n', 0}, writer.Bytes())

	reader := NewCursor(writer.Bytes())
	s, err := reader.ReadString(UTF16LE, 6)
	require.NoError(t, err)
	assert.Equal(t, "Potion", s)

	count, err := UnitCount(UTF16LE, "日本\U0001F600")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = reader.ReadString(UTF16LE, 1)
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))
}

type testHeader struct {
	A int32  `json:"a"`
	B uint32 `json:"b"`
}

func TestExecuteInstructions(t *testing.T) {
	cursor := NewCursor(append(EncodeInt32(-5), EncodeUint32(0xFFFFFFFE)...))
	header, err := ExecuteInstructions[testHeader](
		[]Instruction{
			{"a", CreateInt32ReadFunction(cursor)},
			{"b", CreateUint32ReadFunction(cursor)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, testHeader{A: -5, B: 0xFFFFFFFE}, *header)

	_, err = ExecuteInstructions[testHeader](
		[]Instruction{{"a", CreateInt32ReadFunction(cursor)}},
	)
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))
}

func TestCursor_AlignReadTo(t *testing.T) {
	source := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	cursor := NewCursor(source)
	require.NoError(t, cursor.Seek(5))
	require.NoError(t, cursor.AlignReadTo(4))
	assert.Equal(t, 8, cursor.Pos())

	err := cursor.AlignReadTo(16)
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))
	assert.Equal(t, 8, cursor.Pos())
	assert.Equal(t, len(source), cursor.Len())
	assert.Equal(t, source, cursor.Bytes())

	require.NoError(t, cursor.AlignReadTo(1))
	require.NoError(t, cursor.AlignReadTo(8))
	assert.Equal(t, 8, cursor.Pos())
}

func TestString_LoneSurrogates(t *testing.T) {
	cases := [][]byte{
		{0x00, 0xD8},
		{0x00, 0xDC, 'A', 0},
		{'A', 0, 0x3D, 0xD8},
		{0x3D, 0xD8, 0x00, 0xDE, 0x00, 0xD8},
	}
	for _, bs := range cases {
		s, err := DecodeString(UTF16LE, bs)
		require.NoError(t, err)
		out, err := EncodeString(UTF16LE, s)
		require.NoError(t, err)
		assert.Equal(t, bs, out)

		count, err := UnitCount(UTF16LE, s)
		require.NoError(t, err)
		assert.Equal(t, len(bs)/2, count)
	}

	s, err := DecodeString(UTF16LE, []byte{0x3D, 0xD8, 0x00, 0xDE})
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", s)

	out, err := EncodeString(UTF16LE, "a\xffb")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 0xFD, 0xFF, 'b', 0}, out)
}
