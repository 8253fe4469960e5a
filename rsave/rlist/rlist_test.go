package rlist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
	"re-savior/rsave/rhash"
)

func keyed(typeName string, key int32, num int32) *rentry.StructEntry {
	return rentry.NewStruct(
		rhash.HashString(typeName),
		rentry.NewValue("Key", rentry.Int32, lbytes.EncodeInt32(key)),
		rentry.NewValue("Num", rentry.Int32, lbytes.EncodeInt32(num)),
	)
}

func sampleList() *ElementList {
	return &ElementList{
		ListID: 0xCAFE,
		Entries: []rentry.Node{
			rentry.NewStructArray(
				"A",
				rentry.ArrayHeader{HeaderCount: 2},
				keyed("B", 3, 30),
				keyed("B", 5, 50),
			),
			rentry.NewClassArray(
				"Table",
				0,
				rentry.NewValue("Value", rentry.Int32, lbytes.EncodeInt32(7)),
				rentry.NewStringList("Items", "Potion", "Ration"),
			),
		},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, sampleList()))
	bs := writer.Bytes()

	reader := lbytes.NewCursor(bs)
	list, err := Decode(reader, rentry.NewDecoder(nil, nil, false))
	require.NoError(t, err)
	assert.Equal(t, len(bs), reader.Pos())
	assert.Equal(t, uint32(0xCAFE), list.ListID)
	require.Len(t, list.Entries, 2)

	root, ok := list.Entries[0].(*rentry.ArrayEntry)
	require.True(t, ok)
	assert.Equal(t, uint32(0xCAFE), root.TableID)

	again := lbytes.NewWriter()
	require.NoError(t, Encode(again, list))
	assert.Equal(t, bs, again.Bytes())
}

func TestCodec_Empty(t *testing.T) {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, &ElementList{ListID: 1}))
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 0, 0, 0}, writer.Bytes())

	list, err := Decode(lbytes.NewCursor(writer.Bytes()), rentry.NewDecoder(nil, nil, false))
	require.NoError(t, err)
	assert.Empty(t, list.Entries)
}

func TestDecode_Malformed(t *testing.T) {
	decoder := rentry.NewDecoder(nil, nil, false)

	_, err := Decode(lbytes.NewCursor([]byte{1, 0, 0}), decoder)
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))

	negative := lbytes.NewWriter()
	negative.WriteInt32(-2)
	negative.WriteUint32(0)
	_, err = Decode(lbytes.NewCursor(negative.Bytes()), decoder)
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))

	// one entry promised, none present
	short := lbytes.NewWriter()
	short.WriteInt32(1)
	short.WriteUint32(0)
	_, err = Decode(lbytes.NewCursor(short.Bytes()), decoder)
	assert.True(t, errors.Is(err, rerr.ErrMalformedInput))
}

func TestFindElementByPath(t *testing.T) {
	list := sampleList()

	node, err := list.FindElementByPath("A:B[3]")
	require.NoError(t, err)
	assert.True(t, HasKey(node, 3))
	assert.False(t, HasKey(node, 5))

	node, err = list.FindElementByPath("A:B[0x5]:Num")
	require.NoError(t, err)
	assert.Equal(t, lbytes.EncodeInt32(50), node.(*rentry.ValueEntry).Data)

	node, err = list.FindElementByPath("Table:Items")
	require.NoError(t, err)
	assert.Equal(t, []string{"Potion", "Ration"}, node.(*rentry.StringListEntry).Strings)

	node, err = list.FindElementByPath("A")
	require.NoError(t, err)
	assert.Same(t, list.Entries[0], node)
}

func TestFindElementByPath_Errors(t *testing.T) {
	list := sampleList()

	_, err := list.FindElementByPath("A:B[9]")
	assert.True(t, errors.Is(err, rerr.ErrNotFound))
	var pathErr rerr.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "B[9]", pathErr.Segment)

	_, err = list.FindElementByPath("A:B")
	assert.True(t, errors.Is(err, rerr.ErrAmbiguousPath))
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, 2, pathErr.Matches)

	_, err = list.FindElementByPath("Missing")
	assert.True(t, errors.Is(err, rerr.ErrNotFound))

	_, err = list.FindElementByPath("Table:Value:Deeper")
	assert.True(t, errors.Is(err, rerr.ErrNotFound))

	_, err = list.FindElementByPath("A:B[three]")
	assert.True(t, errors.Is(err, rerr.ErrInvalidKey))

	duplicated := &ElementList{Entries: append(sampleList().Entries, sampleList().Entries[0])}
	_, err = duplicated.FindElementByPath("A:B[3]")
	assert.True(t, errors.Is(err, rerr.ErrAmbiguousPath))
}

func TestParseSegment(t *testing.T) {
	tests := []struct {
		segment string
		name    string
		key     *int32
		invalid bool
	}{
		{segment: "Items", name: "Items"},
		{segment: "B[3]", name: "B", key: ptr(3)},
		{segment: "B[-1]", name: "B", key: ptr(-1)},
		{segment: "B[0x1F]", name: "B", key: ptr(31)},
		{segment: "B[0XFFFFFFFF]", name: "B", key: ptr(-1)},
		{segment: "DicList`2<a,b>[0]", name: "DicList`2<a,b>", key: ptr(0)},
		{segment: "B[]", invalid: true},
		{segment: "B[0x]", invalid: true},
		{segment: "B]", invalid: true},
		{segment: "B[99999999999]", invalid: true},
	}
	for _, test := range tests {
		name, key, err := ParseSegment(test.segment)
		if test.invalid {
			assert.True(t, errors.Is(err, rerr.ErrInvalidKey), test.segment)
			continue
		}
		require.NoError(t, err, test.segment)
		assert.Equal(t, test.name, name, test.segment)
		assert.Equal(t, test.key, key, test.segment)
	}
}

func TestAppend(t *testing.T) {
	list := &ElementList{}
	require.NoError(t, list.Append(rentry.NewValue("Num", rentry.Int32, lbytes.EncodeInt32(1))))
	assert.Len(t, list.Entries, 1)

	err := list.Append(rentry.NewStruct(0))
	assert.True(t, errors.Is(err, rerr.ErrUnsupportedType))
}

func ptr(v int32) *int32 {
	return &v
}
