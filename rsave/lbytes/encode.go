package lbytes

import (
	"encoding/binary"
	"math"
)

func (c *Cursor) WriteUint8(v uint8) {
	c.WriteBytes([]byte{v})
}

func (c *Cursor) WriteInt8(v int8) {
	c.WriteUint8(uint8(v))
}

func (c *Cursor) WriteUint16(v uint16) {
	c.WriteBytes(binary.LittleEndian.AppendUint16(nil, v))
}

func (c *Cursor) WriteInt16(v int16) {
	c.WriteUint16(uint16(v))
}

func (c *Cursor) WriteUint32(v uint32) {
	c.WriteBytes(EncodeUint32(v))
}

func (c *Cursor) WriteInt32(v int32) {
	c.WriteUint32(uint32(v))
}

func (c *Cursor) WriteUint64(v uint64) {
	c.WriteBytes(binary.LittleEndian.AppendUint64(nil, v))
}

func (c *Cursor) WriteInt64(v int64) {
	c.WriteUint64(uint64(v))
}

func (c *Cursor) WriteFloat32(v float32) {
	c.WriteUint32(math.Float32bits(v))
}

func (c *Cursor) WriteFloat64(v float64) {
	c.WriteUint64(math.Float64bits(v))
}

// WriteString writes s without a length prefix and returns the number of
// code units written.
func (c *Cursor) WriteString(enc Encoding, s string) (int, error) {
	bs, err := EncodeString(enc, s)
	if err != nil {
		return 0, err
	}
	c.WriteBytes(bs)
	return len(bs) / unitWidth(enc), nil
}

func EncodeUint32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), v)
}

func EncodeInt32(v int32) []byte {
	return EncodeUint32(uint32(v))
}
