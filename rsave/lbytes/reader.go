package lbytes

import (
	"encoding/binary"
	"math"
)

func (c *Cursor) ReadUint8() (uint8, error) {
	bs, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

func (c *Cursor) ReadUint16() (uint16, error) {
	bs, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

func (c *Cursor) ReadUint32() (uint32, error) {
	bs, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Cursor) ReadUint64() (uint64, error) {
	bs, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bs), nil
}

func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadString reads units code units of the given encoding: 2-byte units for
// UTF16LE, bytes for UTF8.
func (c *Cursor) ReadString(enc Encoding, units int) (string, error) {
	bs, err := c.ReadBytes(units * unitWidth(enc))
	if err != nil {
		return "", err
	}
	return DecodeString(enc, bs)
}
