package lbytes

import (
	"github.com/pkg/errors"

	"re-savior/ds"
	"re-savior/rsave/rerr"
)

// NewCursor copies bs and positions the cursor at its start.
func NewCursor(bs []byte) *Cursor {
	buf := make([]byte, len(bs))
	copy(buf, bs)
	return &Cursor{buf: buf}
}

// NewWriter returns an empty cursor for serialization.
func NewWriter() *Cursor {
	return &Cursor{buf: make([]byte, 0, 1024)}
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Len() int {
	return len(c.buf)
}

func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) Bytes() []byte {
	return c.buf
}

func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return errors.Wrapf(rerr.ErrMalformedInput, "lbytes.Seek: offset %d outside [0, %d]", pos, len(c.buf))
	}
	c.pos = pos
	return nil
}

// AlignTo moves the position up to the next multiple of width. When the
// padding would run past the current content it is written as zero bytes,
// otherwise the existing bytes are skipped without being touched.
func (c *Cursor) AlignTo(width int) {
	if width <= 1 {
		return
	}
	pad := ds.PaddingToM(c.pos, width)
	if pad == 0 {
		return
	}
	if len(c.buf) < c.pos+pad {
		c.WriteBytes(ds.Repeat(pad, byte(0)))
		return
	}
	c.pos += pad
}

// AlignReadTo is AlignTo for decoding: padding missing from the input is an
// error instead of being filled in, so a parse never grows its buffer.
func (c *Cursor) AlignReadTo(width int) error {
	if width <= 1 {
		return nil
	}
	pad := ds.PaddingToM(c.pos, width)
	if c.pos+pad > len(c.buf) {
		return errors.Wrapf(
			rerr.ErrMalformedInput,
			"lbytes.AlignReadTo: %d bytes of padding at offset %d, only %d left",
			pad, c.pos, c.Remaining(),
		)
	}
	c.pos += pad
	return nil
}

func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(rerr.ErrMalformedInput, "lbytes.ReadBytes: negative length %d", n)
	}
	if c.pos+n > len(c.buf) {
		return nil, errors.Wrapf(
			rerr.ErrMalformedInput,
			"lbytes.ReadBytes: need %d bytes at offset %d, only %d left",
			n, c.pos, c.Remaining(),
		)
	}
	bs := make([]byte, n)
	copy(bs, c.buf[c.pos:c.pos+n])
	c.pos += n
	return bs, nil
}

func (c *Cursor) WriteBytes(bs []byte) {
	end := c.pos + len(bs)
	if end > len(c.buf) {
		c.buf = append(c.buf, make([]byte, end-len(c.buf))...)
	}
	copy(c.buf[c.pos:end], bs)
	c.pos = end
}
