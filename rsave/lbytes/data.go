package lbytes

type (
	// Cursor is a positioned reader and writer over one growable buffer.
	// Writes inside existing content overwrite it, writes at the end extend it.
	Cursor struct {
		buf []byte
		pos int
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
	Encoding     int
)

const (
	UTF16LE = Encoding(iota)
	UTF8
)

func (e Encoding) String() string {
	switch e {
	case UTF16LE:
		return "utf16le"
	case UTF8:
		return "utf8"
	}
	return "unknown"
}
