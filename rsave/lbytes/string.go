package lbytes

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"

	"re-savior/rsave/rerr"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

const (
	surrogateMin = 0xD800
	trailMin     = 0xDC00
	surrogateMax = 0xDFFF
)

func unitWidth(enc Encoding) int {
	if enc == UTF16LE {
		return 2
	}
	return 1
}

func DecodeString(enc Encoding, bs []byte) (string, error) {
	switch enc {
	case UTF16LE:
		if len(bs)%2 != 0 {
			return "", errors.Wrapf(rerr.ErrMalformedInput, "lbytes.DecodeString: odd UTF-16 byte length %d", len(bs))
		}
		units := make([]uint16, len(bs)/2)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(bs[2*i:])
		}
		if hasLoneSurrogate(units) {
			return decodeWTF8(units), nil
		}
		decoded, err := utf16le.NewDecoder().Bytes(bs)
		if err != nil {
			return "", errors.Wrap(err, "lbytes.DecodeString error")
		}
		return string(decoded), nil
	case UTF8:
		return string(bs), nil
	}
	return "", errors.Wrapf(rerr.ErrUnsupportedType, "lbytes.DecodeString: encoding %d", enc)
}

func EncodeString(enc Encoding, s string) ([]byte, error) {
	switch enc {
	case UTF16LE:
		if !utf8.ValidString(s) {
			return encodeWTF8(s), nil
		}
		bs, err := utf16le.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, errors.Wrap(err, "lbytes.EncodeString error")
		}
		return bs, nil
	case UTF8:
		return []byte(s), nil
	}
	return nil, errors.Wrapf(rerr.ErrUnsupportedType, "lbytes.EncodeString: encoding %d", enc)
}

// UnitCount is the length of s in code units of enc.
func UnitCount(enc Encoding, s string) (int, error) {
	bs, err := EncodeString(enc, s)
	if err != nil {
		return 0, err
	}
	return len(bs) / unitWidth(enc), nil
}

func hasLoneSurrogate(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u < surrogateMin || u > surrogateMax:
		case u < trailMin && i+1 < len(units) && units[i+1] >= trailMin && units[i+1] <= surrogateMax:
			i++
		default:
			return true
		}
	}
	return false
}

// decodeWTF8 keeps unpaired surrogates as their three byte generalized UTF-8
// form so that encodeWTF8 gives the same units back.
func decodeWTF8(units []uint16) string {
	bs := make([]byte, 0, len(units)*3)
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < surrogateMin || u > surrogateMax:
			bs = utf8.AppendRune(bs, rune(u))
		case u < trailMin && i+1 < len(units) && units[i+1] >= trailMin && units[i+1] <= surrogateMax:
			bs = utf8.AppendRune(bs, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		default:
			bs = append(bs, 0xED, 0x80|byte(u>>6&0x3F), 0x80|byte(u&0x3F))
		}
	}
	return string(bs)
}

// encodeWTF8 is the inverse of decodeWTF8. Other invalid bytes become U+FFFD.
func encodeWTF8(s string) []byte {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == 0xED && i+2 < len(s) && s[i+1] >= 0xA0 && s[i+1] <= 0xBF && s[i+2]&0xC0 == 0x80 {
			units = append(units, 0xD000|uint16(s[i+1]&0x3F)<<6|uint16(s[i+2]&0x3F))
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	bs := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(bs[2*i:], u)
	}
	return bs
}
