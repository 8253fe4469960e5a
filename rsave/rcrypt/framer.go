// Package rcrypt converts between the on-disk ciphertext and the plaintext
// object tree buffer.
//
// The head of the buffer (length rounded down to the block size) is word
// swapped, run through Blowfish in CBC mode with a zero IV, and word swapped
// back. The remaining len%8 bytes are stored in the clear.
package rcrypt

import (
	"crypto/cipher"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blowfish"

	"re-savior/ds"
	"re-savior/rsave/rerr"
)

const (
	Key       = "hHGb4nS653aRT29jy"
	BlockSize = blowfish.BlockSize
)

type (
	Framer struct {
		block *blowfish.Cipher
	}
	direction int
)

const (
	encrypt = direction(iota)
	decrypt
)

var defaultFramer = MustNewFramer([]byte(Key))

func NewFramer(key []byte) (*Framer, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "rcrypt.NewFramer error")
	}
	return &Framer{block: block}, nil
}

func MustNewFramer(key []byte) *Framer {
	framer, err := NewFramer(key)
	if err != nil {
		panic(err)
	}
	return framer
}

func Encrypt(bs []byte) ([]byte, error) {
	return defaultFramer.Encrypt(bs)
}

func Decrypt(bs []byte) ([]byte, error) {
	return defaultFramer.Decrypt(bs)
}

func (f *Framer) Encrypt(bs []byte) ([]byte, error) {
	return f.transform(bs, encrypt)
}

func (f *Framer) Decrypt(bs []byte) ([]byte, error) {
	return f.transform(bs, decrypt)
}

func (f *Framer) transform(bs []byte, dir direction) ([]byte, error) {
	remainder := len(bs) % BlockSize
	head := bs[:len(bs)-remainder]
	tail := bs[len(bs)-remainder:]

	swapped, err := SwapWords(head)
	if err != nil {
		return nil, errors.Wrap(err, "rcrypt.transform error")
	}

	// the IV is reset for every call, nothing carries over between buffers
	iv := make([]byte, BlockSize)
	var mode cipher.BlockMode
	if dir == encrypt {
		mode = cipher.NewCBCEncrypter(f.block, iv)
	} else {
		mode = cipher.NewCBCDecrypter(f.block, iv)
	}
	transformed := make([]byte, len(swapped))
	mode.CryptBlocks(transformed, swapped)

	result, err := SwapWords(transformed)
	if err != nil {
		return nil, errors.Wrap(err, "rcrypt.transform error")
	}
	return append(result, tail...), nil
}

// SwapWords reverses the byte order of every 4-byte word of bs into a new
// slice.
func SwapWords(bs []byte) ([]byte, error) {
	if len(bs)%4 != 0 {
		return nil, errors.Wrapf(rerr.ErrMalformedInput, "rcrypt.SwapWords: length %d is not a multiple of 4", len(bs))
	}
	result := make([]byte, 0, len(bs))
	for _, word := range ds.MakeChunks(bs, 4) {
		result = append(result, word[3], word[2], word[1], word[0])
	}
	return result, nil
}
