// Package rhash maps property names to the 32-bit hashes the save format
// addresses fields by.
package rhash

import (
	"github.com/spaolacci/murmur3"

	"re-savior/rsave/lbytes"
)

const Seed = uint32(0xFFFFFFFF)

// HashString is murmur3 (x86, 32-bit) over the UTF-16LE bytes of s.
func HashString(s string) uint32 {
	bs, err := lbytes.EncodeString(lbytes.UTF16LE, s)
	if err != nil {
		// only reachable on encoder failure, which UTF-16 never reports
		bs = []byte(s)
	}
	return murmur3.Sum32WithSeed(bs, Seed)
}
