package styled

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Digest returns a BLAKE3 hash of the content and every live style. Two texts
// with the same bytes and the same styled positions share a digest, whatever
// the lengths their style sequences were grown to.
func (t *Text) Digest() [32]byte {
	h := blake3.New()
	var buf [binary.MaxVarintLen64]byte
	writeUint := func(v int) {
		n := binary.PutUvarint(buf[:], uint64(v))
		_, _ = h.Write(buf[:n])
	}

	writeUint(len(t.content))
	_, _ = h.Write(t.content)
	for _, name := range t.Styles() {
		writeUint(len(name))
		_, _ = h.Write([]byte(name))
		seq := t.styles[name]
		writeUint(seq.Count())
		seq.Each(writeUint)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
