package nk

import "github.com/cespare/xxhash/v2"

// Hash identifies windows, popups and per-widget state.
// Hashes are stable across frames for the same name and seed.
type Hash uint32

// HashString hashes name with seed. Different seeds keep namespaces apart,
// so a group and a tree node with the same title do not collide.
func HashString(name string, seed uint32) Hash {
	d := xxhash.NewWithSeed(uint64(seed))
	d.WriteString(name)
	return fold(d.Sum64())
}

// HashInt hashes an integer id, for widgets declared in loops.
func HashInt(id int, seed uint32) Hash {
	var b [8]byte
	v := uint64(id)
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	d := xxhash.NewWithSeed(uint64(seed))
	d.Write(b[:])
	return fold(d.Sum64())
}

func fold(v uint64) Hash {
	return Hash(uint32(v) ^ uint32(v>>32))
}

// Seeds for the name hashes of the different panel kinds.
const (
	seedWindow uint32 = uint32(WindowTitle)
	seedGroup  uint32 = uint32(panelGroup)
	seedPopup  uint32 = uint32(panelPopup)
	seedMenu   uint32 = uint32(panelMenu)
)
