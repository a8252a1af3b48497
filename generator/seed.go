package generator

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// seed is the full ChaCha8 key of one directory's generator.
type seed = [32]byte

// nextSeed draws a child's seed from the parent's stream. The parent keeps
// using its stream afterwards, so each call yields an independent seed.
func nextSeed(src *rand.ChaCha8) seed {
	var s seed
	for i := 0; i < len(s); i += 8 {
		binary.LittleEndian.PutUint64(s[i:], src.Uint64())
	}
	return s
}

// rootSeed mixes the tree's shape parameters with the user seed so that
// identical configurations always produce the same tree.
func rootSeed(cfg *Configuration) seed {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range []uint64{
		cfg.Files,
		uint64(cfg.MaxDepth),
		math.Float64bits(cfg.FilesPerDir),
		math.Float64bits(cfg.DirsPerDir),
		cfg.Bytes,
		boolBits(cfg.FilesExact)<<1 | boolBits(cfg.BytesExact),
		cfg.Seed,
	} {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	var s seed
	binary.LittleEndian.PutUint64(s[:], h.Sum64())
	return nextSeed(rand.NewChaCha8(s))
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
