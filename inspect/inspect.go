package inspect

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Summary counts the entries below a directory. The directory itself is
// not included.
type Summary struct {
	Files    uint64 `json:"files"`
	Dirs     uint64 `json:"dirs"`
	Bytes    uint64 `json:"bytes"`
	MaxDepth int    `json:"max_depth"`
}

// Count walks root and tallies its files, directories and bytes. MaxDepth
// is the deepest directory nesting below root, so a root holding only
// files reports zero.
func Count(root string) (Summary, error) {
	var s Summary
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			s.Dirs++
			s.MaxDepth = max(s.MaxDepth, depthOf(rel))
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		s.Files++
		s.Bytes += uint64(info.Size())
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count %s: %w", root, err)
	}
	return s, nil
}

func depthOf(rel string) int {
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

// Hash fingerprints the tree under root: every relative path in lexical
// order, whether it is a directory, and the size and content of each file.
// Two trees hash equal exactly when they have the same layout and bytes.
func Hash(root string) (string, error) {
	h := xxhash.New()
	var buf [8]byte

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		marker := "f"
		if d.IsDir() {
			marker = "d"
		}
		_, _ = h.WriteString(marker)
		_, _ = h.WriteString(filepath.ToSlash(rel))
		_, _ = h.Write([]byte{0})
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		n, err := io.Copy(h, f)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = h.Write(buf[:])
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", root, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
