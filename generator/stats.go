package generator

// Stats counts what a generation run created. The zero value is the
// identity for Add.
type Stats struct {
	Files uint64 `json:"files"`
	Dirs  uint64 `json:"dirs"`
	Bytes uint64 `json:"bytes"`
}

// Add folds o into s. Merging is associative and commutative, so child
// results can be added in whatever order they complete.
func (s *Stats) Add(o Stats) {
	s.Files += o.Files
	s.Dirs += o.Dirs
	s.Bytes += o.Bytes
}
