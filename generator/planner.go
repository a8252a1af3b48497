package generator

// Mode selects which totals a run must meet exactly.
type Mode int

const (
	// ModeApproximate samples counts and sizes freely; totals land near the target.
	ModeApproximate Mode = iota
	// ModeExactFiles makes the total file count equal the target.
	ModeExactFiles
	// ModeExactBytes makes the total byte count equal the target.
	ModeExactBytes
	// ModeExact makes both totals equal their targets.
	ModeExact
)

func (m Mode) String() string {
	switch m {
	case ModeExactFiles:
		return "exact-files"
	case ModeExactBytes:
		return "exact-bytes"
	case ModeExact:
		return "exact"
	default:
		return "approximate"
	}
}

// budget is the part of an exact target that a subtree must realize.
// Only the dimensions the mode makes exact are meaningful.
type budget struct {
	files uint64
	bytes uint64
}

// plan is everything one directory creates before its children run.
type plan struct {
	dirs      int
	fileSizes []uint64
	children  []budget
}

// planner decides the counts for one directory. Implementations only use
// the state and sampler they are handed, so they are safe to call from
// many goroutines at once.
type planner interface {
	plan(st *state, s sampler) plan
}

func newPlanner(cfg *Configuration) planner {
	switch mode := cfg.Mode(); mode {
	case ModeApproximate:
		return approximatePlanner{cfg: cfg}
	default:
		return exactPlanner{
			cfg:   cfg,
			files: mode == ModeExactFiles || mode == ModeExact,
			bytes: mode == ModeExactBytes || mode == ModeExact,
		}
	}
}

// approximatePlanner samples every count independently.
type approximatePlanner struct {
	cfg *Configuration
}

func (p approximatePlanner) plan(st *state, s sampler) plan {
	dirs := 0
	if st.depth > 0 {
		dirs = int(s.sample(p.cfg.DirsPerDir))
	}
	files := s.sample(p.cfg.FilesPerDir)

	sizes := make([]uint64, files)
	if p.cfg.Bytes > 0 {
		for i := range sizes {
			sizes[i] = s.sample(p.cfg.BytesPerFile)
		}
	}
	return plan{dirs: dirs, fileSizes: sizes, children: make([]budget, dirs)}
}

// exactPlanner samples the directory fan-out like approximatePlanner but
// hands the node's budget down to itself and its children in proportion to
// what each would have received unconstrained. A node without children
// keeps its whole budget, so nothing is lost on the way down.
type exactPlanner struct {
	cfg   *Configuration
	files bool
	bytes bool
}

func (p exactPlanner) plan(st *state, s sampler) plan {
	dirs := 0
	if st.depth > 0 {
		dirs = int(s.sample(p.cfg.DirsPerDir))
	}
	children := make([]budget, dirs)

	var subtree float64
	if dirs > 0 {
		subtree = p.cfg.expectedSubtreeFiles(st.depth - 1)
	}

	own := s.weight(p.cfg.FilesPerDir)
	var files uint64
	if p.files {
		weights := make([]float64, 0, dirs+1)
		weights = append(weights, own)
		for range dirs {
			weights = append(weights, subtree)
		}
		shares := apportion(st.budget.files, weights)
		files = shares[0]
		for i := range children {
			children[i].files = shares[i+1]
		}
	} else {
		files = toCount(own)
	}

	if p.cfg.Bytes == 0 {
		return plan{dirs: dirs, fileSizes: make([]uint64, files), children: children}
	}
	if !p.bytes {
		sizes := make([]uint64, files)
		for i := range sizes {
			sizes[i] = s.sample(p.cfg.BytesPerFile)
		}
		return plan{dirs: dirs, fileSizes: sizes, children: children}
	}

	weights := make([]float64, 0, dirs+1)
	weights = append(weights, float64(files))
	for i := range children {
		if p.files {
			weights = append(weights, float64(children[i].files))
		} else {
			weights = append(weights, subtree)
		}
	}
	shares := apportion(st.budget.bytes, weights)
	for i := range children {
		children[i].bytes = shares[i+1]
	}

	ownBytes := shares[0]
	if ownBytes > 0 && files == 0 {
		// Nowhere below to put these bytes: hold them in a single file.
		files = 1
	}
	sizeWeights := make([]float64, files)
	for i := range sizeWeights {
		sizeWeights[i] = s.weight(p.cfg.BytesPerFile)
	}
	return plan{dirs: dirs, fileSizes: apportion(ownBytes, sizeWeights), children: children}
}
