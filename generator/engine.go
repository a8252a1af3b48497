package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var log = logging.Logger("generator")

// Observer is told what each directory created for itself, right after it
// did so. It is called concurrently from many goroutines.
type Observer func(created Stats)

// Option configures a Generator.
type Option func(*Generator)

// WithObserver registers o to be notified as directories are populated.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// Generator builds the directory tree described by a Configuration.
type Generator struct {
	cfg      *Configuration
	planner  planner
	limiter  *rate.Limiter
	observer Observer
}

// New returns a Generator for cfg.
func New(cfg *Configuration, opts ...Option) *Generator {
	g := &Generator{
		cfg:     cfg,
		planner: newPlanner(cfg),
		limiter: newLimiter(cfg.IOLimit),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run resolves opts and generates the tree.
func Run(ctx context.Context, opts Options, genOpts ...Option) (Stats, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return Stats{}, err
	}
	return New(cfg, genOpts...).Generate(ctx)
}

// Generate populates the root directory. On failure no stats are returned,
// and whatever was already written stays on disk.
func (g *Generator) Generate(ctx context.Context) (Stats, error) {
	if err := prepareRoot(g.cfg.Root); err != nil {
		return Stats{}, err
	}

	root := state{
		path:  g.cfg.Root,
		depth: g.cfg.MaxDepth,
		seed:  rootSeed(g.cfg),
		budget: budget{
			files: g.cfg.Files,
			bytes: g.cfg.Bytes,
		},
	}
	log.Infow("starting generation",
		"root", g.cfg.Root,
		"mode", g.cfg.Mode(),
		"files_per_dir", g.cfg.FilesPerDir,
		"dirs_per_dir", g.cfg.DirsPerDir,
		"bytes_per_file", g.cfg.BytesPerFile,
		"max_depth", g.cfg.MaxDepth,
		"workers", g.cfg.Workers,
	)

	start := time.Now()
	stats, err := g.drain(ctx, newFrontier(root))
	if err != nil {
		log.Errorw("generation failed", "root", g.cfg.Root, "error", err)
		return Stats{}, err
	}
	log.Infow("generation complete",
		"files", stats.Files,
		"dirs", stats.Dirs,
		"bytes", stats.Bytes,
		"elapsed", time.Since(start),
	)
	return stats, nil
}

// prepareRoot creates the root if needed and refuses to touch one that
// already has entries.
func prepareRoot(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return &IOError{Op: "create directory", Path: root, cause: err}
	}

	f, err := os.Open(root)
	if err != nil {
		return &IOError{Op: "read directory", Path: root, cause: err}
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return &IOError{Op: "read directory", Path: root, cause: err}
	}
	if len(names) > 0 {
		return &ConfigError{Path: root, cause: ErrRootNotEmpty}
	}
	return nil
}

// state is one directory's unit of work. A parent builds it after creating
// the child directory, and exactly one worker later populates it.
type state struct {
	path   string
	depth  uint32
	seed   seed
	budget budget
}

// next derives the state of a child directory from the parent's stream.
func (st *state) next(path string, src *rand.ChaCha8, b budget) state {
	return state{
		path:   path,
		depth:  st.depth - 1,
		seed:   nextSeed(src),
		budget: b,
	}
}

// drain runs Workers goroutines that populate directories from f until the
// tree is complete. The first failure cancels ctx, the remaining workers
// finish the directory they hold and stop, and only that failure is
// returned.
func (g *Generator) drain(ctx context.Context, f *frontier) (Stats, error) {
	eg, ctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(ctx, f.stop)
	defer stop()

	var (
		mu    sync.Mutex
		total Stats
	)
	for range max(g.cfg.Workers, 1) {
		eg.Go(func() error {
			stats, err := g.work(ctx, f)
			if err != nil {
				return err
			}
			mu.Lock()
			total.Add(stats)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Stats{}, err
	}
	return total, nil
}

// work is one worker's loop. It returns what the worker created.
func (g *Generator) work(ctx context.Context, f *frontier) (Stats, error) {
	var total Stats
	for {
		st, ok := f.pop()
		if !ok {
			return total, ctx.Err()
		}
		children, created, err := g.task(ctx, st)
		f.finish(children)
		if err != nil {
			return Stats{}, err
		}
		total.Add(created)
	}
}

// task populates one directory and turns a panic inside it into a TaskError.
func (g *Generator) task(ctx context.Context, st state) (children []state, created Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			children, created = nil, Stats{}
			err = &TaskError{Path: st.path, cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	return g.populate(ctx, st)
}

// populate creates the directory's own subdirectories and files and returns
// the states of the children still to be populated.
func (g *Generator) populate(ctx context.Context, st state) ([]state, Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	src := rand.NewChaCha8(st.seed)
	p := g.planner.plan(&st, sampler{rng: rand.New(src)})
	log.Debugf("Creating %d files and %d directories in %s", len(p.fileSizes), p.dirs, st.path)

	children := make([]state, 0, p.dirs)
	for i := 0; i < p.dirs; i++ {
		dir := filepath.Join(st.path, strconv.Itoa(i)+".dir")
		if err := os.Mkdir(dir, 0o755); err != nil {
			return nil, Stats{}, &IOError{Op: "create directory", Path: dir, cause: err}
		}
		children = append(children, st.next(dir, src, p.children[i]))
	}

	created := Stats{Dirs: uint64(p.dirs)}
	for i, size := range p.fileSizes {
		file := filepath.Join(st.path, strconv.Itoa(i))
		if err := g.writeFile(ctx, file, size, src); err != nil {
			return nil, Stats{}, err
		}
		created.Files++
		created.Bytes += size
	}

	if g.observer != nil {
		g.observer(created)
	}
	return children, created, nil
}
