package generator

import (
	"context"
	"io"
	"os"

	"golang.org/x/time/rate"
)

// maxBurst bounds a single throttled read so one large file cannot hold
// the whole rate budget.
const maxBurst = 1 << 20

func newLimiter(bytesPerSec int64) *rate.Limiter {
	if bytesPerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), int(min(bytesPerSec, maxBurst)))
}

// throttledReader waits on a shared limiter before every read.
type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	if err := t.limiter.WaitN(t.ctx, len(p)); err != nil {
		return 0, err
	}
	return t.r.Read(p)
}

// writeFile creates path and fills it with size bytes read from content.
func (g *Generator) writeFile(ctx context.Context, path string, size uint64, content io.Reader) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &IOError{Op: "create file", Path: path, cause: err}
	}

	if size > 0 {
		if g.limiter != nil {
			content = &throttledReader{ctx: ctx, r: content, limiter: g.limiter}
		}
		if _, err := io.CopyN(f, content, int64(size)); err != nil {
			f.Close()
			return &IOError{Op: "write file", Path: path, cause: err}
		}
	}

	if err := f.Close(); err != nil {
		return &IOError{Op: "close file", Path: path, cause: err}
	}
	return nil
}
