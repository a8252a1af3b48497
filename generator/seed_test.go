package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootSeed(t *testing.T) {
	resolve := func(o Options) *Configuration {
		t.Helper()
		o.Root = "/tmp/x"
		cfg, err := o.Resolve()
		require.NoError(t, err)
		return cfg
	}
	base := Options{Files: 1000, Bytes: 4096, MaxDepth: 5, Seed: 1}

	assert.Equal(t, rootSeed(resolve(base)), rootSeed(resolve(base)))

	variants := map[string]func(o *Options){
		"seed":        func(o *Options) { o.Seed = 2 },
		"files":       func(o *Options) { o.Files = 1001 },
		"bytes":       func(o *Options) { o.Bytes = 4097 },
		"depth":       func(o *Options) { o.MaxDepth = 4 },
		"ratio":       func(o *Options) { o.Ratio = 10 },
		"exact files": func(o *Options) { o.FilesExact = true },
		"exact bytes": func(o *Options) { o.BytesExact = true },
	}
	for name, change := range variants {
		t.Run(name, func(t *testing.T) {
			o := base
			change(&o)
			assert.NotEqual(t, rootSeed(resolve(base)), rootSeed(resolve(o)))
		})
	}

	t.Run("root and workers do not matter", func(t *testing.T) {
		o := base
		o.Workers = 17
		cfg := resolve(o)
		cfg.Root = "/elsewhere"
		assert.Equal(t, rootSeed(resolve(base)), rootSeed(cfg))
	})
}

func TestNextSeed(t *testing.T) {
	src := rand.NewChaCha8(seed{9})
	first, second := nextSeed(src), nextSeed(src)
	assert.NotEqual(t, first, second)

	again := rand.NewChaCha8(seed{9})
	assert.Equal(t, first, nextSeed(again))
	assert.Equal(t, second, nextSeed(again))
}
