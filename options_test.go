package callbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NoError(t, opts.Validate())
	assert.Equal(t, "calls", opts.Benchmark)
	assert.Equal(t, 100, opts.NumRuns)
	assert.Equal(t, "time", opts.Timer)
	assert.Equal(t, DispatchMethod, opts.Dispatch)
	assert.False(t, opts.TakeGeoMean)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"zero runs", func(o *Options) { o.NumRuns = 0 }},
		{"negative runs", func(o *Options) { o.NumRuns = -5 }},
		{"negative warmup", func(o *Options) { o.Warmup = -1 }},
		{"no benchmark", func(o *Options) { o.Benchmark = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrConfiguration)
		})
	}
}
