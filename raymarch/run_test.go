package raymarch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRejectsInvalidOptions(t *testing.T) {
	cases := map[string]func(opts *Options){
		"present mode":     func(opts *Options) { opts.PresentMode = "vsync" },
		"power preference": func(opts *Options) { opts.PowerPreference = "max" },
		"wgpu log level":   func(opts *Options) { opts.WGPULogLevel = "loud" },
	}

	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			modify(&opts)

			// fails before a window is opened
			err := Run(opts)
			assert.ErrorContains(t, err, "invalid options")
		})
	}
}
