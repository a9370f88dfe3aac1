package pipeline

import (
	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/scene"
)

// Build looks up the demo and lays out its scene.
func Build(opts Options) (*scene.Scene, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	d, err := demo.Lookup(opts.DemoID)
	if err != nil {
		return nil, err
	}
	return d.Build(opts.DemoOptions())
}
