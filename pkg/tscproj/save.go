package tscproj

import (
	"fmt"

	"github.com/twardoch/tscprojpy/pkg/jsonval"
)

// Save serializes the project back to document text. Every field, known
// or not, is written in the order it was read, so a project that was
// loaded and not transformed reproduces its input byte for byte.
func Save(p *Project) ([]byte, error) {
	data, err := jsonval.Marshal(p.root.Value())
	if err != nil {
		return nil, fmt.Errorf("serialize project: %w", err)
	}
	return data, nil
}
