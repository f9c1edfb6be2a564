// Package yaml renders command results as YAML documents
package yaml

import (
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

// Renderer writes one YAML document per call
type Renderer struct {
	encoder *yamlv3.Encoder
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := yamlv3.NewEncoder(output)
	encoder.SetIndent(2)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult renders a command result as YAML
func (r *Renderer) RenderResult(result *display.Result) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
