// Package tesseract provides a local OCR extraction engine backed by
// gosseract. It works offline but returns the panel text verbatim, so role
// annotations and stray UI labels are left for the normalizer to handle.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/rollcall/internal/extract"
	"github.com/otiai10/gosseract/v2"
)

// Engine implements extract.Engine using the gosseract client.
type Engine struct {
	clientFactory func() *gosseract.Client
}

// NewEngine constructs a Tesseract-backed extraction engine.
func NewEngine() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Extract runs OCR over the full image and returns the recognized text.
func (e *Engine) Extract(ctx context.Context, in extract.Input) (extract.Result, error) {
	select {
	case <-ctx.Done():
		return extract.Result{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return extract.Result{}, fmt.Errorf("%w: set image: %v", extract.ErrService, err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return extract.Result{}, fmt.Errorf("%w: set languages: %v", extract.ErrService, err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return extract.Result{}, fmt.Errorf("%w: recognize text: %v", extract.ErrService, err)
	}
	return extract.Result{RawText: strings.TrimSpace(text)}, nil
}
