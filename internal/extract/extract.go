// Package extract defines the contract for name-extraction engines: one
// participant-panel image in, raw newline-separated name text out. The
// interface is transport-agnostic so engines can be backed by remote
// multimodal inference APIs or local OCR without leaking provider concerns
// into callers.
package extract

import "context"

// ImageFormat identifies the content type of an input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
)

// Input encapsulates a single image submitted for extraction.
type Input struct {
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type. Empty means image/png.
	Format ImageFormat
	// Languages is a list of language hints (e.g. "eng", "jpn") that local
	// OCR engines can use to select trained data. Remote engines ignore it.
	Languages []string
}

// Result carries the raw extraction output before normalization.
type Result struct {
	// RawText is the newline-separated name list as returned by the engine.
	RawText string
}

// Engine is the extraction provider contract.
type Engine interface {
	Name() string
	Extract(ctx context.Context, in Input) (Result, error)
}
