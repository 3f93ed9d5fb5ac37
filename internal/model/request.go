package model

import (
	"path/filepath"
	"strings"
)

// Suffixes inserted before the file extension of a derived destination.
const (
	SuffixGrayscale = "_grayscale"
	SuffixFlipped   = "_flipped"
	SuffixProcessed = "_processed"
)

// ProcessingRequest is a validated, immutable description of one conversion.
type ProcessingRequest struct {
	SourcePath      string `json:"source_path"`
	DestinationPath string `json:"destination_path,omitempty"` // derived when empty
	Grayscale       bool   `json:"grayscale"`
	FlipHorizontal  bool   `json:"flip_horizontal"`
}

// HasOperation reports whether at least one transform is requested.
func (r ProcessingRequest) HasOperation() bool {
	return r.Grayscale || r.FlipHorizontal
}

// Destination returns the explicit destination or the one derived from the source.
func (r ProcessingRequest) Destination() string {
	if r.DestinationPath != "" {
		return r.DestinationPath
	}

	return DestinationFor(r.SourcePath, r.Grayscale, r.FlipHorizontal)
}

// Operations lists the requested transforms in the order they are applied
// to the success message: grayscale first, then flip.
func (r ProcessingRequest) Operations() []string {
	ops := make([]string, 0, 2)
	if r.Grayscale {
		ops = append(ops, "grayscale")
	}
	if r.FlipHorizontal {
		ops = append(ops, "flipped")
	}

	return ops
}

// DestinationFor derives an output path from src by inserting the operation
// suffixes before the extension, e.g. "photo.png" -> "photo_grayscale.png".
func DestinationFor(src string, grayscale, flip bool) string {
	name, ext := splitExt(src)

	suffix := ""
	if grayscale {
		suffix += SuffixGrayscale
	}
	if flip {
		suffix += SuffixFlipped
	}
	if suffix == "" {
		suffix = SuffixProcessed
	}

	return name + suffix + ext
}

// splitExt splits path into name and extension. Leading dots of the base
// name do not start an extension, so ".profile" has none.
func splitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	if ext == "" || strings.TrimLeft(base, ".") == strings.TrimLeft(ext, ".") {
		return path, ""
	}

	return strings.TrimSuffix(path, ext), ext
}
