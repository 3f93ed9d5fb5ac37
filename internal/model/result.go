package model

import "github.com/google/uuid"

// Classification is what the transform stage learned about the source
// before choosing a branch.
type Classification struct {
	Format   string // decoder format name, e.g. "gif", "jpeg", "ppm"
	Animated bool
	Frames   int
}

// Result describes a finished conversion.
type Result struct {
	ID              uuid.UUID `json:"id"`
	SourcePath      string    `json:"source_path"`
	DestinationPath string    `json:"destination_path"`
	SourceFormat    string    `json:"source_format"`
	OutputFormat    string    `json:"output_format"`
	Animated        bool      `json:"animated"`
	Frames          int       `json:"frames"`
	Operations      []string  `json:"operations"`
}
