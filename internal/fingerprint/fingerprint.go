// Package fingerprint provides the on-disk form of a parsed signature.
package fingerprint

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"sig-tracer/internal/parser"
	"sig-tracer/internal/trace"
)

// CurrentVersion is written into every new File.
const CurrentVersion = 1

// Format selects the encoding of a fingerprint file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Anything that is not
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// File is a saved fingerprint.
type File struct {
	Version int       `json:"version" yaml:"version"`
	Created time.Time `json:"created" yaml:"created"`

	// Source image path, relative to the fingerprint file when possible.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	Width   int      `json:"width" yaml:"width"`
	Height  int      `json:"height" yaml:"height"`
	Vectors []Vector `json:"vectors" yaml:"vectors"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// Vector is one traced stroke.
type Vector struct {
	Path     [][2]int `json:"path" yaml:"path,flow"`
	Angle    *float64 `json:"angle" yaml:"angle"` // nil for a lone pixel
	Quadrant int      `json:"quadrant" yaml:"quadrant"`
	Isolated bool     `json:"isolated,omitempty" yaml:"isolated,omitempty"`

	// Straightness is the share of path variance along its principal axis:
	// 1 for a straight run, lower for curved strokes, 0 for a lone pixel.
	Straightness float64 `json:"straightness" yaml:"straightness"`
}

// New builds a File from a parse result.
func New(p *parser.ParsedImage) *File {
	f := &File{
		Version: CurrentVersion,
		Created: time.Now(),
		Width:   p.Width,
		Height:  p.Height,
		Vectors: make([]Vector, 0, len(p.Vectors)),
	}
	for _, v := range p.Vectors {
		f.Vectors = append(f.Vectors, fromTrace(v))
	}
	f.Summary = Summarize(f.Vectors)
	return f
}

func fromTrace(v *trace.Vector) Vector {
	out := Vector{
		Path:     make([][2]int, len(v.Path)),
		Quadrant: int(v.Quadrant),
		Isolated: v.Isolated,
	}
	for i, pt := range v.Path {
		out.Path[i] = [2]int{pt.X, pt.Y}
	}
	if a := v.Angle(); !math.IsNaN(a) {
		out.Angle = &a
	}
	out.Straightness = Straightness(out.Path)
	return out
}

// Load reads a fingerprint, choosing the decoder by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch FormatFor(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode fingerprint %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the fingerprint, choosing the encoder by extension.
func (f *File) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch FormatFor(path) {
	case FormatYAML:
		data, err = yaml.Marshal(f)
	default:
		data, err = json.MarshalIndent(f, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode fingerprint: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// SetSource records imagePath relative to the fingerprint at filePath.
func (f *File) SetSource(filePath, imagePath string) {
	rel, err := filepath.Rel(filepath.Dir(filePath), imagePath)
	if err != nil {
		f.Source = imagePath
	} else {
		f.Source = rel
	}
}

// SourcePath returns the absolute source image path for a fingerprint
// stored at filePath.
func (f *File) SourcePath(filePath string) string {
	if f.Source == "" {
		return ""
	}
	if filepath.IsAbs(f.Source) {
		return f.Source
	}
	return filepath.Join(filepath.Dir(filePath), f.Source)
}

// PathFor returns where the fingerprint of imagePath goes inside dir.
func PathFor(dir, imagePath string, format Format) string {
	base := filepath.Base(imagePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+format.Ext())
}
