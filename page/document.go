// Package page reads YAML page documents and turns them into element trees.
// The document model is deliberately flat and explicit - every block names
// its kind and carries only plain scalars, so the YAML stays diffable and the
// mapping onto element constructors is direct.
package page

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"trellis/config"
)

type Document struct {
	ID         string                 `yaml:"id,omitempty"`
	Title      string                 `yaml:"title"`
	Language   string                 `yaml:"language,omitempty"`
	Stylesheet *config.StylesheetMode `yaml:"stylesheet,omitempty"`
	CSS        string                 `yaml:"css,omitempty"`
	Body       *Block                 `yaml:"body"`
}

// Block is one node of the page body. Which fields matter depends on Kind;
// unknown YAML fields are rejected at decode time.
type Block struct {
	Kind     string   `yaml:"kind,omitempty"`
	Text     string   `yaml:"text,omitempty"`
	Tag      string   `yaml:"tag,omitempty"`
	Level    int      `yaml:"level,omitempty"`
	Src      string   `yaml:"src,omitempty"`
	Alt      string   `yaml:"alt,omitempty"`
	URL      string   `yaml:"url,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Columns  int      `yaml:"columns,omitempty"`
	ID       string   `yaml:"id,omitempty"`
	Class    string   `yaml:"class,omitempty"`
	Width    string   `yaml:"width,omitempty"`
	Height   string   `yaml:"height,omitempty"`
	AlignX   string   `yaml:"align_x,omitempty"`
	AlignY   string   `yaml:"align_y,omitempty"`
	Spacing  []int    `yaml:"spacing,omitempty,flow"`
	Padding  []int    `yaml:"padding,omitempty,flow"`

	Background  string   `yaml:"background,omitempty"`
	Color       string   `yaml:"color,omitempty"`
	BorderColor string   `yaml:"border_color,omitempty"`
	FontSize    int      `yaml:"font_size,omitempty"`
	Border      int      `yaml:"border,omitempty"`
	Rounded     int      `yaml:"rounded,omitempty"`
	Opacity     *float64 `yaml:"opacity,omitempty"`

	Move      []float64 `yaml:"move,omitempty,flow"`
	Rotate    *float64  `yaml:"rotate,omitempty"`
	Scale     *float64  `yaml:"scale,omitempty"`
	Blur      *float64  `yaml:"blur,omitempty"`
	Grayscale *float64  `yaml:"grayscale,omitempty"`

	Shadow     *ShadowSpec `yaml:"shadow,omitempty"`
	TextShadow *ShadowSpec `yaml:"text_shadow,omitempty"`

	Attrs map[string]string `yaml:"attrs,omitempty"`
	CSS   string            `yaml:"css,omitempty"`

	Nearby   []NearbyBlock `yaml:"nearby,omitempty"`
	Children []*Block      `yaml:"children,omitempty"`
}

// ShadowSpec describes one box or text shadow. Size and inset only apply to
// box shadows.
type ShadowSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Blur  float64 `yaml:"blur,omitempty"`
	Size  float64 `yaml:"size,omitempty"`
	Color string  `yaml:"color"`
	Inset bool    `yaml:"inset,omitempty"`
}

// NearbyBlock anchors a child outside normal layout flow.
type NearbyBlock struct {
	Location string `yaml:"location"`
	Child    *Block `yaml:"child"`
}

// ParseDocument decodes a single page document and fills derived defaults:
// language falls back to "en" and a missing or invalid page id is replaced
// with a new UUID.
func ParseDocument(data []byte, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("unable to decode page document: %w", err)
	}

	if len(d.Title) == 0 {
		return nil, fmt.Errorf("page document has no title")
	}
	if d.Body == nil {
		return nil, fmt.Errorf("page document has no body")
	}

	if _, err := uuid.Parse(d.ID); err != nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate new page UUID: %w", err)
		}
		if len(d.ID) != 0 {
			log.Warn("Page has invalid ID, correcting", zap.String("old_id", d.ID), zap.Stringer("new_id", id))
		}
		d.ID = id.String()
	}

	if len(d.Language) == 0 {
		d.Language = "en"
	}
	return d, nil
}

// Load reads a page document from a file.
func Load(path string, log *zap.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read page document: %w", err)
	}
	d, err := ParseDocument(data, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return d, nil
}

// StylesheetModeOr returns the per-document stylesheet mode override when the
// document carries one.
func (d *Document) StylesheetModeOr(def config.StylesheetMode) config.StylesheetMode {
	if d.Stylesheet != nil {
		return *d.Stylesheet
	}
	return def
}
