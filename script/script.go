// Package script runs YAML edit scripts against a deck. Every step addresses
// a slide by index and a frame on it by name.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"gridkit/common"
	"gridkit/units"
)

//go:generate go tool go-enum --marshal --names

// Kind of the edit step.
// ENUM(add_slide, add_table, merge, split, add_rows, add_columns, delete_row, delete_column, set_text, set_row_height, set_column_width, join, orient, relocate, move_frame)
type Op int

var ErrBadStep = errors.New("bad step")

// CellRef is a [row, column] pair, negative values count from the end.
type CellRef struct {
	Row, Col int
}

func (c *CellRef) UnmarshalYAML(node *yaml.Node) error {
	var v []int
	if err := node.Decode(&v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("line %d: cell reference must be [row, column]: %w", node.Line, ErrBadStep)
	}
	c.Row, c.Col = v[0], v[1]
	return nil
}

type Step struct {
	Op     Op     `yaml:"op"`
	Slide  int    `yaml:"slide"`
	Frame  string `yaml:"frame"`
	Name   string `yaml:"name"`
	Layout string `yaml:"layout"`

	Rows    int            `yaml:"rows"`
	Cols    int            `yaml:"cols"`
	X       units.Length   `yaml:"x"`
	Y       units.Length   `yaml:"y"`
	W       units.Length   `yaml:"w"`
	H       units.Length   `yaml:"h"`
	Widths  []units.Length `yaml:"widths"`
	Heights []units.Length `yaml:"heights"`

	From  CellRef      `yaml:"from"`
	To    CellRef      `yaml:"to"`
	Cell  CellRef      `yaml:"cell"`
	Text  string       `yaml:"text"`
	Count int          `yaml:"count"`
	Size  units.Length `yaml:"size"`
	Index int          `yaml:"index"`

	Donor       string `yaml:"donor"`
	DonorSlide  *int   `yaml:"donor_slide"`
	Side        string `yaml:"side"`
	Trim        *bool  `yaml:"trim"`
	RemoveDonor *bool  `yaml:"remove_donor"`

	Ref common.RefPoint `yaml:"ref"`

	Source    string `yaml:"source"`
	Target    int    `yaml:"target"`
	Duplicate bool   `yaml:"duplicate"`
}

type Script struct {
	// KeepGoing continues after failed step, all failures are reported.
	KeepGoing bool   `yaml:"keep_going"`
	Steps     []Step `yaml:"steps"`
}

// Parse decodes script rejecting unknown fields.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}
