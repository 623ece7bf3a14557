// Package units defines lengths in English Metric Units (EMU) and simple
// axis-aligned rectangles built from them.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Length is a distance in EMU. 914400 EMU make an inch, 360000 a centimeter.
type Length int64

const (
	EmuPerInch  Length = 914400
	EmuPerCm    Length = 360000
	EmuPerMm    Length = 36000
	EmuPerPoint Length = 12700
)

func Emu(v int64) Length         { return Length(v) }
func Inches(v float64) Length    { return Length(math.Round(v * float64(EmuPerInch))) }
func Cm(v float64) Length        { return Length(math.Round(v * float64(EmuPerCm))) }
func Mm(v float64) Length        { return Length(math.Round(v * float64(EmuPerMm))) }
func Points(v float64) Length    { return Length(math.Round(v * float64(EmuPerPoint))) }
func (l Length) Emu() int64      { return int64(l) }
func (l Length) Inches() float64 { return float64(l) / float64(EmuPerInch) }
func (l Length) Cm() float64     { return float64(l) / float64(EmuPerCm) }
func (l Length) Mm() float64     { return float64(l) / float64(EmuPerMm) }
func (l Length) Points() float64 { return float64(l) / float64(EmuPerPoint) }

// String renders length in EMU, which is exact and parses back with Parse.
func (l Length) String() string {
	return strconv.FormatInt(int64(l), 10)
}

var suffixes = []struct {
	suffix string
	unit   Length
}{
	{"emu", 1},
	{"in", EmuPerInch},
	{"cm", EmuPerCm},
	{"mm", EmuPerMm},
	{"pt", EmuPerPoint},
}

// Parse accepts plain EMU integers ("914400") or decimal values with one of
// the unit suffixes emu, in, cm, mm, pt ("2.5cm").
func Parse(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) == 0 {
		return 0, fmt.Errorf("empty length")
	}
	for _, sf := range suffixes {
		num, ok := strings.CutSuffix(s, sf.suffix)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("bad length %q: %w", s, err)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("bad length %q: not a finite number", s)
		}
		return Length(math.Round(v * float64(sf.unit))), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad length %q: %w", s, err)
	}
	return Length(v), nil
}

func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", value.Line)
	}
	v, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = v
	return nil
}

func (l Length) MarshalYAML() (any, error) {
	return int64(l), nil
}

// Sum adds up all lengths.
func Sum(ls ...Length) Length {
	var total Length
	for _, l := range ls {
		total += l
	}
	return total
}
