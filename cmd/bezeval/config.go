package main

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"honnef.co/go/bezier"
)

// Config is the contents of a configuration file such as
//
//	[Eval]
//	Mode = curve
//	Algorithm = decasteljau
//	Samples = 100
//	Start = 0
//	End = 1
//	Points = control_points.txt
type Config struct {
	Eval EvalConfig
}

type EvalConfig struct {
	// Mode is one of curve, teaspoon, compare or bernstein.
	Mode      string
	Algorithm string
	Samples   int
	Start     float64
	End       float64
	// Points is a whitespace separated table with one control point per
	// row. Missing columns are read as zero.
	Points string

	// Degree and Index select the polynomial in bernstein mode.
	Degree int
	Index  int
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Eval: EvalConfig{
		Mode:      "curve",
		Algorithm: bezier.DeCasteljau.String(),
		Samples:   100,
		Start:     0,
		End:       1,
		Degree:    3,
		Index:     1,
	}}
}

// ReadConfig reads the configuration file fname on top of the defaults.
func ReadConfig(fname string) (Config, error) {
	c := DefaultConfig()
	if fname == "" {
		return c, nil
	}
	if err := gcfg.ReadFileInto(&c, fname); err != nil {
		return Config{}, err
	}
	return c, nil
}

// CheckInit validates the configuration.
func (c *EvalConfig) CheckInit() error {
	switch c.Mode {
	case "curve", "teaspoon", "compare", "bernstein":
	default:
		return fmt.Errorf("unknown mode '%s'", c.Mode)
	}
	if _, err := bezier.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Samples <= 0 {
		return fmt.Errorf("need a positive number of samples, but got %d", c.Samples)
	}
	if c.Degree < 0 || c.Index < 0 {
		return fmt.Errorf("degree and index must not be negative, got %d and %d", c.Degree, c.Index)
	}
	return nil
}

func (c *EvalConfig) Range() bezier.Range {
	return bezier.Range{A: c.Start, B: c.End}
}
