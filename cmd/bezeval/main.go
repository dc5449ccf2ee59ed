// Command bezeval samples Bézier curves and the teaspoon model, and compares
// the evaluation algorithms.
//
// Results are written to standard output as whitespace separated columns.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kpango/glg"
	"github.com/phil-mansfield/table"

	"honnef.co/go/bezier"
)

type Flags struct {
	ConfigPath string
	Mode       string
	Algorithm  string
	Points     string
	Samples    int
}

// defaultPoints are used in curve and compare mode when no point file is
// given.
var defaultPoints = []bezier.Point3{
	bezier.P3(0, 0, 0),
	bezier.P3(1, 1, 0),
	bezier.P3(2, 0.5, 0),
	bezier.P3(3, 0.5, 0),
	bezier.P3(0.5, 1.5, 0),
	bezier.P3(1.5, 0, 0),
}

func main() {
	var f Flags
	flag.StringVar(&f.ConfigPath, "config", "", "configuration file")
	flag.StringVar(&f.Mode, "mode", "", "curve, teaspoon, compare or bernstein (overrides config)")
	flag.StringVar(&f.Algorithm, "alg", "", "decasteljau or direct (overrides config)")
	flag.StringVar(&f.Points, "points", "", "control point table (overrides config)")
	flag.IntVar(&f.Samples, "n", 0, "number of samples (overrides config)")
	flag.Parse()

	cfg, err := ReadConfig(f.ConfigPath)
	if err != nil {
		glg.Fatalf("Cannot read config %s: %v", f.ConfigPath, err)
	}
	ec := &cfg.Eval
	if f.Mode != "" {
		ec.Mode = f.Mode
	}
	if f.Algorithm != "" {
		ec.Algorithm = f.Algorithm
	}
	if f.Points != "" {
		ec.Points = f.Points
	}
	if f.Samples > 0 {
		ec.Samples = f.Samples
	}
	if err := ec.CheckInit(); err != nil {
		glg.Fatalf("Invalid configuration: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if err := run(w, ec); err != nil {
		w.Flush()
		glg.Fatal(err)
	}
}

func run(w io.Writer, ec *EvalConfig) error {
	alg, err := bezier.ParseAlgorithm(ec.Algorithm)
	if err != nil {
		return err
	}

	switch ec.Mode {
	case "curve":
		c, err := loadCurve(ec.Points)
		if err != nil {
			return err
		}
		glg.Infof("Sampling curve of degree %d with %s", c.Degree(), alg)
		ts, pts := bezier.SampleCurve(c, alg, ec.Range(), ec.Samples)
		for i, p := range pts {
			fmt.Fprintf(w, "%.6g %.12g %.12g %.12g\n", ts[i], p.X(), p.Y(), p.Z())
		}
	case "teaspoon":
		patches := bezier.Teaspoon()
		glg.Infof("Sampling %d teaspoon patches with %s", len(patches), alg)
		for i, s := range patches {
			uvs, pts := bezier.SampleSurface(s, alg, ec.Range(), ec.Range(), ec.Samples)
			for j, p := range pts {
				fmt.Fprintf(w, "%d %.6g %.6g %.12g %.12g %.12g\n", i, uvs[j].X(), uvs[j].Y(), p.X(), p.Y(), p.Z())
			}
		}
	case "compare":
		c, err := loadCurve(ec.Points)
		if err != nil {
			return err
		}
		rep, err := bezier.Compare(c, ec.Range(), ec.Samples)
		if err != nil {
			return err
		}
		if !rep.Agree(bezier.DefaultAccuracy) {
			glg.Warnf("Algorithms disagree by more than %g", bezier.DefaultAccuracy)
		}
		fmt.Fprintln(w, rep)
	case "bernstein":
		b, err := bezier.NewBernstein(uint(ec.Degree), uint(ec.Index))
		if err != nil {
			glg.Warnf("Cannot create Bernstein polynomial: %v", err)
			return err
		}
		for _, xi := range ec.Range().Samples(ec.Samples) {
			fmt.Fprintf(w, "%.6g %.12g\n", xi, b.Eval(bezier.P1(xi)).X())
		}
	}
	return nil
}

// loadCurve reads control points from the first three columns of a table
// file, or returns the default curve if fname is empty.
func loadCurve(fname string) (bezier.Curve, error) {
	if fname == "" {
		return bezier.NewCurve(defaultPoints...)
	}
	cols, err := readColumns(fname)
	if err != nil {
		return bezier.Curve{}, err
	}
	pts := make([]bezier.Point3, len(cols[0]))
	for i := range pts {
		for k, col := range cols {
			pts[i].SetValue(k, col[i])
		}
	}
	glg.Infof("Read %d control points from %s", len(pts), fname)
	return bezier.NewCurve(pts...)
}

// readColumns reads as many of the x, y and z columns as the table has.
func readColumns(fname string) ([][]float64, error) {
	var lastErr error
	for n := 3; n >= 1; n-- {
		idxs := make([]int, n)
		for i := range idxs {
			idxs[i] = i
		}
		cols, err := table.ReadTable(fname, idxs, nil)
		if err == nil {
			return cols, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("cannot read control points from %s: %w", fname, lastErr)
}
