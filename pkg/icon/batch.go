package icon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// DefaultSizes are the sizes a browser extension manifest asks for.
var DefaultSizes = []int{16, 32, 48, 128}

// DefaultDir is where icons land, relative to the working directory.
const DefaultDir = "dist/icons"

// FileName returns the output file name for size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Result is the outcome for one size.
type Result struct {
	Size int
	Path string
	Err  error
}

// OK reports whether the icon was written.
func (r Result) OK() bool { return r.Err == nil }

// Report collects one Result per requested size, in request order.
type Report struct {
	Dir     string
	Results []Result
}

// Succeeded returns how many icons were written.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Err joins all per-size errors, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", FileName(res.Size), res.Err))
	}
	return errors.Join(errs...)
}

type generator struct {
	render  func(int) (*image.RGBA, error)
	observe func(Result)
}

// Option defines a functional option for Generate.
type Option func(*generator)

// WithRenderer replaces Render, e.g. to inject a failure for one size.
func WithRenderer(render func(int) (*image.RGBA, error)) Option {
	return func(g *generator) {
		g.render = render
	}
}

// WithObserver is called after each size is processed.
func WithObserver(observe func(Result)) Option {
	return func(g *generator) {
		g.observe = observe
	}
}

// Generate writes one PNG per size into dir, creating dir if needed.
// It never stops early: every size gets a Result, successful or not.
func Generate(dir string, sizes []int, opts ...Option) Report {
	g := &generator{render: Render}
	for _, opt := range opts {
		opt(g)
	}

	report := Report{Dir: dir, Results: make([]Result, 0, len(sizes))}
	mkErr := os.MkdirAll(dir, 0755)

	for _, size := range sizes {
		res := Result{Size: size, Path: filepath.Join(dir, FileName(size))}
		if mkErr != nil {
			res.Err = fmt.Errorf("create output directory: %w", mkErr)
		} else {
			res.Err = g.one(size, res.Path)
		}

		report.Results = append(report.Results, res)
		if g.observe != nil {
			g.observe(res)
		}
	}

	return report
}

func (g *generator) one(size int, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panicked: %v", r)
		}
	}()

	img, err := g.render(size)
	if err != nil {
		return err
	}
	return writePNG(path, img)
}

// writePNG encodes img to path. On failure the partial file is removed.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return png.Encode(f, img)
}
