package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/flash/pkg/icon"
	"github.com/muesli/termenv"
)

// StatusPrinter writes the icon driver's progress lines.
// Colors are applied only when w is a terminal that supports them.
type StatusPrinter struct {
	out *termenv.Output
}

// NewStatusPrinter creates a printer writing to w.
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{out: termenv.NewOutput(w)}
}

func (p *StatusPrinter) line(hex, text string) {
	fmt.Fprintln(p.out, p.out.String(text).Foreground(p.out.Color(hex)))
}

// Start announces the batch.
func (p *StatusPrinter) Start(dir string) {
	p.line("#818cf8", fmt.Sprintf("⚡ Generating icons in %s...", dir))
}

// Result reports one size.
func (p *StatusPrinter) Result(r icon.Result) {
	if r.OK() {
		p.line("#22c55e", fmt.Sprintf("✅ Created %s (%dx%d)", r.Path, r.Size, r.Size))
		return
	}
	p.line("#ef4444", fmt.Sprintf("❌ Error creating %s: %v", icon.FileName(r.Size), r.Err))
}

// Summary closes the batch.
func (p *StatusPrinter) Summary(report icon.Report) {
	p.line("#e879f9", fmt.Sprintf("🎉 Generated %d/%d icons", report.Succeeded(), len(report.Results)))
}
