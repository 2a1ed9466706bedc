package cli

import (
	"io"

	"github.com/aretw0/flash/internal/presentation/tui"
	"github.com/aretw0/flash/pkg/icon"
)

// RunIcons renders every size into dir, printing one status line per size.
// Per-size failures are reported, never returned: the batch always completes.
func RunIcons(out io.Writer, dir string, sizes []int) icon.Report {
	p := tui.NewStatusPrinter(out)

	p.Start(dir)
	report := icon.Generate(dir, sizes, icon.WithObserver(p.Result))
	p.Summary(report)

	return report
}
