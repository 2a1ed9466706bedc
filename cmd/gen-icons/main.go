// Command gen-icons writes the extension icons into dist/icons.
// It always exits 0; per-size failures are printed.
package main

import (
	"os"

	"github.com/aretw0/flash/internal/cli"
	"github.com/aretw0/flash/pkg/icon"
)

func main() {
	cli.RunIcons(os.Stdout, icon.DefaultDir, icon.DefaultSizes)
}
