package main

import (
	"github.com/aretw0/flash/internal/cli"
	"github.com/aretw0/flash/pkg/icon"
	"github.com/spf13/cobra"
)

// iconsCmd represents the icons command
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Render the lightning icon as PNG files",
	Long:  `Writes icon<size>.png for every requested size. Failures are reported per size; the command always succeeds.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("out")
		sizes, _ := cmd.Flags().GetIntSlice("sizes")

		cli.RunIcons(cmd.OutOrStdout(), dir, sizes)
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)

	iconsCmd.Flags().StringP("out", "o", icon.DefaultDir, "Output directory")
	iconsCmd.Flags().IntSlice("sizes", icon.DefaultSizes, "Icon sizes in pixels")
}
