package main

import (
	"fmt"

	"github.com/aretw0/flash"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flash",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flash version %s\n", flash.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
