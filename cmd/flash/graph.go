package main

import (
	"fmt"

	"github.com/aretw0/flash"
	"github.com/aretw0/flash/internal/presentation/graph"
	"github.com/aretw0/flash/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the chat graph visualization",
	Long:  `Compiles the chat graph and outputs a Mermaid diagram (graph TD) of its topology.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The topology does not depend on the model.
		g, err := flash.NewChatGraph(memory.NewEcho())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(g.Nodes(), g.Edges()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
