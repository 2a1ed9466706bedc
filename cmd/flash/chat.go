package main

import (
	"os"

	"github.com/aretw0/flash/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Send one message to the chat model and print the reply",
	Long: `Reads a single line from stdin (prompting when stdin is a terminal), sends it to the
configured model and prints the reply. Exits non-zero if configuration is missing or the call fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		in := cmd.InOrStdin()
		interactive := false
		if f, ok := in.(*os.File); ok {
			interactive = term.IsTerminal(int(f.Fd()))
		}

		return cli.RunChat(ctx, cli.ChatOptions{
			Config:      cfg,
			In:          in,
			Out:         cmd.OutOrStdout(),
			Interactive: interactive,
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("provider", "", "Model provider (openai, echo)")
	chatCmd.Flags().String("model", "", "Model name")
	chatCmd.Flags().String("base-url", "", "Override the OpenAI-compatible API base URL")
	chatCmd.Flags().Bool("markdown", false, "Render the reply as markdown")
	chatCmd.Flags().Duration("timeout", 0, "Bound the model call (0 waits indefinitely)")

	// 'chat' is the default if no command is provided
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = chatCmd.RunE
}
