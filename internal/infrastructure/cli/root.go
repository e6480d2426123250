package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/dpc-go/internal/app"
	"github.com/doeshing/dpc-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The returned func releases the
// container's resources and must be called once the command has run.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, func() error, error) {
	container, err := app.BuildContainer(ctx, app.Options{
		Verbose:    opts.Verbose,
		ConfigPath: opts.ConfigPath,
		Clipboard:  NewClipboard(),
	})
	if err != nil {
		return nil, nil, err
	}

	classifyCmd := newClassifyCommand(container)

	root := &cobra.Command{
		Use:   "dpc",
		Short: "DPC Check - data protection classification",
		Long: "DPC Check asks eight questions about a piece of information and classifies it\n" +
			"into a DPC tier (0-3) telling you whether it may be used with AI assistants.",
		Args:          cobra.NoArgs,
		RunE:          classifyCmd.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", opts.ConfigPath, "Path to the configuration file (default ~/.dpc/config.yaml, or $DPC_CONFIG)")
	// "dpc --q1 yes ..." behaves like "dpc classify --q1 yes ...".
	root.Flags().AddFlagSet(classifyCmd.Flags())

	root.AddCommand(classifyCmd)
	root.AddCommand(commands.NewQuestionsCommand())
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, container.Close, nil
}
