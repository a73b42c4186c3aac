package cli

import (
	"github.com/neonleaf/neonleaf-go/lib/server"
	"github.com/neonleaf/neonleaf-go/lib/settings"
	"github.com/neonleaf/neonleaf-go/lib/utils"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the neonleaf command tree. Without a subcommand the
// server is started.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "neonleaf",
		Short:         "Edit JSON version lists behind a shared password",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newConfigCommand(),
		newInspectCommand(),
		newExportCommand(),
	)
	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	setupLogger := utils.SetupLogger()
	defer setupLogger.Sync()
	return server.InitServer(setupLogger)
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show and generate settings",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := settings.ReadConfig("")
			return err
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "List every key with its env var, current and default value",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				settings.ConfigShow(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "dump",
			Short: "Print the effective settings as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return settings.ConfigDump(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "env",
			Short: "List the environment variable of every key",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				settings.ConfigEnv(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "get KEY",
			Short: "Print the effective value of one key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return settings.ConfigGet(cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Print a settings.json holding every default",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return settings.ConfigInit(cmd.OutOrStdout())
			},
		},
	)
	return configCmd
}
