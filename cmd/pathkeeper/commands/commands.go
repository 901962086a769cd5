// Package commands wires the pathkeeper CLI: the cobra root command,
// its subcommands and their terminal output.
package commands

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathkeeper/cmd/pathkeeper/commands/genconfig"
	"github.com/arthur-debert/pathkeeper/cmd/pathkeeper/commands/show"
	"github.com/arthur-debert/pathkeeper/cmd/pathkeeper/commands/tidy"
	"github.com/arthur-debert/pathkeeper/internal/version"
	"github.com/arthur-debert/pathkeeper/pkg/cobrax/topics"
	"github.com/arthur-debert/pathkeeper/pkg/config"
	"github.com/arthur-debert/pathkeeper/pkg/logging"
	"github.com/arthur-debert/pathkeeper/pkg/store"
	"github.com/arthur-debert/pathkeeper/pkg/style"
)

//go:embed docs/*.md
var topicDocs embed.FS

// openStore resolves the platform variable store. Tests swap it for a
// memory store.
var openStore = func() (store.Store, error) {
	return store.NewRegistryStore()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		dryRun     bool
		configPath string
		scope      string
	)

	rootCmd := &cobra.Command{
		Use:     "pathkeeper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&scope, "scope", "", MsgFlagScope)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newTidyCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help system from the embedded docs
	if docsFS, err := fs.Sub(topicDocs, "docs"); err == nil {
		var renderer topics.Renderer = &topics.PlainRenderer{}
		if style.UseColor(os.Stdout) {
			renderer = &topics.GlamourRenderer{Width: 80}
		}
		if mgr, err := topics.Load(docsFS, renderer); err == nil {
			rootCmd.AddCommand(mgr.Command())
		}
	}

	return rootCmd
}

// loadConfig resolves the configuration for a subcommand run, applying
// the --config and --scope persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	scope, _ := cmd.Root().PersistentFlags().GetString("scope")

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf(MsgErrLoadConfig, err)
	}
	if scope != "" {
		cfg.Scope = scope
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func newTidyCmd() *cobra.Command {
	cmd := tidy.NewCommand()
	cmd.RunE = runTidy
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := show.NewCommand()
	cmd.RunE = runShow
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := genconfig.NewCommand()
	cmd.RunE = runGenConfig
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pathkeeper version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			header := &doc.GenManHeader{
				Title:   "PATHKEEPER",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
	cmd.Flags().String("dir", ".", "Directory to write man pages into")
	return cmd
}
