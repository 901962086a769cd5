package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkeeper/pkg/commands"
	"github.com/arthur-debert/pathkeeper/pkg/config"
	"github.com/arthur-debert/pathkeeper/pkg/pathenv"
	"github.com/arthur-debert/pathkeeper/pkg/style"
)

func runTidy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return fmt.Errorf(MsgErrOpenStore, err)
	}

	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	noBackup, _ := cmd.Flags().GetBool("no-backup")

	log.Info().
		Str("scope", cfg.Scope).
		Bool("dry_run", dryRun).
		Msg("Tidying search path")

	result, err := commands.Tidy(commands.TidyOptions{
		Config:   cfg,
		Store:    st,
		DryRun:   dryRun,
		NoBackup: noBackup,
	})
	if err != nil {
		return fmt.Errorf(MsgErrTidy, err)
	}

	renderTidy(cmd, cfg, result)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return fmt.Errorf(MsgErrOpenStore, err)
	}

	result, err := commands.Show(cfg, st)
	if err != nil {
		return fmt.Errorf(MsgErrShow, err)
	}

	renderShow(cmd, cfg, result)
	return nil
}

func runGenConfig(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	resolved, _ := cmd.Flags().GetBool("resolved")

	content := config.DefaultTOML()
	if resolved {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if content, err = cfg.TOML(); err != nil {
			return err
		}
	}

	if !write {
		cmd.Print(string(content))
		return nil
	}

	target, _ := cmd.Root().PersistentFlags().GetString("config")
	if target == "" {
		target = filepath.Join(xdg.ConfigHome, "pathkeeper", "pathkeeper.toml")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return err
	}
	cmd.Printf(MsgConfigWritten, target)
	return nil
}

func renderTidy(cmd *cobra.Command, cfg config.Config, res *commands.TidyResult) {
	color := style.UseColor(os.Stdout)

	if res.DryRun {
		cmd.Println(style.Render(style.WarningStyle, MsgDryRunNotice, color))
	}
	for _, w := range res.Plan.Warnings {
		cmd.Print(style.Render(style.WarningStyle, fmt.Sprintf(MsgWarningItem, w), color))
	}

	if !res.Changed {
		cmd.Println(style.Render(style.MutedStyle, MsgNothingToDo, color))
		return
	}

	summary := fmt.Sprintf(MsgEvictedFormat, res.Plan.Evicted, res.Plan.Kept, cfg.Master)
	cmd.Print(style.Render(style.SuccessStyle, summary, color))

	for i, name := range cfg.BucketNames() {
		load := fmt.Sprintf("  %s: %d chars", name, len(res.Plan.Buckets[i]))
		cmd.Println(style.Render(style.MutedStyle, load, color))
	}

	if res.BackupPath != "" {
		cmd.Printf(MsgBackupWritten, res.BackupPath)
	}
}

func renderShow(cmd *cobra.Command, cfg config.Config, res *commands.ShowResult) {
	color := style.UseColor(os.Stdout)
	syntax := pathenv.NewSyntax(cfg.Delimiter, cfg.Wrap)

	title := fmt.Sprintf("%s (%s scope, %d/%d chars)", cfg.Master, res.Scope, res.MasterLength, res.MaxLength)
	cmd.Println(style.Render(style.TitleStyle, title, color))
	for _, e := range res.MasterEntries {
		if syntax.IsVariableReference(e) {
			cmd.Println(style.Render(style.ProtectedStyle, e, color))
		} else {
			cmd.Println(style.Render(style.EntryStyle, e, color))
		}
	}

	for _, b := range res.Buckets {
		cmd.Println()
		if !b.Defined {
			cmd.Println(style.Render(style.SubtitleStyle, b.Name, color),
				style.Render(style.MutedStyle, MsgBucketUndefined, color))
			continue
		}
		sub := fmt.Sprintf("%s (%d chars)", b.Name, b.Length)
		cmd.Println(style.Render(style.SubtitleStyle, sub, color))
		for _, e := range b.Entries {
			cmd.Println(style.Render(style.EntryStyle, e, color))
		}
	}
}
