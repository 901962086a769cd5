package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A search path janitor for the Windows registry"
	MsgRootLong  = `pathkeeper keeps the Path environment variable short and clean: it folds
duplicate entries, rewrites entries that mirror another variable as
%VAR% references, and moves everything past the length budget into
overflow bucket variables (PATH_EXT1..N) referenced from the path
itself.`
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDryRunNotice    = "DRY RUN - no variables were changed"
	MsgNothingToDo     = "Already tidy, nothing to change."
	MsgBackupWritten   = "Backup written to %s\n"
	MsgConfigWritten   = "Config written to %s\n"
	MsgEvictedFormat   = "%d entries moved to buckets, %d kept in %s\n"
	MsgWarningItem     = "  ! %s\n"
	MsgBucketUndefined = "(not defined)"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrOpenStore  = "failed to open the variable store: %w"
	MsgErrTidy       = "failed to tidy the search path: %w"
	MsgErrShow       = "failed to read the search path: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without writing any variable"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/pathkeeper/pathkeeper.toml)"
	MsgFlagScope   = "Variable scope to operate on: user or machine"
)

// Long messages
const (
	MsgCompletionLong = `To load completions:

Bash:
  $ source <(pathkeeper completion bash)
  # To load completions for each session, execute once:
  $ pathkeeper completion bash > /etc/bash_completion.d/pathkeeper

Zsh:
  $ pathkeeper completion zsh > "${fpath[1]}/_pathkeeper"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pathkeeper completion fish | source
  # To load completions for each session, execute once:
  $ pathkeeper completion fish > ~/.config/fish/completions/pathkeeper.fish

PowerShell:
  PS> pathkeeper completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> pathkeeper completion powershell > pathkeeper.ps1
  # and source this file from your PowerShell profile.
`
)

// Long messages from embedded files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
