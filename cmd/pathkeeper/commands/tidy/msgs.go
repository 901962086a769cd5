package tidy

// Message constants
const (
	MsgShort = "Deduplicate the search path and move the overflow into buckets"
	MsgLong  = `The 'tidy' command is pathkeeper's primary command. One run performs the
whole maintenance cycle:
  - Substitutes entries that duplicate another variable's value with a
    reference to that variable
  - Removes duplicate entries, keeping the first occurrence
  - Moves entries past the length budget into the overflow buckets
    (PATH_EXT1..N) and appends their placeholders to the master value

Entries that are already variable references keep their position and are
never pushed into a bucket. The run writes a backup of every touched
variable before changing anything; use --no-backup to skip it.`

	MsgExample = `  # Tidy the user-scope search path
  pathkeeper tidy

  # Preview without touching the store
  pathkeeper tidy --dry-run

  # Machine scope (needs an elevated shell)
  pathkeeper tidy --scope machine`
)
