package genconfig

// Message constants
const (
	MsgShort   = "Generate a default configuration file"
	MsgLong    = "Output the default configuration, comments included, to stdout or write it to the config directory.\n\nWith the -w flag, writes to the XDG config location (or the path given with --config) instead of printing."
	MsgExample = `  pathkeeper gen-config                          # Print to stdout
  pathkeeper gen-config -w                        # Write to ~/.config/pathkeeper/pathkeeper.toml
  pathkeeper gen-config -w --config ./pk.toml     # Write to an explicit path`
)
