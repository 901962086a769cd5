package show

// Message constants
const (
	MsgShort = "Show the current search path and bucket contents"
	MsgLong  = `Show reads the master variable and every overflow bucket in the selected
scope and prints their entries, lengths and the length budget. Nothing is
modified, so no elevation is needed even for machine scope.`

	MsgExample = `  # Show the user-scope search path
  pathkeeper show

  # Show the machine-scope search path
  pathkeeper show --scope machine`
)
