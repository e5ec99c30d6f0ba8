package syncinstall

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Synchronize the tools installed in a container image"
	MsgVersionShort    = "Print version information"
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Status messages
	MsgDryRunBanner   = "This is a dry run. Add the --go option to execute the below command(s)."
	MsgVersionFormat  = "syncinstall %s (commit %s, built %s)\n"
	MsgSummaryDryRun  = "Planned %d command(s)"
	MsgSummaryExecute = "Ran %d of %d command(s)"

	// Error messages
	MsgErrParseState = "failed to parse the content of %q"
	MsgErrLoadConfig = "failed to load configuration"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagGo       = "Execute the commands instead of only printing them"
	MsgFlagFormat   = "Output format (auto, term, text, json)"
	MsgFlagConfig   = "Path to a config file (default: $XDG_CONFIG_HOME/syncinstall/config.toml)"
	MsgFlagDefaults = "Print the built-in defaults, with comments, instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
