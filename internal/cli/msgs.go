package cli

// Command help and CLI-level messages
const (
	MsgRootShort = "Post-install bootstrap for Asis-coder"
	MsgRootLong  = `asis-install prepares an installed Asis-coder package for use.

On macOS and Linux it makes the bundled scripts executable and runs the
package's install.sh. On Windows it writes coder.bat, a wrapper that runs
coder.sh through bash (Git Bash or WSL).

Without a subcommand the installation runs against the package root, which
defaults to the directory containing this executable.`

	MsgVersionShort = "Print version information"
	MsgShimShort    = "Print the Windows wrapper for the package root without writing it"
	MsgConfigShort  = "Print the effective configuration as TOML"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot     = "Package root (default: directory of the executable)"
	MsgFlagConfig   = "Additional TOML configuration file"
	MsgFlagTimeout  = "Abort the setup script after this duration, e.g. 10m (default: no limit)"
	MsgFlagPlatform = "Install as if running on this platform (windows, macos, linux)"
	MsgFlagDryRun   = "Check preconditions and show planned actions without making changes"

	MsgVersionFormat = "asis-install version %s\n  commit: %s\n  built:  %s\n"
	MsgCLIError      = "❌ Error: %v"
)
