// Package paths resolves the on-disk locations syncinstall reads from and
// writes to.
//
// Locations follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/syncinstall (config.toml)
//   - State:  $XDG_STATE_HOME/syncinstall (syncinstall.log)
//
// # Environment Variables
//
//   - SYNCINSTALL_CONFIG_DIR: overrides the config directory
//   - SYNCINSTALL_STATE_DIR: overrides the state directory
//
// A leading "~" in either override, or in any path handed to ExpandHome, is
// replaced with the user's home directory.
package paths
