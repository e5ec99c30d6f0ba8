// Package config loads syncinstall configuration.
//
// Layers are applied in order, later ones winning:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file, $XDG_CONFIG_HOME/syncinstall/config.toml or --config
//  3. SYNCINSTALL_<SECTION>_<KEY> environment variables
//  4. Command-line overrides
//
// The merged result is decoded into Config and validated.
package config
