// Package config carries the flags shared by every subcommand.
package config

// RootConfig holds global CLI options passed down from the root command.
type RootConfig struct {
	ConfigPath string
	DBPath     string
}
