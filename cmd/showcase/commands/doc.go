// Package commands defines the showcase CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)        Run the carousel in the terminal
//   - snapshot      Render one deterministic frame at a given time
//   - deck          Print the resolved deck as TOML
//   - impressions   List recently settled slides
//
// # Implementation
//
// The root command loads configuration, opens the log file, migrates and
// seeds the sqlite store, and builds the services before any subcommand runs.
// Everything it opens is closed when Execute returns.
package commands
