// Package commands defines the calckit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list             List calculators, optionally for one category
//   - describe <slug>  Show a calculator's fields, defaults and options
//   - run <slug>       Compute with --set name=value inputs
//   - history          Show saved computations, newest first
//   - history clear    Delete all saved computations
//   - history export   Write history to a JSON file
//   - history import   Merge a JSON export into history
//
// # Implementation
//
// The root command loads config.yaml from --home (default ~/.calckit) and
// builds a dependency graph (history store, services, or an HTTP client when
// --remote is set) before any subcommand runs, so handlers can use a shared
// app context.
package commands
