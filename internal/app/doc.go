// Package app wires application dependencies for calckit and calcweb.
//
// LoadConfig reads config.yaml through viper, NewLogger builds the slog
// logger, and NewWire builds the history store and services from Config,
// exposing them via the Wire struct for commands and the server to use.
package app
