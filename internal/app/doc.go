// Package app wires application dependencies for the CLI.
//
// It builds the concrete home-dir provider, keystore and identity service
// from Config, exposing them via the App struct for commands to use.
package app
