// Package commands implements the chaincraft-id command line interface.
package commands
