// Package commands defines the setgame CLI.
//
// Commands
//
//   - (root)   Shuffle a deck, deal a board, print it and every set on it
//   - find     List the sets among cards given on the command line
//   - catalog  Print all 81 cards with their keys
//
// # Implementation
//
// The root command loads configuration (flags, SETGAME_* environment, an
// optional config file) and sets up logging before any subcommand runs, so
// handlers share one app context.
package commands
