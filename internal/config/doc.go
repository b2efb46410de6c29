// Package config loads settings from defaults, an optional config file,
// SETGAME_* environment variables and command-line flags, in increasing order
// of precedence, and validates the result before anything is dealt.
package config
