// Package pm models the JavaScript package managers n can drive.
// It detects a manager from lock files in the current directory and its
// ancestors, and expands shortcut tokens into full manager subcommands.
package pm
