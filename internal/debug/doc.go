// Package debug provides optional file-based debug logging.
//
// When the CLAP_DEBUG environment variable is set to a file path, structured
// debug lines are appended to that file. Otherwise, logging is a no-op.
package debug
