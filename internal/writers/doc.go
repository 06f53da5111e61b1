// Package writers holds output-side helpers shared by the CLI.
package writers
