// Package cli implements the hoops-pbp command line interface: flag
// parsing, pipeline wiring, and text/JSON output of normalized games.
package cli
