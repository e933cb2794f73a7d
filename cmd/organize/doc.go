// Package main hosts the organize CLI entrypoint.
//
// The Cobra command translates a single terminal invocation into one
// organizer pass: it resolves flags into a config, wires structured logging
// to stderr, runs the pass, and prints the summary report to stdout. The
// classification and move logic lives in the internal packages; this package
// stays limited to argument handling and presentation.
package main
