// Package category owns the static extension-to-category table.
//
// The table is embedded in the binary as TOML and parsed once at startup; it
// is a documented constant of the program, not a configuration surface.
// Classify performs the single lookup-with-default every processed file needs.
package category
