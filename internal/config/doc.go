// Package config normalizes and validates the organizer's run settings.
//
// The Config type centralizes the knobs the CLI collects from flags: logging
// level and format plus the dry-run switch. There is no configuration file
// and no environment lookup; the extension table lives in internal/category
// as a fixed constant of the program.
//
// Always obtain settings through Default and Validate so downstream code
// receives canonical lowercase values and clear validation errors.
package config
