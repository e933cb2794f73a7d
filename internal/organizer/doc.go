// Package organizer files a directory's top-level regular files into category
// subfolders in one synchronous pass.
//
// A pass enumerates the directory once, classifies each file by extension,
// creates the category folder lazily, and moves the file with collision-safe
// renaming. Fatal validation happens before any mutation; every per-file I/O
// failure produces exactly one diagnostic and leaves that file in place.
// Results accumulate in a Report the caller prints and discards.
package organizer
