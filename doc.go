// Package main provides the fsaudit command-line interface.
//
// fsaudit walks a file or directory tree, builds it in memory and prints a
// per-file report: a checksum of every file (the default) or its size.
// Symbolic links are skipped unless --follow-symlinks is given, in which case
// they are traversed as their targets with cycle detection.
//
// The binary supports multiple subcommands:
//   - digest: Print "<path>: <digest>" for every file
//   - sizes: Print "<name>: <size> bytes" for every file
//   - count: Count files and total size of a tree
//   - algorithms: List supported digest algorithms
package main
