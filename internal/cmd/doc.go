// Package cmd provides the command-line interface implementation for fsaudit.
//
// It uses the Cobra library for command structure; the binary wraps the root
// command with Fang for styled help and errors.
//
// Commands:
//   - root: build a tree and print the digest report (same as digest)
//   - digest: checksum of every file, "<path>: <digest>"
//   - sizes: size of every file, "<name>: <size> bytes"
//   - count: number of files and total size of a tree
//   - algorithms: list the registered digest algorithms
//
// Every command shares the persistent flags --path, --algorithm,
// --follow-symlinks, --format, --template, --config and --verbose. Values
// from a --config YAML file apply only where the flag was not given.
package cmd
