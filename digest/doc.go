// Package digest provides the checksum algorithms used by fsaudit reports.
//
// Algorithms are held in a Registry, a closed mapping from a lower-case
// algorithm name to a hash.Hash constructor. Default is populated at process
// start with:
//   - md5, sha1, sha256, sha384, sha512 from the standard library
//   - sha3-256, sha3-512 from golang.org/x/crypto/sha3
//
// Names are matched case-insensitively, so "MD5", "Sha1" and "sha256" all
// resolve. Unknown names fail with ErrUnknownAlgorithm and can be checked
// with errors.Is.
package digest
