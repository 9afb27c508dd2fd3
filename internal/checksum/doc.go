// Package checksum fingerprints discovered playbook and inventory files.
//
// Two checksums are available:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after line-ending and trailing-whitespace
//     normalization, so a file checked out with CRLF endings on one machine
//     and LF on another keeps the same fingerprint
//
// # Normalization Strategy
//
//  1. Convert CRLF and lone CR line endings to LF
//  2. Trim trailing spaces and tabs from every line
//  3. Drop trailing blank lines
//
// Indentation is significant in YAML and is never touched.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
