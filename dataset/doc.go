// SPDX-License-Identifier: MIT

// Package dataset reads and writes populations and results for lvsample.
//
// Populations are CSV files with one point per record and one feature per
// field. Lines starting with '#' are comments; a first record that does not
// parse as numbers is treated as a header and skipped. Files may be
// compressed; the codec is chosen from the extension:
//
//	.gz          gzip  (klauspost/compress/gzip)
//	.zst, .zstd  zstd  (klauspost/compress/zstd)
//	.lz4         lz4   (pierrec/lz4/v4 frame format)
//
// The path "-" means standard input for readers and standard output for
// writers, uncompressed.
package dataset
