// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec is a stream compression format.
type Codec uint8

const (
	// CodecNone passes bytes through unchanged.
	CodecNone Codec = iota
	// CodecGzip is RFC 1952 gzip.
	CodecGzip
	// CodecZstd is a zstd frame stream.
	CodecZstd
	// CodecLZ4 is an LZ4 frame stream.
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecGzip:
		return "gzip"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Codec(%d)", uint8(c))
	}
}

// CodecFromPath picks the codec from the file extension (case-insensitive).
func CodecFromPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// NewReader wraps r with the decompressor for c. Closing the result releases
// the decompressor only; r stays open.
func NewReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("NewReader(%s): %w", c, err)
		}
		return zr, nil
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("NewReader(%s): %w", c, err)
		}
		return dec.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("NewReader: unknown %s", c)
	}
}

// NewWriter wraps w with the compressor for c. Close flushes the compressed
// stream but does not close w.
func NewWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("NewWriter(%s): %w", c, err)
		}
		return enc, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("NewWriter: unknown %s", c)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
