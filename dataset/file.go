// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"io"
	"os"
)

// StdStream is the path that selects stdin / stdout.
const StdStream = "-"

// Open opens path for reading through the codec chosen by its extension.
// Closing the result closes the decompressor and the file.
func Open(path string) (io.ReadCloser, error) {
	if path == StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f, CodecFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &stackCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

// Create creates (or truncates) path for writing through the codec chosen by
// its extension. Close must be called to flush the compressed stream.
func Create(path string) (io.WriteCloser, error) {
	if path == StdStream {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWriter(f, CodecFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &stackCloser{Writer: w, closers: []io.Closer{w, f}}, nil
}

// stackCloser closes its closers in order and joins their errors.
type stackCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (s *stackCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
