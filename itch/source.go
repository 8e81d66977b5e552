// Copyright (c) 2025 Neomantra Corp
//
// Adapted from dbn-go's compressed_io.go, which picks a zstd reader by
// filename suffix. ITCH feeds carry no such convention, so this instead
// sniffs the gzip magic header directly off the stream, per spec.

package itch

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

///////////////////////////////////////////////////////////////////////////////

var gzipMagic = [2]byte{0x1f, 0x8b}

// OpenSource opens filename and returns a reader over its decoded byte
// stream, transparently gzip-decompressing when the stream's first two
// bytes carry the gzip magic header. The returned Closer must be closed
// by the caller; closing it also closes the underlying file.
func OpenSource(filename string) (io.Reader, io.Closer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}

	buffered := bufio.NewReader(file)
	peek, err := buffered.Peek(2)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, nil, err
	}

	if len(peek) == 2 && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1] {
		gzReader, err := gzip.NewReader(buffered)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		return gzReader, multiCloser{gzReader, file}, nil
	}
	return buffered, file, nil
}

// multiCloser closes its closers in order, returning the first error.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
