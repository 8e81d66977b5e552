// Copyright (c) 2025 Neomantra Corp
//
// Adapted from dbn-go's dbn_scanner.go, which reads a length-prefixed
// DBN record off a bufio.Reader. ITCH carries no length prefix in the
// stream itself — the size table in consts.go is the frame — so Next
// reads the one-byte type header first and looks up its body length.

package itch

import (
	"bufio"
	"io"
)

// DefaultBufferSize is the bufio.Reader size FrameReader wraps its
// source in, tuned for multi-gigabyte sequential reads.
const DefaultBufferSize = 64 * 1024

// FrameReader pulls (message type, body) frames off a byte stream. It is
// a lazy, finite, non-restartable sequence: call Next until it returns
// false, then check Err for anything other than io.EOF.
type FrameReader struct {
	src       *bufio.Reader
	lastType  byte
	lastBody  []byte
	err       error
	bytesRead uint64
}

// NewFrameReader wraps r in a FrameReader. r need not already be buffered.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{src: bufio.NewReaderSize(r, DefaultBufferSize)}
}

// Next reads the next frame. It returns false at end of stream or on a
// fatal error (a short read on a known message type); Err distinguishes
// the two. Unknown type bytes are skipped without reading a body — the
// following byte is interpreted as the next frame's type, which can
// desynchronize the stream if an unrecognized type byte happens to
// appear inside what would otherwise be a recognized message (spec's
// open question; not fixed here).
func (fr *FrameReader) Next() bool {
	for {
		msgType, err := fr.src.ReadByte()
		if err != nil {
			fr.err = err
			return false
		}
		fr.bytesRead++

		bodyLen, known := BodyLen(msgType)
		if !known {
			continue
		}

		body := make([]byte, bodyLen)
		n, err := io.ReadFull(fr.src, body)
		fr.bytesRead += uint64(n)
		if err != nil {
			fr.err = shortBodyError(msgType, bodyLen, n)
			return false
		}

		fr.lastType = msgType
		fr.lastBody = body
		fr.err = nil
		return true
	}
}

// Type returns the message type of the last frame Next returned true for.
func (fr *FrameReader) Type() byte { return fr.lastType }

// Body returns the body bytes of the last frame Next returned true for.
func (fr *FrameReader) Body() []byte { return fr.lastBody }

// Err returns the error that stopped the last Next call returning false.
// It is io.EOF on a clean end of stream.
func (fr *FrameReader) Err() error { return fr.err }

// BytesRead returns the total number of bytes consumed from the source
// so far, including type-header bytes skipped for unknown types. This
// is advisory progress information only; it does not affect decoding.
func (fr *FrameReader) BytesRead() uint64 { return fr.bytesRead }
