// Copyright (c) 2025 Neomantra Corp

package itch

import "fmt"

var (
	ErrShortRead     = fmt.Errorf("short read on a known message body")
	ErrMalformedBody = fmt.Errorf("malformed message body")
)

func shortBodyError(msgType byte, want int, got int) error {
	return fmt.Errorf("%w: type %q wanted %d bytes, got %d", ErrShortRead, msgType, want, got)
}
