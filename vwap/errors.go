// Copyright (c) 2025 Neomantra Corp

package vwap

import "fmt"

var (
	ErrInvalidWindow      = fmt.Errorf("invalid time window")
	ErrInvalidGranularity = fmt.Errorf("invalid bucket granularity")
	ErrUnknownTicker      = fmt.Errorf("ticker not present in the stock directory")
)
