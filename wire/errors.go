package wire

import (
	"errors"
)

// Wire format scanning errors
var (
	ErrUnexpectedEOF      = errors.New("unexpected EOF in wire data")
	ErrVarintOverflow     = errors.New("varint overflow")
	ErrVarintTooLong      = errors.New("varint too long")
	ErrInvalidWireType    = errors.New("invalid wire type")
	ErrInvalidFieldNumber = errors.New("invalid field number")
	ErrFieldNotFound      = errors.New("field not found")
)
