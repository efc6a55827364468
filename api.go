// Package wiresplice manipulates Protocol Buffers messages at the wire
// level, without a schema and without decoding the surrounding message:
// locating top-level fields by number and splicing replacement bytes
// over a single field frame. It is meant for systems that forward or
// proxy encoded payloads and need to read or rewrite a handful of
// fields while leaving every other byte untouched.
package wiresplice

import (
	"github.com/basis-health/wiresplice/wire"
)

// ===== SCHEMA-LESS FIELD OPERATIONS =====

// Extract returns the value bytes of the first field with the given
// number, or false if the field is absent or the message is malformed.
// The returned slice borrows from data; it must not be retained across
// a Replace on the same buffer. Callers needing to distinguish
// corruption from absence use wire.ExtractField directly.
func Extract(data []byte, fieldNumber wire.FieldNumber) ([]byte, bool) {
	value, err := wire.ExtractField(data, fieldNumber)
	if err != nil {
		return nil, false
	}
	return value, true
}

// ExtractAll collects the values of every field whose number is in
// fieldNumbers, in encounter order, one entry per occurrence. Values
// borrow from data. A malformed frame ends the scan early with the
// fields collected so far.
func ExtractAll(data []byte, fieldNumbers ...wire.FieldNumber) []wire.RawField {
	return wire.ExtractFields(data, fieldNumbers)
}

// Replace splices replacement over the first frame with the given
// field number, rewriting *buf, and returns an owned copy of the
// displaced value bytes. replacement must be a complete frame (header
// plus value), e.g. built with Header. On a false return *buf is left
// unchanged.
func Replace(buf *[]byte, fieldNumber wire.FieldNumber, replacement []byte) ([]byte, bool) {
	out, old, err := wire.ReplaceField(*buf, fieldNumber, replacement)
	if err != nil {
		return nil, false
	}
	*buf = out
	return old, true
}

// Header builds a standalone field header: the tag varint for the
// field number and wire type, followed by the varint length of value
// when the wire type is length-delimited. Concatenating the header
// with the value yields a frame suitable for Replace.
func Header(fieldNumber wire.FieldNumber, wireType wire.WireType, value []byte) []byte {
	return wire.Header(fieldNumber, wireType, value)
}

// Fields enumerates every top-level field frame in data in order,
// pairing each field number and wire type with its raw value bytes.
// Values borrow from data.
func Fields(data []byte) ([]wire.RawValue, error) {
	var fields []wire.RawValue

	d := wire.NewDecoder(data)
	for {
		field, err := d.DecodeField()
		if err != nil {
			return nil, err
		}
		if field == nil {
			return fields, nil
		}
		fields = append(fields, *field)
	}
}
