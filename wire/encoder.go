package wire

// Encoder handles low-level protobuf wire format encoding
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new wire format encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeTag encodes a field tag (field number + wire type) as a varint
func (e *Encoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) {
	e.EncodeVarint(uint64(MakeTag(fieldNumber, wireType)))
}

// EncodeField encodes a complete field frame: tag, length varint for
// length-delimited fields, then the raw value bytes. The value must
// already be wire-encoded for the given wire type.
func (e *Encoder) EncodeField(fieldNumber FieldNumber, wireType WireType, value []byte) {
	e.buf = append(AppendHeader(e.buf, fieldNumber, wireType, value), value...)
}

// AppendHeader appends a field header to dst: the tag varint, plus the
// varint length of value when the wire type is length-delimited. The
// value itself is not appended; callers concatenate it to build a full
// frame, typically as a replacement argument for ReplaceField.
func AppendHeader(dst []byte, fieldNumber FieldNumber, wireType WireType, value []byte) []byte {
	dst = AppendVarint(dst, uint64(MakeTag(fieldNumber, wireType)))
	if wireType == WireBytes {
		dst = AppendVarint(dst, uint64(len(value)))
	}
	return dst
}

// Header returns a standalone field header for the given field number,
// wire type, and value bytes.
func Header(fieldNumber FieldNumber, wireType WireType, value []byte) []byte {
	return AppendHeader(nil, fieldNumber, wireType, value)
}
