package wire

// Decoder handles low-level protobuf wire format scanning. It keeps a
// cursor into an immutable buffer; value reads return sub-slices of
// that buffer rather than copies.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// Pos returns the current cursor offset.
func (d *Decoder) Pos() int {
	return d.pos
}

// More reports whether any bytes remain at the cursor.
func (d *Decoder) More() bool {
	return d.pos < len(d.buf)
}

// ReadTag decodes the leading tag varint at the cursor and splits it
// into field number and wire type. An unsupported wire type or a field
// number outside [1, MaxFieldNumber] fails here so a scan never
// advances past a frame it cannot measure, and an oversized encoded
// number can never alias a small one through narrowing.
func (d *Decoder) ReadTag() (FieldNumber, WireType, error) {
	tag, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, err
	}

	if number := tag >> 3; number < 1 || number > uint64(MaxFieldNumber) {
		return 0, 0, ErrInvalidFieldNumber
	}

	fieldNumber, wireType := ParseTag(Tag(tag))
	if !wireType.Valid() {
		return 0, 0, ErrInvalidWireType
	}
	return fieldNumber, wireType, nil
}

// ReadValue returns the value bytes for a field of the given wire type
// and leaves the cursor on the next frame. The returned slice shares
// the decoder's buffer.
func (d *Decoder) ReadValue(wireType WireType) ([]byte, error) {
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		return vd.RawVarint()
	case WireFixed64:
		fd := NewFixedDecoder(d)
		return fd.RawFixed64()
	case WireBytes:
		bd := NewBytesDecoder(d)
		return bd.DecodeRawBytes()
	case WireFixed32:
		fd := NewFixedDecoder(d)
		return fd.RawFixed32()
	default:
		return nil, ErrInvalidWireType
	}
}

// SkipField advances the cursor past a field value of the given wire
// type without returning it.
func (d *Decoder) SkipField(wireType WireType) error {
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		return vd.SkipVarint()
	case WireFixed64:
		if d.pos+8 > len(d.buf) {
			return ErrUnexpectedEOF
		}
		d.pos += 8
		return nil
	case WireBytes:
		bd := NewBytesDecoder(d)
		return bd.SkipBytes()
	case WireFixed32:
		if d.pos+4 > len(d.buf) {
			return ErrUnexpectedEOF
		}
		d.pos += 4
		return nil
	default:
		return ErrInvalidWireType
	}
}

// DecodeField decodes a single field frame from the current position.
// It returns nil at end of buffer.
func (d *Decoder) DecodeField() (*RawValue, error) {
	if d.pos >= len(d.buf) {
		return nil, nil
	}

	fieldNumber, wireType, err := d.ReadTag()
	if err != nil {
		return nil, err
	}

	data, err := d.ReadValue(wireType)
	if err != nil {
		return nil, err
	}

	return &RawValue{
		FieldNumber: fieldNumber,
		WireType:    wireType,
		RawData:     data,
	}, nil
}
