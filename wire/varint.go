package wire

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles varint encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// DECODER METHODS

// DecodeVarint decodes a varint from the current position
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	if d.pos >= len(d.buf) {
		return 0, ErrUnexpectedEOF
	}

	var result uint64
	var shift uint

	for i := 0; i < 10; i++ { // Max 10 bytes for 64-bit varint
		if d.pos >= len(d.buf) {
			return 0, ErrUnexpectedEOF
		}

		b := d.buf[d.pos]
		d.pos++

		// The tenth byte holds only bit 63; any higher payload bit
		// shifts past 64 bits
		if i == 9 && b&0x7F > 1 {
			return 0, ErrVarintOverflow
		}

		// Add the lower 7 bits to result
		result |= uint64(b&0x7F) << shift

		// If MSB is not set, we're done
		if (b & 0x80) == 0 {
			return result, nil
		}

		shift += 7
	}

	return 0, ErrVarintTooLong
}

// RawVarint returns the byte span of the varint at the cursor without
// interpreting it. The returned slice shares the decoder's buffer.
func (vd *VarintDecoder) RawVarint() ([]byte, error) {
	d := vd.decoder
	start := d.pos
	if _, err := vd.DecodeVarint(); err != nil {
		return nil, err
	}
	return d.buf[start:d.pos], nil
}

// SkipVarint skips over a varint without decoding it. The same bounds
// apply as for decoding, so a scan cannot step over a varint it could
// not have read.
func (vd *VarintDecoder) SkipVarint() error {
	d := vd.decoder
	for i := 0; i < 10; i++ {
		if d.pos >= len(d.buf) {
			return ErrUnexpectedEOF
		}

		b := d.buf[d.pos]
		d.pos++

		if i == 9 && b&0x7F > 1 {
			return ErrVarintOverflow
		}

		if (b & 0x80) == 0 {
			return nil
		}
	}
	return ErrVarintTooLong
}

// ENCODER METHODS

// EncodeVarint encodes a uint64 as varint
func (ve *VarintEncoder) EncodeVarint(v uint64) {
	ve.encoder.buf = AppendVarint(ve.encoder.buf, v)
}

// UTILITY FUNCTIONS

// AppendVarint appends the minimal varint encoding of v to dst. Zero
// encodes as a single 0x00 byte.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// EncodeVarint returns the minimal varint encoding of v.
func EncodeVarint(v uint64) []byte {
	return AppendVarint(make([]byte, 0, VarintSize(v)), v)
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// Convenience methods for direct access (keeps call sites short)

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}

// EncodeVarint - convenience method for main encoder
func (e *Encoder) EncodeVarint(v uint64) {
	ve := NewVarintEncoder(e)
	ve.EncodeVarint(v)
}
