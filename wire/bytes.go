package wire

// BytesDecoder handles length-delimited bytes decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder handles length-delimited bytes encoding operations
type BytesEncoder struct {
	encoder *Encoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// NewBytesEncoder creates a new bytes encoder
func NewBytesEncoder(e *Encoder) *BytesEncoder {
	return &BytesEncoder{encoder: e}
}

// DECODER METHODS

// DecodeRawBytes decodes a length-delimited value without copying.
// The returned slice shares the decoder's buffer.
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, error) {
	// First decode the length as a varint
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeVarint()
	if err != nil {
		return nil, err
	}

	d := bd.decoder
	if length > uint64(len(d.buf)-d.pos) {
		return nil, ErrUnexpectedEOF
	}

	data := d.buf[d.pos : d.pos+int(length)]
	d.pos += int(length)

	return data, nil
}

// DecodeBytes decodes a length-delimited value into a fresh copy that
// does not share the underlying buffer.
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	raw, err := bd.DecodeRawBytes()
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(raw))
	copy(data, raw)
	return data, nil
}

// SkipBytes skips over a length-delimited value
func (bd *BytesDecoder) SkipBytes() error {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeVarint()
	if err != nil {
		return err
	}

	d := bd.decoder
	if length > uint64(len(d.buf)-d.pos) {
		return ErrUnexpectedEOF
	}

	d.pos += int(length)
	return nil
}

// ENCODER METHODS

// EncodeBytes encodes a byte array as length-delimited
func (be *BytesEncoder) EncodeBytes(data []byte) {
	// First encode the length as a varint
	ve := NewVarintEncoder(be.encoder)
	ve.EncodeVarint(uint64(len(data)))

	// Then append the data
	be.encoder.buf = append(be.encoder.buf, data...)
}

// EncodeString encodes a string as length-delimited bytes
func (be *BytesEncoder) EncodeString(s string) {
	be.EncodeBytes([]byte(s))
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}
