package wire

import (
	"encoding/binary"
	"math"
)

// FixedDecoder handles fixed-width decoding operations
type FixedDecoder struct {
	decoder *Decoder
}

// FixedEncoder handles fixed-width encoding operations
type FixedEncoder struct {
	encoder *Encoder
}

// NewFixedDecoder creates a new fixed decoder
func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

// NewFixedEncoder creates a new fixed encoder
func NewFixedEncoder(e *Encoder) *FixedEncoder {
	return &FixedEncoder{encoder: e}
}

// DECODER METHODS

// RawFixed32 returns the 4 value bytes of a fixed32 field without
// interpreting them. The returned slice shares the decoder's buffer.
func (fd *FixedDecoder) RawFixed32() ([]byte, error) {
	d := fd.decoder
	if d.pos+4 > len(d.buf) {
		return nil, ErrUnexpectedEOF
	}

	data := d.buf[d.pos : d.pos+4]
	d.pos += 4
	return data, nil
}

// RawFixed64 returns the 8 value bytes of a fixed64 field without
// interpreting them. The returned slice shares the decoder's buffer.
func (fd *FixedDecoder) RawFixed64() ([]byte, error) {
	d := fd.decoder
	if d.pos+8 > len(d.buf) {
		return nil, ErrUnexpectedEOF
	}

	data := d.buf[d.pos : d.pos+8]
	d.pos += 8
	return data, nil
}

// DecodeFixed32 decodes a 32-bit fixed-width value
func (fd *FixedDecoder) DecodeFixed32() (uint32, error) {
	data, err := fd.RawFixed32()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// DecodeFixed64 decodes a 64-bit fixed-width value
func (fd *FixedDecoder) DecodeFixed64() (uint64, error) {
	data, err := fd.RawFixed64()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// DecodeFloat32 decodes a 32-bit float from fixed32 data
func (fd *FixedDecoder) DecodeFloat32() (float32, error) {
	v, err := fd.DecodeFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeFloat64 decodes a 64-bit float from fixed64 data
func (fd *FixedDecoder) DecodeFloat64() (float64, error) {
	v, err := fd.DecodeFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ENCODER METHODS

// EncodeFixed32 encodes a 32-bit fixed-width value
func (fe *FixedEncoder) EncodeFixed32(v uint32) {
	fe.encoder.buf = binary.LittleEndian.AppendUint32(fe.encoder.buf, v)
}

// EncodeFixed64 encodes a 64-bit fixed-width value
func (fe *FixedEncoder) EncodeFixed64(v uint64) {
	fe.encoder.buf = binary.LittleEndian.AppendUint64(fe.encoder.buf, v)
}

// EncodeFloat32 encodes a 32-bit float as fixed32
func (fe *FixedEncoder) EncodeFloat32(v float32) {
	fe.EncodeFixed32(math.Float32bits(v))
}

// EncodeFloat64 encodes a 64-bit float as fixed64
func (fe *FixedEncoder) EncodeFloat64(v float64) {
	fe.EncodeFixed64(math.Float64bits(v))
}
