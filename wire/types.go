package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // fixed64, sfixed64, double
	WireBytes   WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // fixed32, sfixed32, float
)

// Valid reports whether wt is one of the four supported wire types.
// Wire types 3 and 4 (deprecated group start/end) and anything above 5
// are rejected; scanning cannot safely continue past them.
func (wt WireType) Valid() bool {
	switch wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	}
	return false
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

// MaxFieldNumber is the largest field number the protobuf encoding
// allows; a tag varint claiming anything above it is malformed.
const MaxFieldNumber FieldNumber = 1<<29 - 1

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// RawField is one extracted field: its number paired with its encoded
// value bytes. Value borrows from the scanned buffer and must not be
// retained across a replacement on that buffer.
type RawField struct {
	Number FieldNumber
	Value  []byte
}

// RawValue represents a raw (undecoded) protobuf field frame
type RawValue struct {
	FieldNumber FieldNumber
	WireType    WireType
	RawData     []byte // value bytes, borrowed from the scanned buffer
}
