package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestExtractField(t *testing.T) {
	// field 1 = string "Me", field 2 = varint 42,
	// field 3 = fixed64, field 4 = fixed32
	message := []byte{
		0x0A, 0x02, 'M', 'e',
		0x10, 0x2A,
		0x19, 1, 2, 3, 4, 5, 6, 7, 8,
		0x25, 9, 10, 11, 12,
	}

	tests := []struct {
		name        string
		fieldNumber FieldNumber
		expected    []byte
	}{
		{"length delimited", 1, []byte("Me")},
		{"varint after string", 2, []byte{0x2A}},
		{"fixed64", 3, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"fixed32", 4, []byte{9, 10, 11, 12}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := ExtractField(message, test.fieldNumber)
			if err != nil {
				t.Fatalf("ExtractField(%d) failed: %v", test.fieldNumber, err)
			}
			if !bytes.Equal(value, test.expected) {
				t.Errorf("ExtractField(%d) = %x, want %x", test.fieldNumber, value, test.expected)
			}
		})
	}
}

func TestExtractField_Absent(t *testing.T) {
	message := []byte{0x0A, 0x02, 'M', 'e'}

	if _, err := ExtractField(message, 5); !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("missing field gave %v, want ErrFieldNotFound", err)
	}
	if _, err := ExtractField(nil, 1); !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("empty buffer gave %v, want ErrFieldNotFound", err)
	}
}

func TestExtractField_FirstOccurrenceWins(t *testing.T) {
	// field 1 twice: "Me" then "You"
	message := []byte{
		0x0A, 0x02, 'M', 'e',
		0x0A, 0x03, 'Y', 'o', 'u',
	}

	value, err := ExtractField(message, 1)
	if err != nil {
		t.Fatalf("ExtractField failed: %v", err)
	}
	if !bytes.Equal(value, []byte("Me")) {
		t.Errorf("ExtractField = %q, want first occurrence %q", value, "Me")
	}
}

func TestExtractField_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected error
	}{
		{"truncated tag", []byte{0x80}, ErrUnexpectedEOF},
		{"group wire type", []byte{0x0B, 0x00}, ErrInvalidWireType},
		{"length past end while skipping", []byte{0x0A, 0x10, 'M', 'e'}, ErrUnexpectedEOF},
		{"truncated varint value", []byte{0x08, 0x80}, ErrUnexpectedEOF},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Target field 9 so every frame has to be walked
			if _, err := ExtractField(test.data, 9); !errors.Is(err, test.expected) {
				t.Errorf("ExtractField gave %v, want %v", err, test.expected)
			}
		})
	}
}

func TestExtractField_OversizedFieldNumberNeverAliases(t *testing.T) {
	// A tag encoding field number 2^32+5 must not narrow to a match
	// on field 5; the frame is malformed and the scan stops
	message := append(AppendVarint(nil, ((1<<32)+5)<<3), 0x2A)

	if value, err := ExtractField(message, 5); !errors.Is(err, ErrInvalidFieldNumber) {
		t.Errorf("ExtractField = %x, %v; want ErrInvalidFieldNumber", value, err)
	}
}

func TestExtractField_ZeroCopy(t *testing.T) {
	message := []byte{0x0A, 0x02, 'M', 'e'}

	value, err := ExtractField(message, 1)
	if err != nil {
		t.Fatalf("ExtractField failed: %v", err)
	}

	message[2] = 'W'
	if value[0] != 'W' {
		t.Error("extracted value is a copy, want a view into the input buffer")
	}
}

func TestExtractFields(t *testing.T) {
	// field 1 = "Me", field 2 = varint 42, field 3 = varint 43
	message := []byte{
		0x0A, 0x02, 'M', 'e',
		0x10, 0x2A,
		0x18, 0x2B,
	}

	tests := []struct {
		name     string
		numbers  []FieldNumber
		expected []RawField
	}{
		{
			"all fields in encounter order",
			[]FieldNumber{1, 2, 3},
			[]RawField{
				{Number: 1, Value: []byte("Me")},
				{Number: 2, Value: []byte{0x2A}},
				{Number: 3, Value: []byte{0x2B}},
			},
		},
		{
			"subset skips the rest",
			[]FieldNumber{1, 3},
			[]RawField{
				{Number: 1, Value: []byte("Me")},
				{Number: 3, Value: []byte{0x2B}},
			},
		},
		{"no match", []FieldNumber{9}, nil},
		{"empty target set", nil, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fields := ExtractFields(message, test.numbers)
			if len(fields) != len(test.expected) {
				t.Fatalf("got %d fields, want %d", len(fields), len(test.expected))
			}
			for i, field := range fields {
				if field.Number != test.expected[i].Number || !bytes.Equal(field.Value, test.expected[i].Value) {
					t.Errorf("field %d = (%d, %x), want (%d, %x)",
						i, field.Number, field.Value, test.expected[i].Number, test.expected[i].Value)
				}
			}
		})
	}
}

func TestExtractFields_RepeatedNumbers(t *testing.T) {
	// field 2 appears twice (unpacked repeated scalar)
	message := []byte{
		0x10, 0x2A,
		0x0A, 0x02, 'M', 'e',
		0x10, 0x2B,
	}

	fields := ExtractFields(message, []FieldNumber{2})
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if !bytes.Equal(fields[0].Value, []byte{0x2A}) || !bytes.Equal(fields[1].Value, []byte{0x2B}) {
		t.Errorf("repeated values = %x, %x; want 2A, 2B", fields[0].Value, fields[1].Value)
	}
}

func TestExtractFields_MalformedStopsEarly(t *testing.T) {
	// field 1 = "Me", then a frame whose length runs past the buffer
	message := []byte{
		0x0A, 0x02, 'M', 'e',
		0x12, 0x10, 'x',
	}

	fields := ExtractFields(message, []FieldNumber{1, 2})
	if len(fields) != 1 {
		t.Fatalf("got %d fields, want partial result of 1", len(fields))
	}
	if fields[0].Number != 1 || !bytes.Equal(fields[0].Value, []byte("Me")) {
		t.Errorf("partial result = (%d, %q)", fields[0].Number, fields[0].Value)
	}
}
