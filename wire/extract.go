package wire

// ExtractField scans data for the first field frame with the given
// field number and returns its value bytes without copying. The result
// spans the value only: the varint's own bytes, the 4 or 8 bytes of a
// fixed-width field, or the payload after the length prefix of a
// length-delimited field. A length-delimited result may itself be an
// encoded message; callers recurse by scanning it again.
//
// ErrFieldNotFound is returned when the scan reaches end of buffer
// without a match; structural errors from a malformed frame are
// returned as encountered.
func ExtractField(data []byte, fieldNumber FieldNumber) ([]byte, error) {
	d := NewDecoder(data)
	for d.More() {
		number, wireType, err := d.ReadTag()
		if err != nil {
			return nil, err
		}

		if number == fieldNumber {
			return d.ReadValue(wireType)
		}

		if err := d.SkipField(wireType); err != nil {
			return nil, err
		}
	}
	return nil, ErrFieldNotFound
}

// ExtractFields scans data once and collects the value bytes of every
// frame whose field number is in fieldNumbers, in encounter order.
// Repeated field numbers yield one entry per occurrence, so unpacked
// repeated scalars come back as multiple entries and packed ones as a
// single length-delimited payload. Values borrow from data.
//
// A malformed frame stops the scan; the fields collected up to that
// point are returned.
func ExtractFields(data []byte, fieldNumbers []FieldNumber) []RawField {
	var fields []RawField

	d := NewDecoder(data)
	for d.More() {
		number, wireType, err := d.ReadTag()
		if err != nil {
			break
		}

		if !containsNumber(fieldNumbers, number) {
			if err := d.SkipField(wireType); err != nil {
				break
			}
			continue
		}

		value, err := d.ReadValue(wireType)
		if err != nil {
			break
		}
		fields = append(fields, RawField{Number: number, Value: value})
	}

	return fields
}

// containsNumber reports whether n is in the target set. Target sets
// are tiny in practice, so a linear probe beats building a map.
func containsNumber(numbers []FieldNumber, n FieldNumber) bool {
	for _, number := range numbers {
		if number == n {
			return true
		}
	}
	return false
}
