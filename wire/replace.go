package wire

// ReplaceField scans data for the first field frame with the given
// field number and splices replacement in over the whole frame (header
// through value end). It returns the rewritten buffer and an owned copy
// of the displaced value bytes; the copy is taken before the splice so
// it survives the rewrite.
//
// replacement must be a complete, self-describing frame (header plus
// value), typically built with EncodeField or AppendHeader. No semantic
// validation is performed on it: a mismatched tag or wire type simply
// appears as such to the next reader. All bytes outside the matched
// frame are preserved, including other frames with the same number.
func ReplaceField(data []byte, fieldNumber FieldNumber, replacement []byte) ([]byte, []byte, error) {
	d := NewDecoder(data)
	for d.More() {
		frameStart := d.Pos()

		number, wireType, err := d.ReadTag()
		if err != nil {
			return nil, nil, err
		}

		if number != fieldNumber {
			if err := d.SkipField(wireType); err != nil {
				return nil, nil, err
			}
			continue
		}

		value, err := d.ReadValue(wireType)
		if err != nil {
			return nil, nil, err
		}
		frameEnd := d.Pos()

		old := make([]byte, len(value))
		copy(old, value)

		out := make([]byte, 0, frameStart+len(replacement)+len(data)-frameEnd)
		out = append(out, data[:frameStart]...)
		out = append(out, replacement...)
		out = append(out, data[frameEnd:]...)

		return out, old, nil
	}
	return nil, nil, ErrFieldNotFound
}
