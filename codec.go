package wire

import (
	"encoding/binary"
	"fmt"
)

// MaxStringLen bounds decoded length prefixes. A length above it almost
// certainly means the two ends have desynchronized, so it is rejected before
// any allocation happens.
const MaxStringLen = 1 << 30

// WritePadding writes the zero bytes that follow n payload bytes to reach
// the next 8-byte boundary.
func WritePadding(n uint64, s Sink) error {
	if pad := Pad(n); pad != 0 {
		return s.Write(zeros[:pad])
	}
	return nil
}

// ReadPadding consumes the padding that follows n payload bytes and fails
// with ErrPadding if any byte is non-zero.
func ReadPadding(n uint64, s Source) error {
	pad := Pad(n)
	if pad == 0 {
		return nil
	}
	var buf [8]byte
	if err := s.Read(buf[:pad]); err != nil {
		return err
	}
	for i, b := range buf[:pad] {
		if b != 0 {
			return fmt.Errorf("%w: 0x%02x at offset %d", ErrPadding, b, i)
		}
	}
	return nil
}

// WriteUint32 writes v as a fixed 8-byte field: 4 little-endian value bytes
// followed by 4 zero bytes.
func WriteUint32(v uint32, s Sink) error {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], v)
	return s.Write(buf[:])
}

// ReadUint32 reads an 8-byte field and returns the low 4 bytes as a
// little-endian uint32. Non-zero bytes in the high half fail with
// ErrPadding.
func ReadUint32(s Source) (uint32, error) {
	var buf [8]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	for i, b := range buf[4:] {
		if b != 0 {
			return 0, fmt.Errorf("%w: 0x%02x at offset %d", ErrPadding, b, i)
		}
	}
	return binary.LittleEndian.Uint32(buf[:4]), nil
}

// WriteUint64 writes v as 8 little-endian bytes. Already aligned, so no
// padding follows.
func WriteUint64(v uint64, s Sink) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return s.Write(buf[:])
}

// ReadUint64 reads 8 little-endian bytes.
func ReadUint64(s Source) (uint64, error) {
	var buf [8]byte
	if err := s.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// WriteBytesField writes a length-prefixed, padded byte string: a uint32
// length, the raw bytes, then padding to an 8-byte boundary.
func WriteBytesField(p []byte, s Sink) error {
	if err := WriteUint32(uint32(len(p)), s); err != nil {
		return err
	}
	if len(p) > 0 {
		if err := s.Write(p); err != nil {
			return err
		}
	}
	return WritePadding(uint64(len(p)), s)
}

// ReadBytesField reads a length-prefixed, padded byte string.
func ReadBytesField(s Source) ([]byte, error) {
	n, err := ReadUint32(s)
	if err != nil {
		return nil, err
	}
	if n > MaxStringLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrStringTooLong, n)
	}
	buf := make([]byte, n)
	if n > 0 {
		if err := s.Read(buf); err != nil {
			return nil, err
		}
	}
	if err := ReadPadding(uint64(n), s); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteString writes str as a length-prefixed, padded byte string.
func WriteString(str string, s Sink) error {
	if err := WriteUint32(uint32(len(str)), s); err != nil {
		return err
	}
	if len(str) > 0 {
		if sw, ok := s.(interface{ WriteString(string) error }); ok {
			if err := sw.WriteString(str); err != nil {
				return err
			}
		} else if err := s.Write([]byte(str)); err != nil {
			return err
		}
	}
	return WritePadding(uint64(len(str)), s)
}

// ReadString reads a length-prefixed, padded byte string.
func ReadString(s Source) (string, error) {
	buf, err := ReadBytesField(s)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteStringSet writes a uint32 member count followed by each member as a
// string, in the set's iteration order.
func WriteStringSet(ss *StringSet, s Sink) error {
	if err := WriteUint32(uint32(ss.Len()), s); err != nil {
		return err
	}
	for _, str := range ss.Strings() {
		if err := WriteString(str, s); err != nil {
			return err
		}
	}
	return nil
}

// ReadStringSet reads a counted sequence of strings into a set. Duplicate
// members on the wire collapse.
func ReadStringSet(s Source) (*StringSet, error) {
	n, err := ReadUint32(s)
	if err != nil {
		return nil, err
	}
	ss := NewStringSet()
	for i := uint32(0); i < n; i++ {
		str, err := ReadString(s)
		if err != nil {
			return nil, err
		}
		ss.Add(str)
	}
	return ss, nil
}

// fieldSize returns the on-wire size of a length-prefixed byte string of n
// payload bytes: the 8-byte length field plus the padded payload.
func fieldSize(n int) int64 { return 8 + int64(Roundup(n, 8)) }
