package wire

// Decoder composes primitive reads against a Source, mirroring the order an
// Encoder used. Like Encoder it latches the first error; after an error all
// operations are no-ops and value-returning methods yield zero values.
type Decoder struct {
	s     Source
	count int64 // total bytes decoded
	err   error // first error encountered
}

// NewDecoder creates a Decoder reading from s.
func NewDecoder(s Source) *Decoder {
	return &Decoder{s: s}
}

// Count returns the total bytes decoded so far.
func (d *Decoder) Count() int64 { return d.count }

// Err returns the first error encountered, if any.
func (d *Decoder) Err() error { return d.err }

// Result returns the total bytes decoded and the final error state.
func (d *Decoder) Result() (int64, error) {
	return d.count, d.err
}

// Uint32 decodes a padded 8-byte field into dst. dst is left unchanged on
// error.
func (d *Decoder) Uint32(dst *uint32) {
	if d.err != nil {
		return
	}
	v, err := ReadUint32(d.s)
	if err != nil {
		d.err = err
		return
	}
	*dst = v
	d.count += 8
}

// Uint64 decodes 8 little-endian bytes into dst.
func (d *Decoder) Uint64(dst *uint64) {
	if d.err != nil {
		return
	}
	v, err := ReadUint64(d.s)
	if err != nil {
		d.err = err
		return
	}
	*dst = v
	d.count += 8
}

// String decodes a length-prefixed, padded byte string.
func (d *Decoder) String() string {
	if d.err != nil {
		return ""
	}
	str, err := ReadString(d.s)
	if err != nil {
		d.err = err
		return ""
	}
	d.count += fieldSize(len(str))
	return str
}

// Bytes decodes a length-prefixed, padded byte string as a fresh slice.
func (d *Decoder) Bytes() []byte {
	if d.err != nil {
		return nil
	}
	buf, err := ReadBytesField(d.s)
	if err != nil {
		d.err = err
		return nil
	}
	d.count += fieldSize(len(buf))
	return buf
}

// StringSet decodes a counted sequence of strings.
func (d *Decoder) StringSet() *StringSet {
	if d.err != nil {
		return nil
	}
	ss, err := ReadStringSet(d.s)
	if err != nil {
		d.err = err
		return nil
	}
	d.count += 8
	for _, str := range ss.Strings() {
		d.count += fieldSize(len(str))
	}
	return ss
}

// Padding consumes the padding that follows n payload bytes.
func (d *Decoder) Padding(n uint64) {
	if d.err != nil {
		return
	}
	if err := ReadPadding(n, d.s); err != nil {
		d.err = err
		return
	}
	d.count += int64(Pad(n))
}
