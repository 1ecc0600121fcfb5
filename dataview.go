package bigint

import (
	"encoding/binary"
	"fmt"
)

// The data view bridge reads and writes fixed-width 64-bit values at a
// byte offset of a caller-provided view. Stored values wrap modulo
// 2**64; a 64-bit payload spans three digits of a magnitude.

func viewBounds(view []byte, offset int) error {
	if offset < 0 || offset+8 > len(view) {
		return fmt.Errorf("%w: offset %d outside view of %d bytes", ErrRange, offset, len(view))
	}
	return nil
}

// wrapUint64 returns the value of x modulo 2**64 as an unsigned
// 64-bit integer.
func (x *Int) wrapUint64() uint64 {
	u := x.abs.low64()
	if x.neg {
		u = -u
	}
	return u
}

// PutUint64 stores x modulo 2**64 at offset in view.
func PutUint64(view []byte, offset int, x *Int, littleEndian bool) error {
	if err := viewBounds(view, offset); err != nil {
		return err
	}
	u := x.wrapUint64()
	if littleEndian {
		binary.LittleEndian.PutUint64(view[offset:], u)
	} else {
		binary.BigEndian.PutUint64(view[offset:], u)
	}
	return nil
}

// PutInt64 stores x modulo 2**64 at offset in view. The byte encoding
// of a two's-complement value is the same as its unsigned one.
func PutInt64(view []byte, offset int, x *Int, littleEndian bool) error {
	return PutUint64(view, offset, x, littleEndian)
}

// GetUint64 loads the unsigned 64-bit value at offset in view.
func GetUint64(view []byte, offset int, littleEndian bool) (*Int, error) {
	if err := viewBounds(view, offset); err != nil {
		return nil, err
	}
	var u uint64
	if littleEndian {
		u = binary.LittleEndian.Uint64(view[offset:])
	} else {
		u = binary.BigEndian.Uint64(view[offset:])
	}
	return NewUint64(u), nil
}

// GetInt64 loads the signed 64-bit value at offset in view.
func GetInt64(view []byte, offset int, littleEndian bool) (*Int, error) {
	x, err := GetUint64(view, offset, littleEndian)
	if err != nil {
		return nil, err
	}
	return New(int64(x.abs.low64())), nil
}
