package stream

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrShortBuffer is returned when the Reader has fewer bytes than required.
var ErrShortBuffer = errors.New("stream: insufficient data in buffer")

// Reader provides sequential decoding of a controller-supplied byte stream.
type Reader struct {
	data   []byte
	offset int
}

// NewReader wraps an existing byte slice for decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// need checks that at least n bytes remain and returns the current offset.
func (r *Reader) need(n int) (int, error) {
	if r.offset+n > len(r.data) {
		return 0, ErrShortBuffer
	}
	off := r.offset
	r.offset += n
	return off, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	off, err := r.need(1)
	if err != nil {
		return 0, err
	}
	return r.data[off], nil
}

// ReadInt8 reads a signed byte in two's complement form.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a 16-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint16() (uint16, error) {
	off, err := r.need(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[off:]), nil
}

// ReadUint24 reads a 24-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint24() (uint32, error) {
	off, err := r.need(3)
	if err != nil {
		return 0, err
	}
	return uint32(r.data[off]) | uint32(r.data[off+1])<<8 | uint32(r.data[off+2])<<16, nil
}

// ReadUint32 reads a 32-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint32() (uint32, error) {
	off, err := r.need(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[off:]), nil
}

// ReadUint64 reads a 64-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint64() (uint64, error) {
	off, err := r.need(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.data[off:]), nil
}

// ReadUint16BE reads a 16-bit unsigned integer in big-endian order.
func (r *Reader) ReadUint16BE() (uint16, error) {
	off, err := r.need(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r.data[off:]), nil
}

// ReadUint24BE reads a 24-bit unsigned integer in big-endian order.
func (r *Reader) ReadUint24BE() (uint32, error) {
	off, err := r.need(3)
	if err != nil {
		return 0, err
	}
	return uint32(r.data[off])<<16 | uint32(r.data[off+1])<<8 | uint32(r.data[off+2]), nil
}

// ReadUint32BE reads a 32-bit unsigned integer in big-endian order.
func (r *Reader) ReadUint32BE() (uint32, error) {
	off, err := r.need(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(r.data[off:]), nil
}

// ReadUint64BE reads a 64-bit unsigned integer in big-endian order.
func (r *Reader) ReadUint64BE() (uint64, error) {
	off, err := r.need(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(r.data[off:]), nil
}

// ReadBytes reads the next n bytes. The returned slice aliases the Reader's
// underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	off, err := r.need(n)
	if err != nil {
		return nil, err
	}
	return r.data[off : off+n], nil
}

// ReadBytesReversed reads the next n bytes into a fresh slice in reversed
// byte order, recovering canonical form from LSB-first wire order.
func (r *Reader) ReadBytesReversed(n int) ([]byte, error) {
	off, err := r.need(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = r.data[off+n-1-i]
	}
	return out, nil
}
