// Package stream implements cursor-based packing and unpacking of the byte
// streams exchanged with a Bluetooth controller. Multi-byte integers default
// to little-endian order, matching HCI; big-endian accessors carry a BE
// suffix. Buffers are plain byte slices, so no alignment is assumed.
package stream

import "encoding/binary"

// Buffer is a growable byte buffer for encoding controller-bound records.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer pre-allocated with the given capacity.
func NewBuffer(cap int) *Buffer {
	return &Buffer{data: make([]byte, 0, cap)}
}

// Bytes returns the accumulated encoded bytes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// grow ensures room for n additional bytes, returning the write offset.
func (b *Buffer) grow(n int) int {
	off := len(b.data)
	need := off + n
	if need <= cap(b.data) {
		b.data = b.data[:need]
		return off
	}
	newCap := cap(b.data) * 2
	if newCap < need {
		newCap = need
	}
	tmp := make([]byte, need, newCap)
	copy(tmp, b.data)
	b.data = tmp
	return off
}

// WriteUint8 appends a single byte.
func (b *Buffer) WriteUint8(v uint8) {
	off := b.grow(1)
	b.data[off] = v
}

// WriteInt8 appends a signed byte in two's complement form.
func (b *Buffer) WriteInt8(v int8) {
	b.WriteUint8(uint8(v))
}

// WriteUint16 appends a 16-bit unsigned integer in little-endian order.
func (b *Buffer) WriteUint16(v uint16) {
	off := b.grow(2)
	binary.LittleEndian.PutUint16(b.data[off:], v)
}

// WriteUint24 appends the low 24 bits of v in little-endian order.
func (b *Buffer) WriteUint24(v uint32) {
	off := b.grow(3)
	b.data[off] = byte(v)
	b.data[off+1] = byte(v >> 8)
	b.data[off+2] = byte(v >> 16)
}

// WriteUint32 appends a 32-bit unsigned integer in little-endian order.
func (b *Buffer) WriteUint32(v uint32) {
	off := b.grow(4)
	binary.LittleEndian.PutUint32(b.data[off:], v)
}

// WriteUint64 appends a 64-bit unsigned integer in little-endian order.
func (b *Buffer) WriteUint64(v uint64) {
	off := b.grow(8)
	binary.LittleEndian.PutUint64(b.data[off:], v)
}

// WriteUint16BE appends a 16-bit unsigned integer in big-endian order.
func (b *Buffer) WriteUint16BE(v uint16) {
	off := b.grow(2)
	binary.BigEndian.PutUint16(b.data[off:], v)
}

// WriteUint24BE appends the low 24 bits of v in big-endian order.
func (b *Buffer) WriteUint24BE(v uint32) {
	off := b.grow(3)
	b.data[off] = byte(v >> 16)
	b.data[off+1] = byte(v >> 8)
	b.data[off+2] = byte(v)
}

// WriteUint32BE appends a 32-bit unsigned integer in big-endian order.
func (b *Buffer) WriteUint32BE(v uint32) {
	off := b.grow(4)
	binary.BigEndian.PutUint32(b.data[off:], v)
}

// WriteUint64BE appends a 64-bit unsigned integer in big-endian order.
func (b *Buffer) WriteUint64BE(v uint64) {
	off := b.grow(8)
	binary.BigEndian.PutUint64(b.data[off:], v)
}

// WriteBytes appends p verbatim. Records framed by this package are
// positional, so no length prefix is written.
func (b *Buffer) WriteBytes(p []byte) {
	off := b.grow(len(p))
	copy(b.data[off:], p)
}

// WriteBytesReversed appends p in reversed byte order. Addresses travel
// least-significant-byte first on the wire while their canonical form keeps
// the most significant byte at index 0.
func (b *Buffer) WriteBytesReversed(p []byte) {
	off := b.grow(len(p))
	for i, v := range p {
		b.data[off+len(p)-1-i] = v
	}
}
