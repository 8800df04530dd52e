package hci

import (
	"encoding/binary"
	"fmt"

	"github.com/corebt/lescan/stream"
)

// baseUUID is the Bluetooth Base UUID 00000000-0000-1000-8000-00805F9B34FB.
// 16 and 32-bit UUIDs occupy bytes 0..3 of the canonical expansion over it.
var baseUUID = [16]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0x80, 0x5F, 0x9B, 0x34, 0xFB,
}

// A UUID is a controller-facing UUID in one of three widths: 16, 32 or
// 128-bit. It stores the canonical 128-bit big-endian expansion together
// with the declared width. The zero value is the empty UUID, which is
// distinct from the valid 16-bit UUID 0x0000.
type UUID struct {
	width uint8
	b     [16]byte
}

// UUID16 returns the 16-bit UUID v expanded over the base UUID.
func UUID16(v uint16) UUID {
	u := UUID{width: 2, b: baseUUID}
	binary.BigEndian.PutUint16(u.b[2:4], v)
	return u
}

// UUID32 returns the 32-bit UUID v expanded over the base UUID.
func UUID32(v uint32) UUID {
	u := UUID{width: 4, b: baseUUID}
	binary.BigEndian.PutUint32(u.b[0:4], v)
	return u
}

// UUID128 returns the 128-bit UUID with the given canonical big-endian bytes.
func UUID128(b [16]byte) UUID {
	return UUID{width: 16, b: b}
}

// IsEmpty reports whether u is the empty UUID.
func (u UUID) IsEmpty() bool {
	return u.width == 0
}

// Width returns the declared width of u in bytes: 2, 4 or 16, or 0 for the
// empty UUID.
func (u UUID) Width() int {
	return int(u.width)
}

// ShortestWidth returns the minimal width able to represent u's canonical
// form: 2 when it fits the base expansion with a zero upper half, 4 when it
// fits the base expansion, 16 otherwise.
func (u UUID) ShortestWidth() int {
	for i := 4; i < 16; i++ {
		if u.b[i] != baseUUID[i] {
			return 16
		}
	}
	if u.b[0] == 0 && u.b[1] == 0 {
		return 2
	}
	return 4
}

// As16 returns the 16-bit form of u. Meaningful only when Width() == 2.
func (u UUID) As16() uint16 {
	return binary.BigEndian.Uint16(u.b[2:4])
}

// As32 returns the 32-bit form of u. Meaningful only when Width() <= 4.
func (u UUID) As32() uint32 {
	return binary.BigEndian.Uint32(u.b[0:4])
}

// Canonical returns the 128-bit big-endian expansion of u.
func (u UUID) Canonical() [16]byte {
	return u.b
}

// Equal reports whether u and v share the same canonical expansion.
func (u UUID) Equal(v UUID) bool {
	return u.b == v.b
}

// String renders the canonical dashed form, lowercase.
func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x",
		u.b[0:4], u.b[4:6], u.b[6:8], u.b[8:10], u.b[10:16])
}

// Marshal appends the wire form of u: 16 and 32-bit variants travel little
// endian, the 128-bit variant travels as the canonical big-endian bytes.
// The empty UUID writes nothing.
func (u UUID) Marshal(b *stream.Buffer) {
	switch u.width {
	case 2:
		b.WriteUint16(u.As16())
	case 4:
		b.WriteUint32(u.As32())
	case 16:
		b.WriteBytes(u.b[:])
	}
}
