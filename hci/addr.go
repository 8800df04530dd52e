package hci

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/corebt/lescan/stream"
)

// An Address is a 6-byte Bluetooth device address in canonical order: byte 0
// is the most significant, printed-first byte. On the wire it travels least
// significant byte first.
type Address [6]byte

// AddressType is the advertiser address type carried in scan reports.
type AddressType uint8

// Address types [Vol 4, Part E, 7.7.65.13].
const (
	AddrPublic         AddressType = 0x00
	AddrRandom         AddressType = 0x01
	AddrPublicIdentity AddressType = 0x02
	AddrRandomIdentity AddressType = 0x03
	AddrAnonymous      AddressType = 0xFF
)

// ParseAddress parses the canonical XX:XX:XX:XX:XX:XX form. Hex digits may
// be in either case.
func ParseAddress(s string) (Address, error) {
	var a Address
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return a, errors.Errorf("invalid address %q", s)
	}
	for i, p := range parts {
		b, err := hex.DecodeString(p)
		if err != nil || len(b) != 1 {
			return a, errors.Errorf("invalid address %q", s)
		}
		a[i] = b[0]
	}
	return a, nil
}

// String renders the canonical uppercase colon-separated form.
func (a Address) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[0], a[1], a[2], a[3], a[4], a[5])
}

// IsStaticRandom reports whether a is a random static device address, whose
// two most significant bits are both set.
func (a Address) IsStaticRandom() bool {
	return a[0]&0xC0 == 0xC0
}

// Marshal appends the wire form of a, least significant byte first.
func (a Address) Marshal(b *stream.Buffer) {
	b.WriteBytesReversed(a[:])
}

// UnmarshalAddress reads a wire-order address back into canonical form.
func UnmarshalAddress(r *stream.Reader) (Address, error) {
	var a Address
	b, err := r.ReadBytesReversed(6)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}
