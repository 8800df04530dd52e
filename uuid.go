package lescan

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A UUID is a filter content UUID as the host supplies it: 2, 4 or 16 bytes
// in canonical big-endian order. A nil or empty UUID means absent.
type UUID []byte

// UUID16 converts a uint16 (such as 0x180F) to a UUID.
func UUID16(i uint16) UUID {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, i)
	return UUID(b)
}

// UUID32 converts a uint32 to a UUID.
func UUID32(i uint32) UUID {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return UUID(b)
}

// Parse parses a standard-format UUID string, such as "180F", "AB5601FF"
// or "34DA3AD1-7110-41A1-B1EF-4430F509CDE7".
func Parse(s string) (UUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse UUID")
	}
	if err := lenErr(len(b)); err != nil {
		return nil, err
	}
	return UUID(b), nil
}

// MustParse parses a standard-format UUID string, like Parse, but panics in
// case of error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// lenErr returns an error if n is an invalid UUID length.
func lenErr(n int) error {
	switch n {
	case 2, 4, 16:
		return nil
	}
	return errors.Errorf("UUIDs must have length 2, 4 or 16, got %d", n)
}

// Len returns the length of the UUID in bytes: 2, 4 or 16, or 0 when absent.
func (u UUID) Len() int {
	return len(u)
}

// String hex-encodes a UUID.
func (u UUID) String() string {
	return fmt.Sprintf("%x", []byte(u))
}

// Equal returns a boolean reporting whether v represents the same UUID as u.
func (u UUID) Equal(v UUID) bool {
	return bytes.Equal(u, v)
}
