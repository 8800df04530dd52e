package lescan

import "github.com/corebt/lescan/hci"

// An Addr is a 6-byte device address in canonical order, byte 0 most
// significant. It converts to and from the engine's hci.Address by direct
// byte copy.
type Addr [6]byte

// ParseAddr parses the canonical XX:XX:XX:XX:XX:XX form, either case.
func ParseAddr(s string) (Addr, error) {
	a, err := hci.ParseAddress(s)
	return Addr(a), err
}

// MustParseAddr parses an address like ParseAddr, but panics on error.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the canonical uppercase colon-separated form.
func (a Addr) String() string {
	return hci.Address(a).String()
}
