package hci

import (
	"bytes"
	"testing"

	"github.com/corebt/lescan/stream"
)

func TestParseAddressRoundTrip(t *testing.T) {
	for _, s := range []string{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff", "Aa:bB:cC:Dd:Ee:fF"} {
		a, err := ParseAddress(s)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", s, err)
		}
		if got := a.String(); got != "AA:BB:CC:DD:EE:FF" {
			t.Errorf("expected AA:BB:CC:DD:EE:FF but got %s", got)
		}
		back, err := ParseAddress(a.String())
		if err != nil || back != a {
			t.Errorf("round trip of %q failed: %v, %v", s, back, err)
		}
	}
}

func TestParseAddressRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"AABBCCDDEEFF",
		"AA:BB:CC:DD:EE",
		"AA:BB:CC:DD:EE:FF:00",
		"GG:BB:CC:DD:EE:FF",
		"AAA:BB:CC:DD:EE:F",
	} {
		if _, err := ParseAddress(s); err == nil {
			t.Errorf("ParseAddress(%q): expected error but got none", s)
		}
	}
}

func TestAddressStaticRandom(t *testing.T) {
	cases := []struct {
		b0   byte
		want bool
	}{
		{0xC0, true},
		{0xFF, true},
		{0x7F, false},
		{0x80, false},
		{0x40, false},
	}
	for _, c := range cases {
		a := Address{c.b0, 0x11, 0x22, 0x33, 0x44, 0x55}
		if got := a.IsStaticRandom(); got != c.want {
			t.Errorf("IsStaticRandom with byte0 0x%02X: expected %v but got %v", c.b0, c.want, got)
		}
	}
}

func TestAddressWireOrder(t *testing.T) {
	a := Address{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	b := stream.NewBuffer(6)
	a.Marshal(b)
	if want := []byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA}; !bytes.Equal(b.Bytes(), want) {
		t.Errorf("expected % X but got % X", want, b.Bytes())
	}

	back, err := UnmarshalAddress(stream.NewReader(b.Bytes()))
	if err != nil {
		t.Fatalf("UnmarshalAddress: %v", err)
	}
	if back != a {
		t.Errorf("round trip mismatch: got %s", back)
	}
}
