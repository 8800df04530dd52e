package hci

import (
	"bytes"
	"testing"

	"github.com/corebt/lescan/stream"
)

func TestUUIDWidths(t *testing.T) {
	cases := []struct {
		name     string
		u        UUID
		width    int
		shortest int
	}{
		{"16-bit", UUID16(0x180F), 2, 2},
		{"16-bit zero", UUID16(0x0000), 2, 2},
		{"32-bit", UUID32(0xAB5601FF), 4, 4},
		{"32-bit that fits 16", UUID32(0x0000180F), 4, 2},
		{"128-bit base expansion", UUID128(UUID16(0x180F).Canonical()), 16, 2},
		{"128-bit", UUID128([16]byte{0x34, 0xDA, 0x3A, 0xD1, 0x71, 0x10, 0x41, 0xA1, 0xB1, 0xEF, 0x44, 0x30, 0xF5, 0x09, 0xCD, 0xE7}), 16, 16},
	}
	for _, c := range cases {
		if got := c.u.Width(); got != c.width {
			t.Errorf("%s: expected width %d but got %d", c.name, c.width, got)
		}
		if got := c.u.ShortestWidth(); got != c.shortest {
			t.Errorf("%s: expected shortest width %d but got %d", c.name, c.shortest, got)
		}
		if c.u.IsEmpty() {
			t.Errorf("%s: non-empty UUID reported empty", c.name)
		}
	}
}

func TestUUIDEmpty(t *testing.T) {
	var empty UUID
	if !empty.IsEmpty() {
		t.Error("zero value must be the empty UUID")
	}
	if empty.Width() != 0 {
		t.Errorf("expected width 0 but got %d", empty.Width())
	}
	// Zero is a valid 16-bit UUID, not the empty sentinel.
	if UUID16(0x0000).IsEmpty() {
		t.Error("UUID16(0) must not be empty")
	}
}

func TestUUIDCanonicalEquality(t *testing.T) {
	if !UUID16(0x180F).Equal(UUID32(0x0000180F)) {
		t.Error("16 and 32-bit forms of the same UUID must be equal")
	}
	if !UUID16(0x180F).Equal(UUID128(UUID16(0x180F).Canonical())) {
		t.Error("16 and 128-bit forms of the same UUID must be equal")
	}
	if UUID16(0x180F).Equal(UUID16(0x1810)) {
		t.Error("distinct UUIDs reported equal")
	}
}

func TestUUIDAccessors(t *testing.T) {
	if got := UUID16(0x180F).As16(); got != 0x180F {
		t.Errorf("expected 0x180F but got 0x%04X", got)
	}
	if got := UUID32(0xAB5601FF).As32(); got != 0xAB5601FF {
		t.Errorf("expected 0xAB5601FF but got 0x%08X", got)
	}
	want := "0000180f-0000-1000-8000-00805f9b34fb"
	if got := UUID16(0x180F).String(); got != want {
		t.Errorf("expected %s but got %s", want, got)
	}
}

func TestUUIDWireOrder(t *testing.T) {
	b := stream.NewBuffer(0)
	UUID16(0x180F).Marshal(b)
	if want := []byte{0x0F, 0x18}; !bytes.Equal(b.Bytes(), want) {
		t.Errorf("16-bit wire: expected % X but got % X", want, b.Bytes())
	}

	b.Reset()
	UUID32(0x12345678).Marshal(b)
	if want := []byte{0x78, 0x56, 0x34, 0x12}; !bytes.Equal(b.Bytes(), want) {
		t.Errorf("32-bit wire: expected % X but got % X", want, b.Bytes())
	}

	b.Reset()
	raw := [16]byte{0x34, 0xDA, 0x3A, 0xD1, 0x71, 0x10, 0x41, 0xA1, 0xB1, 0xEF, 0x44, 0x30, 0xF5, 0x09, 0xCD, 0xE7}
	UUID128(raw).Marshal(b)
	if !bytes.Equal(b.Bytes(), raw[:]) {
		t.Errorf("128-bit wire must be canonical MSB-first, got % X", b.Bytes())
	}

	b.Reset()
	var empty UUID
	empty.Marshal(b)
	if b.Len() != 0 {
		t.Errorf("empty UUID must write nothing, wrote %d bytes", b.Len())
	}
}
