package adv

import (
	"bytes"
	"testing"

	"github.com/corebt/lescan"
)

func TestBuildWireFormat(t *testing.T) {
	d := Data(nil).
		AppendFlags(FlagGeneralDiscoverable | FlagLEOnly).
		AppendName("gopher").
		AppendServiceUUID(lescan.UUID16(0x180F))
	want := []byte{
		0x02, 0x01, 0x06,
		0x07, 0x09, 'g', 'o', 'p', 'h', 'e', 'r',
		0x03, 0x03, 0x0F, 0x18,
	}
	if !bytes.Equal(d, want) {
		t.Fatalf("built % X, want % X", []byte(d), want)
	}
	if len(d) > MaxLength {
		t.Fatalf("payload length %d exceeds %d", len(d), MaxLength)
	}
}

func TestFieldLookup(t *testing.T) {
	d := Data(nil).AppendFlags(FlagLEOnly).AppendName("x")
	if got := d.Field(Flags); !bytes.Equal(got, []byte{FlagLEOnly}) {
		t.Errorf("Field(Flags) = % X", got)
	}
	if got := d.Field(TxPower); got != nil {
		t.Errorf("Field(TxPower) = % X, want nil", got)
	}

	// Malformed payloads stop the walk instead of misreading.
	for _, bad := range []Data{
		{0x05, 0x09, 'a'},      // length runs past the payload
		{0x00, 0x09, 'a', 'b'}, // zero length field
		{0x03},                 // lone length byte
	} {
		if got := bad.Field(0x09); got != nil {
			t.Errorf("Field on % X = % X, want nil", []byte(bad), got)
		}
	}
}

func TestLocalName(t *testing.T) {
	both := Data(nil).AppendField(ShortName, []byte("gop")).AppendName("gopher")
	if got := both.LocalName(); got != "gopher" {
		t.Errorf("LocalName = %q, want complete name", got)
	}
	short := Data(nil).AppendField(ShortName, []byte("gop"))
	if got := short.LocalName(); got != "gop" {
		t.Errorf("LocalName = %q, want short name", got)
	}
	if got := Data(nil).LocalName(); got != "" {
		t.Errorf("LocalName on empty payload = %q", got)
	}
}

func TestFlagsAndTxPower(t *testing.T) {
	d := Data(nil).AppendFlags(FlagGeneralDiscoverable).AppendField(TxPower, []byte{0xF4})
	f, ok := d.Flags()
	if !ok || f != FlagGeneralDiscoverable {
		t.Errorf("Flags = %#x, %v", f, ok)
	}
	p, ok := d.TxPower()
	if !ok || p != -12 {
		t.Errorf("TxPower = %d, %v, want -12", p, ok)
	}
	if _, ok := Data(nil).Flags(); ok {
		t.Error("Flags reported present on empty payload")
	}
	if _, ok := Data(nil).TxPower(); ok {
		t.Error("TxPower reported present on empty payload")
	}
}

func TestServiceUUIDs(t *testing.T) {
	long := lescan.MustParse("f000aa64-0451-4000-b000-000000000000")
	d := Data(nil).
		AppendServiceUUID(lescan.UUID16(0x180F)).
		AppendServiceUUID(lescan.UUID32(0xAABBCCDD)).
		AppendServiceUUID(long)
	got := d.ServiceUUIDs()
	want := []lescan.UUID{lescan.UUID16(0x180F), lescan.UUID32(0xAABBCCDD), long}
	if len(got) != len(want) {
		t.Fatalf("got %d UUIDs, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("UUID %d = %s, want %s", i, got[i], want[i])
		}
	}

	// The 16-bit UUID travels little-endian on air.
	if f := d.Field(AllUUID16); !bytes.Equal(f, []byte{0x0F, 0x18}) {
		t.Errorf("AllUUID16 field = % X", f)
	}
}

func TestSolicitedUUIDs(t *testing.T) {
	d := Data(nil).AppendField(ServiceSol16, []byte{0x0F, 0x18, 0x0A, 0x18})
	got := d.SolicitedUUIDs()
	if len(got) != 2 || !got[0].Equal(lescan.UUID16(0x180F)) || !got[1].Equal(lescan.UUID16(0x180A)) {
		t.Fatalf("SolicitedUUIDs = %v", got)
	}
}

func TestServiceData(t *testing.T) {
	d := Data(nil).AppendServiceData(lescan.UUID16(0x180F), []byte{0x64})
	got := d.ServiceData()
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if !got[0].UUID.Equal(lescan.UUID16(0x180F)) || !bytes.Equal(got[0].Data, []byte{0x64}) {
		t.Errorf("entry = %s % X", got[0].UUID, got[0].Data)
	}

	// The entry owns its bytes.
	got[0].Data[0] = 0xFF
	if again := d.ServiceData(); again[0].Data[0] != 0x64 {
		t.Error("entry aliases the payload")
	}
}

func TestManufacturerData(t *testing.T) {
	d := Data(nil).AppendManufacturerData(0x004C, []byte{0xBE, 0xEF})
	id, p, ok := d.ManufacturerData()
	if !ok || id != 0x004C || !bytes.Equal(p, []byte{0xBE, 0xEF}) {
		t.Errorf("ManufacturerData = %#x % X %v", id, p, ok)
	}
	if _, _, ok := Data(nil).ManufacturerData(); ok {
		t.Error("ManufacturerData reported present on empty payload")
	}
	if _, _, ok := (Data{0x02, 0xFF, 0x4C}).ManufacturerData(); ok {
		t.Error("ManufacturerData reported present without a company identifier")
	}
}
