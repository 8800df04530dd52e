// Package adv parses and builds BLE advertising data payloads.
// Field layout follows the Core Specification Supplement, Part A.
package adv

import (
	"encoding/binary"

	"github.com/corebt/lescan"
)

// MaxLength is the longest payload a legacy advertising PDU can carry.
const MaxLength = 31

// Advertising data field types.
const (
	Flags            = 0x01 // Flags
	SomeUUID16       = 0x02 // Incomplete List of 16-bit Service Class UUIDs
	AllUUID16        = 0x03 // Complete List of 16-bit Service Class UUIDs
	SomeUUID32       = 0x04 // Incomplete List of 32-bit Service Class UUIDs
	AllUUID32        = 0x05 // Complete List of 32-bit Service Class UUIDs
	SomeUUID128      = 0x06 // Incomplete List of 128-bit Service Class UUIDs
	AllUUID128       = 0x07 // Complete List of 128-bit Service Class UUIDs
	ShortName        = 0x08 // Shortened Local Name
	CompleteName     = 0x09 // Complete Local Name
	TxPower          = 0x0A // Tx Power Level
	ServiceSol16     = 0x14 // List of 16-bit Service Solicitation UUIDs
	ServiceSol128    = 0x15 // List of 128-bit Service Solicitation UUIDs
	ServiceData16    = 0x16 // Service Data - 16-bit UUID
	Appearance       = 0x19 // Appearance
	ServiceSol32     = 0x1F // List of 32-bit Service Solicitation UUIDs
	ServiceData32    = 0x20 // Service Data - 32-bit UUID
	ServiceData128   = 0x21 // Service Data - 128-bit UUID
	ManufacturerData = 0xFF // Manufacturer Specific Data
)

// Advertising flag bits.
const (
	FlagLimitedDiscoverable = 0x01 // LE Limited Discoverable Mode
	FlagGeneralDiscoverable = 0x02 // LE General Discoverable Mode
	FlagLEOnly              = 0x04 // BR/EDR Not Supported
)

// Data is a raw advertising data payload, as a scan report carries it.
type Data []byte

// Field returns the data of the first field with the given type, without
// the length and type bytes. It returns nil if the field is absent or the
// payload is malformed.
func (d Data) Field(typ byte) []byte {
	b := d
	for len(b) >= 2 {
		l, t := b[0], b[1]
		if l == 0 || len(b) < int(1+l) {
			return nil
		}
		if t == typ {
			return b[2 : 1+l]
		}
		b = b[1+l:]
	}
	return nil
}

// Flags returns the advertising flags field.
func (d Data) Flags() (byte, bool) {
	b := d.Field(Flags)
	if len(b) < 1 {
		return 0, false
	}
	return b[0], true
}

// LocalName returns the complete local name when present, otherwise the
// shortened one. It returns "" when the payload names nothing.
func (d Data) LocalName() string {
	if b := d.Field(CompleteName); b != nil {
		return string(b)
	}
	return string(d.Field(ShortName))
}

// TxPower returns the advertised transmit power in dBm.
func (d Data) TxPower() (int, bool) {
	b := d.Field(TxPower)
	if len(b) < 1 {
		return 0, false
	}
	return int(int8(b[0])), true
}

// ServiceUUIDs returns the advertised service class UUIDs in canonical
// big-endian order.
func (d Data) ServiceUUIDs() []lescan.UUID {
	var u []lescan.UUID
	u = uuidList(u, d.Field(SomeUUID16), 2)
	u = uuidList(u, d.Field(AllUUID16), 2)
	u = uuidList(u, d.Field(SomeUUID32), 4)
	u = uuidList(u, d.Field(AllUUID32), 4)
	u = uuidList(u, d.Field(SomeUUID128), 16)
	u = uuidList(u, d.Field(AllUUID128), 16)
	return u
}

// SolicitedUUIDs returns the service solicitation UUIDs in canonical
// big-endian order.
func (d Data) SolicitedUUIDs() []lescan.UUID {
	var u []lescan.UUID
	u = uuidList(u, d.Field(ServiceSol16), 2)
	u = uuidList(u, d.Field(ServiceSol32), 4)
	u = uuidList(u, d.Field(ServiceSol128), 16)
	return u
}

// A ServiceEntry is one service data field: the service UUID and the data
// that travels with it.
type ServiceEntry struct {
	UUID lescan.UUID
	Data []byte
}

// ServiceData returns the service data fields.
func (d Data) ServiceData() []ServiceEntry {
	var s []ServiceEntry
	s = serviceEntry(s, d.Field(ServiceData16), 2)
	s = serviceEntry(s, d.Field(ServiceData32), 4)
	s = serviceEntry(s, d.Field(ServiceData128), 16)
	return s
}

// ManufacturerData returns the company identifier and vendor payload of
// the manufacturer specific data field.
func (d Data) ManufacturerData() (uint16, []byte, bool) {
	b := d.Field(ManufacturerData)
	if len(b) < 2 {
		return 0, nil, false
	}
	return binary.LittleEndian.Uint16(b), b[2:], true
}

// AppendField appends one field with the given type byte.
func (d Data) AppendField(typ byte, b []byte) Data {
	d = append(d, byte(len(b)+1), typ)
	return append(d, b...)
}

// AppendFlags appends an advertising flags field.
func (d Data) AppendFlags(f byte) Data {
	return d.AppendField(Flags, []byte{f})
}

// AppendName appends a complete local name field.
func (d Data) AppendName(n string) Data {
	return d.AppendField(CompleteName, []byte(n))
}

// AppendManufacturerData appends a manufacturer specific data field for
// the given company identifier.
func (d Data) AppendManufacturerData(id uint16, b []byte) Data {
	p := make([]byte, 2, 2+len(b))
	binary.LittleEndian.PutUint16(p, id)
	return d.AppendField(ManufacturerData, append(p, b...))
}

// AppendServiceUUID appends a complete service class UUID list field
// holding the single UUID u.
func (d Data) AppendServiceUUID(u lescan.UUID) Data {
	b := reverse(u)
	switch u.Len() {
	case 2:
		return d.AppendField(AllUUID16, b)
	case 4:
		return d.AppendField(AllUUID32, b)
	default:
		return d.AppendField(AllUUID128, b)
	}
}

// AppendServiceData appends a service data field for the given UUID.
func (d Data) AppendServiceData(u lescan.UUID, b []byte) Data {
	typ := byte(ServiceData128)
	switch u.Len() {
	case 2:
		typ = ServiceData16
	case 4:
		typ = ServiceData32
	}
	return d.AppendField(typ, append(reverse(u), b...))
}

// uuidList appends the UUIDs packed in b at width w, converting each from
// its little-endian wire order.
func uuidList(u []lescan.UUID, b []byte, w int) []lescan.UUID {
	for len(b) >= w {
		u = append(u, lescan.UUID(reverse(b[:w])))
		b = b[w:]
	}
	return u
}

func serviceEntry(s []ServiceEntry, b []byte, w int) []ServiceEntry {
	if len(b) < w {
		return s
	}
	e := ServiceEntry{UUID: lescan.UUID(reverse(b[:w]))}
	e.Data = append([]byte(nil), b[w:]...)
	return append(s, e)
}

// reverse returns a copy of b in the opposite byte order.
func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}
