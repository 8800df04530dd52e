package lescan

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/corebt/lescan/hci"
)

// FilterParams configures one on-controller filter parameter slot. The
// found/lost fields only take effect when DeliveryMode is
// hci.DeliveryOnFound; in the other modes the controller record omits them.
type FilterParams struct {
	FeatureSelection     uint16
	ListLogicType        uint16
	FilterLogicType      uint16
	RSSIHighThresh       int8
	DeliveryMode         hci.DeliveryMode
	FoundTimeout         uint16
	FoundTimeoutCount    uint8
	RSSILowThresh        int8
	LostTimeout          uint16
	NumOfTrackingEntries uint16
}

// FilterCommand is one content-filter condition as supplied by the host.
// UUID and UUIDMask carry their width in their length; a nil or empty slice
// means the field is absent.
type FilterCommand struct {
	Type        hci.ApcfFilterType
	Addr        Addr
	AddrType    hci.ApcfApplicationAddressType
	UUID        UUID
	UUIDMask    UUID
	Name        []byte
	Company     uint16
	CompanyMask uint16
	Data        []byte
	DataMask    []byte
}

// translateFilter converts a host filter condition into the engine's
// representation. Any failure rejects the whole condition; the caller must
// not submit a partially translated batch.
func translateFilter(c FilterCommand) (hci.FilterCommand, error) {
	var out hci.FilterCommand
	if !c.Type.Valid() {
		return out, errors.Errorf("unknown filter type %d", c.Type)
	}
	out.FilterType = c.Type
	out.Address = hci.Address(c.Addr)
	out.ApplicationAddressType = c.AddrType
	if c.UUID.Len() > 0 {
		value, err := expandUUID(c.UUID)
		if err != nil {
			return out, err
		}
		out.UUID = narrowUUID(value, value.ShortestWidth())
	}
	if c.UUIDMask.Len() > 0 {
		if c.UUID.Len() == 0 {
			return out, errors.New("uuid mask without a uuid value")
		}
		mask, err := expandUUID(c.UUIDMask)
		if err != nil {
			return out, err
		}
		// The mask travels at the width the value collapsed to.
		out.UUIDMask = narrowUUID(mask, out.UUID.Width())
	}
	out.Name = append([]byte(nil), c.Name...)
	out.Company = c.Company
	out.CompanyMask = c.CompanyMask
	out.Data = append([]byte(nil), c.Data...)
	out.DataMask = append([]byte(nil), c.DataMask...)
	return out, nil
}

// expandUUID lifts a big-endian host UUID onto its canonical 128-bit form.
// Lengths other than 2, 4 and 16 are rejected.
func expandUUID(u UUID) (hci.UUID, error) {
	switch u.Len() {
	case 2:
		return hci.UUID16(binary.BigEndian.Uint16(u)), nil
	case 4:
		return hci.UUID32(binary.BigEndian.Uint32(u)), nil
	case 16:
		return hci.UUID128([16]byte(u)), nil
	}
	logger.Warn("illegal UUID length", "length", u.Len())
	return hci.UUID{}, errors.Errorf("illegal UUID length %d", u.Len())
}

// narrowUUID re-expresses u at the given width, reading the canonical bytes
// the way the controller does for that width.
func narrowUUID(u hci.UUID, width int) hci.UUID {
	switch width {
	case 2:
		return hci.UUID16(u.As16())
	case 4:
		return hci.UUID32(u.As32())
	}
	return hci.UUID128(u.Canonical())
}

// buildFilterParameter assembles the controller record for a parameter slot
// action. Delete and Clear carry no payload, so a nil params yields the zero
// record. The found/lost group transfers only in on-found mode; in the other
// modes the record keeps it zeroed whatever the caller set.
func buildFilterParameter(p *FilterParams) hci.AdvertisingFilterParameter {
	if p == nil {
		return hci.AdvertisingFilterParameter{}
	}
	out := hci.AdvertisingFilterParameter{
		FeatureSelection: p.FeatureSelection,
		ListLogicType:    p.ListLogicType,
		FilterLogicType:  p.FilterLogicType,
		RSSIHighThresh:   p.RSSIHighThresh,
		DeliveryMode:     p.DeliveryMode,
	}
	if p.DeliveryMode == hci.DeliveryOnFound {
		out.OnFoundTimeout = p.FoundTimeout
		out.OnFoundTimeoutCount = p.FoundTimeoutCount
		out.RSSILowThresh = p.RSSILowThresh
		out.OnLostTimeout = p.LostTimeout
		out.NumOfTrackingEntries = p.NumOfTrackingEntries
	}
	return out
}
