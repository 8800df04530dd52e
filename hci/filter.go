package hci

import "github.com/corebt/lescan/stream"

// ApcfAction selects the filter configuration operation.
type ApcfAction uint8

// Filter configuration actions.
const (
	ApcfActionAdd    ApcfAction = 0x00
	ApcfActionDelete ApcfAction = 0x01
	ApcfActionClear  ApcfAction = 0x02
)

// ApcfFilterType tags the content a filter command matches against.
type ApcfFilterType uint8

// Content filter types.
const (
	ApcfBroadcasterAddress      ApcfFilterType = 0x00
	ApcfServiceData             ApcfFilterType = 0x01
	ApcfServiceUUID             ApcfFilterType = 0x02
	ApcfServiceSolicitationUUID ApcfFilterType = 0x03
	ApcfLocalName               ApcfFilterType = 0x04
	ApcfManufacturerData        ApcfFilterType = 0x05
	ApcfAdvertisingData         ApcfFilterType = 0x06
)

// Valid reports whether t is a defined content filter type.
func (t ApcfFilterType) Valid() bool {
	return t <= ApcfAdvertisingData
}

// ApcfApplicationAddressType qualifies the address carried in a broadcaster
// address filter.
type ApcfApplicationAddressType uint8

// Application address types.
const (
	ApcfAddressPublic        ApcfApplicationAddressType = 0x00
	ApcfAddressRandom        ApcfApplicationAddressType = 0x01
	ApcfAddressNotApplicable ApcfApplicationAddressType = 0x02
)

// DeliveryMode selects how the controller surfaces filter matches.
type DeliveryMode uint8

// Delivery modes.
const (
	DeliveryImmediate DeliveryMode = 0x00 // every match reported
	DeliveryOnFound   DeliveryMode = 0x01 // edge-triggered found/lost
	DeliveryBatched   DeliveryMode = 0x02 // store and forward
)

// An AdvertisingFilterParameter configures one filter parameter slot. The
// OnFound group (OnFoundTimeout through NumOfTrackingEntries) is meaningful
// only when DeliveryMode is DeliveryOnFound and is absent from the wire
// record in every other mode.
type AdvertisingFilterParameter struct {
	FeatureSelection uint16
	ListLogicType    uint16
	FilterLogicType  uint16
	RSSIHighThresh   int8
	DeliveryMode     DeliveryMode

	OnFoundTimeout       uint16
	OnFoundTimeoutCount  uint8
	RSSILowThresh        int8
	OnLostTimeout        uint16
	NumOfTrackingEntries uint16
}

// Marshal appends the packed wire record: 8 bytes, extended to 16 bytes by
// the OnFound group when DeliveryMode is DeliveryOnFound.
func (p AdvertisingFilterParameter) Marshal(b *stream.Buffer) {
	b.WriteUint16(p.FeatureSelection)
	b.WriteUint16(p.ListLogicType)
	b.WriteUint16(p.FilterLogicType)
	b.WriteInt8(p.RSSIHighThresh)
	b.WriteUint8(uint8(p.DeliveryMode))
	if p.DeliveryMode == DeliveryOnFound {
		b.WriteUint16(p.OnFoundTimeout)
		b.WriteUint8(p.OnFoundTimeoutCount)
		b.WriteInt8(p.RSSILowThresh)
		b.WriteUint16(p.OnLostTimeout)
		b.WriteUint16(p.NumOfTrackingEntries)
	}
}

// Unmarshal reads a packed wire record produced by Marshal. Fields of the
// OnFound group stay zero unless the record's delivery mode carries them.
func (p *AdvertisingFilterParameter) Unmarshal(r *stream.Reader) error {
	var err error
	if p.FeatureSelection, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.ListLogicType, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.FilterLogicType, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.RSSIHighThresh, err = r.ReadInt8(); err != nil {
		return err
	}
	mode, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.DeliveryMode = DeliveryMode(mode)
	if p.DeliveryMode != DeliveryOnFound {
		return nil
	}
	if p.OnFoundTimeout, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.OnFoundTimeoutCount, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.RSSILowThresh, err = r.ReadInt8(); err != nil {
		return err
	}
	if p.OnLostTimeout, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.NumOfTrackingEntries, err = r.ReadUint16(); err != nil {
		return err
	}
	return nil
}

// A FilterCommand is one controller-facing content filter entry, produced by
// the coordinator's translator.
type FilterCommand struct {
	FilterType             ApcfFilterType
	Address                Address
	ApplicationAddressType ApcfApplicationAddressType
	UUID                   UUID
	UUIDMask               UUID
	Name                   []byte
	Company                uint16
	CompanyMask            uint16
	Data                   []byte
	DataMask               []byte
}
