// Package hci defines the controller-facing value model for LE scanning and
// the contract of the lower scanning engine. The coordinator in the parent
// package drives a Scanning implementation and receives results through
// ScanningCallback; implementations execute on their own single-threaded
// event loop and never block the caller.
package hci

// A ScannerID identifies a registered scanner, assigned by the controller on
// successful registration.
type ScannerID uint8

// ScanningStatus is the engine-reported outcome of a scanning operation.
type ScanningStatus uint8

// Scanning operation status codes.
const (
	ScanSuccess         ScanningStatus = 0x00 // operation completed
	ScanNoResources     ScanningStatus = 0x01 // controller capacity exhausted
	ScanInvalidArgument ScanningStatus = 0x02 // request rejected by the engine
	ScanInternalError   ScanningStatus = 0x03 // engine invariant violated
)

func (s ScanningStatus) String() string {
	if name, ok := statusName[s]; ok {
		return name
	}
	return "unknown status"
}

var statusName = map[ScanningStatus]string{
	ScanSuccess:         "success",
	ScanNoResources:     "no resources",
	ScanInvalidArgument: "invalid argument",
	ScanInternalError:   "internal error",
}

// LeScanType selects passive or active scanning [Vol 4, Part E, 7.8.10].
type LeScanType uint8

// Scan types.
const (
	ScanTypePassive LeScanType = 0x00
	ScanTypeActive  LeScanType = 0x01
)

// Enable mirrors the controller's enable parameter encoding.
type Enable uint8

// Enable values.
const (
	Disabled Enable = 0x00
	Enabled  Enable = 0x01
)

// Scan interval and window bounds, in 0.625 ms units [Vol 4, Part E, 7.8.10].
const (
	ScanIntervalMin = 0x0004
	ScanIntervalMax = 0x4000
	ScanWindowMin   = 0x0004
	ScanWindowMax   = 0x4000
)

// A ScanReport is one advertising report delivered by the engine.
type ScanReport struct {
	EventType                   uint16
	AddressType                 AddressType
	Address                     Address
	PrimaryPHY                  uint8
	SecondaryPHY                uint8
	AdvertisingSID              uint8
	TxPower                     int8
	RSSI                        int8
	PeriodicAdvertisingInterval uint16
	Data                        []byte
}

// Scanning is the lower scanning engine. All methods are fire-and-forget:
// they are safe to call from any goroutine, execute on the engine's event
// loop, and report outcomes through the registered ScanningCallback.
type Scanning interface {
	// RegisterScanner requests a scanner id for the given application UUID.
	// Completion arrives via ScanningCallback.OnScannerRegistered.
	RegisterScanner(app UUID)

	// Unregister releases a previously assigned scanner id.
	Unregister(id ScannerID)

	// Scan starts or stops scanning.
	Scan(start bool)

	// ScanFilterParameterSetup adds, deletes or clears the filter parameter
	// slot at index.
	ScanFilterParameterSetup(action ApcfAction, index uint8, p AdvertisingFilterParameter)

	// ScanFilterAdd loads content-filter commands into the slot at index.
	ScanFilterAdd(index uint8, filters []FilterCommand)

	// ScanFilterEnable turns controller-side filtering on or off.
	ScanFilterEnable(enable bool)

	// SetScanParameters configures scan type, interval and window, in units
	// of 0.625 ms.
	SetScanParameters(typ LeScanType, interval, window uint16)

	// RegisterCallback binds the inbound event sink. Passing nil detaches
	// the current sink.
	RegisterCallback(cb ScanningCallback)
}

// ScanningCallback receives engine events. Calls arrive on the engine's
// event loop; implementations must not block.
type ScanningCallback interface {
	OnScannerRegistered(app UUID, id ScannerID, status ScanningStatus)
	OnScanResult(r ScanReport)
	OnTrackAdvFoundLost()
	OnBatchScanReports(clientIf int, status int, reportFormat int, numRecords int, data []byte)
	OnTimeout()
	OnFilterEnable(enable Enable, status uint8)
	OnFilterParamSetup(availableSpaces uint8, action ApcfAction, status uint8)
	OnFilterConfig(filterType ApcfFilterType, availableSpaces uint8, action ApcfAction, status uint8)
}
