// Package lescan coordinates BLE scanning between an upper-layer host API
// and a controller-facing scanning engine. It translates scan and filter
// requests into their controller representation, tracks scanner
// registrations through their handshake, and dispatches engine results to
// the upper layer on a caller-supplied serialized queue.
package lescan

import (
	log "github.com/mgutz/logxi/v1"
	uuid "github.com/satori/go.uuid"

	"github.com/corebt/lescan/hci"
)

var logger = log.New("lescan")

// Status is the outcome code delivered through upper-layer callbacks.
type Status uint8

// Callback status codes.
const (
	StatusSuccess         Status = 0x00 // operation completed
	StatusNoResources     Status = 0x01 // controller capacity exhausted
	StatusInvalidArgument Status = 0x02 // request malformed
	StatusInternalError   Status = 0x03 // coordinator invariant violated
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNoResources:
		return "no resources"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusInternalError:
		return "internal error"
	}
	return "unknown status"
}

// RegisterCallback receives the outcome of a RegisterScanner call.
type RegisterCallback func(id hci.ScannerID, status Status)

// StatusCallback receives a bare operation status.
type StatusCallback func(status Status)

// FilterParamSetupCallback receives the outcome of a filter parameter setup.
type FilterParamSetupCallback func(availableSpaces uint8, action uint8, status Status)

// FilterConfigCallback receives the outcome of a filter content operation.
type FilterConfigCallback func(clientIf uint8, filterIndex uint8, availableSpaces uint8, action uint8, status Status)

// EnableCallback receives the outcome of a filter enable toggle.
type EnableCallback func(action uint8, status Status)

// ScanningCallbacks is the upper callback sink. Its methods are invoked on
// the Scanner's queue, one at a time, in post order. The sink must outlive
// the Scanner, or the Scanner must be closed first.
type ScanningCallbacks interface {
	OnScannerRegistered(app uuid.UUID, id hci.ScannerID, status Status)
	OnScanResult(r ScanResult)
}

// A ScanResult is one advertising report as delivered to the upper layer.
// The address is converted from the engine form by direct byte copy.
type ScanResult struct {
	EventType                   uint16
	AddressType                 hci.AddressType
	Addr                        Addr
	PrimaryPHY                  uint8
	SecondaryPHY                uint8
	AdvertisingSID              uint8
	TxPower                     int8
	RSSI                        int8
	PeriodicAdvertisingInterval uint16
	Data                        []byte
}
