package lescan

import (
	uuid "github.com/satori/go.uuid"

	"github.com/corebt/lescan/hci"
)

// The Scanner is the engine's ScanningCallback. Handlers run on the
// engine's event loop; each repackages its event as an immutable value and
// posts it to the dispatch queue, holding no lock across the post.

// OnScannerRegistered completes the registration handshake. The table
// transition happens here, on the engine loop, before the sink event is
// posted; the deferred register callback rides in the same posted closure
// so nothing can land between the two.
func (s *Scanner) OnScannerRegistered(app hci.UUID, id hci.ScannerID, status hci.ScanningStatus) {
	upperApp := uuid.UUID(app.Canonical())
	upperStatus := Status(status)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	r, ok := s.regs[upperApp]
	if !ok || r.state != regRegistering {
		s.mu.Unlock()
		logger.Error("unexpected registration completion",
			"app", upperApp.String(), "id", int(id), "known", ok)
		return
	}
	if upperStatus == StatusSuccess {
		r.state = regRegistered
		r.id = id
		s.byID[id] = r
	} else {
		r.state = regUnregistered
		delete(s.regs, upperApp)
	}
	cb := r.cb
	r.cb = nil
	s.mu.Unlock()

	s.q.Post(func() {
		s.sink.OnScannerRegistered(upperApp, id, upperStatus)
		if cb != nil {
			cb(id, upperStatus)
		}
	})
}

// OnScanResult forwards one advertising report. The engine may reuse its
// buffers once this returns, so the payload is copied before the post.
func (s *Scanner) OnScanResult(r hci.ScanReport) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}

	res := ScanResult{
		EventType:                   r.EventType,
		AddressType:                 r.AddressType,
		Addr:                        Addr(r.Address),
		PrimaryPHY:                  r.PrimaryPHY,
		SecondaryPHY:                r.SecondaryPHY,
		AdvertisingSID:              r.AdvertisingSID,
		TxPower:                     r.TxPower,
		RSSI:                        r.RSSI,
		PeriodicAdvertisingInterval: r.PeriodicAdvertisingInterval,
		Data:                        append([]byte(nil), r.Data...),
	}
	s.q.Post(func() { s.sink.OnScanResult(res) })
}

// OnTrackAdvFoundLost is consumed here; found/lost tracking has no upper
// consumer yet.
func (s *Scanner) OnTrackAdvFoundLost() {
	logger.Debug("track adv found/lost event dropped")
}

// OnBatchScanReports is consumed here; batch mode has no upper consumer
// yet.
func (s *Scanner) OnBatchScanReports(clientIf, status, reportFormat, numRecords int, data []byte) {
	logger.Debug("batch scan report dropped",
		"clientIf", clientIf, "status", status,
		"format", reportFormat, "records", numRecords, "len", len(data))
}

// OnTimeout marks the end of a duration-limited scan.
func (s *Scanner) OnTimeout() {
	logger.Debug("scan timeout")
}

// OnFilterEnable acknowledgements are satisfied synthetically by
// ScanFilterEnable; the engine echo is only logged.
func (s *Scanner) OnFilterEnable(enable hci.Enable, status uint8) {
	logger.Debug("filter enable acknowledged", "enable", int(enable), "status", int(status))
}

// OnFilterParamSetup acknowledgements are satisfied synthetically by
// ScanFilterParameterSetup; the engine echo is only logged.
func (s *Scanner) OnFilterParamSetup(availableSpaces uint8, action hci.ApcfAction, status uint8) {
	logger.Debug("filter parameter slot acknowledged",
		"available", int(availableSpaces), "action", int(action), "status", int(status))
}

// OnFilterConfig acknowledgements are satisfied synthetically by
// ScanFilterAdd; the engine echo is only logged.
func (s *Scanner) OnFilterConfig(filterType hci.ApcfFilterType, availableSpaces uint8, action hci.ApcfAction, status uint8) {
	logger.Debug("filter config acknowledged",
		"type", int(filterType), "available", int(availableSpaces),
		"action", int(action), "status", int(status))
}
