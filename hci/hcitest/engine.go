// Package hcitest provides a scripted scanning engine for tests and demos.
package hcitest

import (
	"sync"

	log "github.com/mgutz/logxi/v1"

	"github.com/corebt/lescan/hci"
)

var logger = log.New("hcitest")

// A ParamSetup records one filter parameter slot request.
type ParamSetup struct {
	Action hci.ApcfAction
	Index  uint8
	Param  hci.AdvertisingFilterParameter
}

// A FilterAdd records one submitted filter batch.
type FilterAdd struct {
	Index   uint8
	Filters []hci.FilterCommand
}

// A ScanParams records one scan parameter update.
type ScanParams struct {
	Type     hci.LeScanType
	Interval uint16
	Window   uint16
}

// Engine is an in-memory hci.Scanning. It records every request and, when
// AutoComplete is set, answers registrations inline with sequential ids.
// Events fire synchronously on the calling goroutine, which stands in for
// the engine event loop.
type Engine struct {
	// AutoComplete makes RegisterScanner report success immediately with
	// the next free id. Leave it unset to drive completions by hand with
	// FireScannerRegistered.
	AutoComplete bool

	mu     sync.Mutex
	cb     hci.ScanningCallback
	nextID hci.ScannerID

	registered   []hci.UUID
	unregistered []hci.ScannerID
	scan         []bool
	paramSetups  []ParamSetup
	filterAdds   []FilterAdd
	enables      []bool
	scanParams   []ScanParams
}

// NewEngine returns an idle engine. Ids assigned by AutoComplete start at 1.
func NewEngine() *Engine {
	return &Engine{nextID: 1}
}

func (e *Engine) RegisterScanner(app hci.UUID) {
	e.mu.Lock()
	e.registered = append(e.registered, app)
	var id hci.ScannerID
	auto := e.AutoComplete
	if auto {
		id = e.nextID
		e.nextID++
	}
	cb := e.cb
	e.mu.Unlock()

	logger.Debug("register scanner", "app", app.String())
	if auto && cb != nil {
		cb.OnScannerRegistered(app, id, hci.ScanSuccess)
	}
}

func (e *Engine) Unregister(id hci.ScannerID) {
	e.mu.Lock()
	e.unregistered = append(e.unregistered, id)
	e.mu.Unlock()
	logger.Debug("unregister scanner", "id", int(id))
}

func (e *Engine) Scan(start bool) {
	e.mu.Lock()
	e.scan = append(e.scan, start)
	e.mu.Unlock()
	logger.Debug("scan", "start", start)
}

func (e *Engine) ScanFilterParameterSetup(action hci.ApcfAction, index uint8, p hci.AdvertisingFilterParameter) {
	e.mu.Lock()
	e.paramSetups = append(e.paramSetups, ParamSetup{Action: action, Index: index, Param: p})
	e.mu.Unlock()
	logger.Debug("filter parameter setup", "action", int(action), "index", int(index))
}

func (e *Engine) ScanFilterAdd(index uint8, filters []hci.FilterCommand) {
	e.mu.Lock()
	e.filterAdds = append(e.filterAdds, FilterAdd{
		Index:   index,
		Filters: append([]hci.FilterCommand(nil), filters...),
	})
	e.mu.Unlock()
	logger.Debug("filter add", "index", int(index), "filters", len(filters))
}

func (e *Engine) ScanFilterEnable(enable bool) {
	e.mu.Lock()
	e.enables = append(e.enables, enable)
	e.mu.Unlock()
	logger.Debug("filter enable", "enable", enable)
}

func (e *Engine) SetScanParameters(typ hci.LeScanType, interval, window uint16) {
	e.mu.Lock()
	e.scanParams = append(e.scanParams, ScanParams{Type: typ, Interval: interval, Window: window})
	e.mu.Unlock()
	logger.Debug("set scan parameters",
		"type", int(typ), "interval", int(interval), "window", int(window))
}

func (e *Engine) RegisterCallback(cb hci.ScanningCallback) {
	e.mu.Lock()
	e.cb = cb
	e.mu.Unlock()
}

// sink returns the bound callback, or nil when detached.
func (e *Engine) sink() hci.ScanningCallback {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cb
}

// FireScannerRegistered delivers a registration completion to the bound
// callback.
func (e *Engine) FireScannerRegistered(app hci.UUID, id hci.ScannerID, status hci.ScanningStatus) {
	if cb := e.sink(); cb != nil {
		cb.OnScannerRegistered(app, id, status)
	}
}

// FireScanResult delivers one advertising report to the bound callback.
func (e *Engine) FireScanResult(r hci.ScanReport) {
	if cb := e.sink(); cb != nil {
		cb.OnScanResult(r)
	}
}

// FireTimeout signals the end of a duration-limited scan.
func (e *Engine) FireTimeout() {
	if cb := e.sink(); cb != nil {
		cb.OnTimeout()
	}
}

// FireTrackAdvFoundLost delivers a found/lost tracking event.
func (e *Engine) FireTrackAdvFoundLost() {
	if cb := e.sink(); cb != nil {
		cb.OnTrackAdvFoundLost()
	}
}

// FireBatchScanReports delivers a batch scan report blob.
func (e *Engine) FireBatchScanReports(clientIf, status, reportFormat, numRecords int, data []byte) {
	if cb := e.sink(); cb != nil {
		cb.OnBatchScanReports(clientIf, status, reportFormat, numRecords, data)
	}
}

// FireFilterEnable echoes a filter enable acknowledgement.
func (e *Engine) FireFilterEnable(enable hci.Enable, status uint8) {
	if cb := e.sink(); cb != nil {
		cb.OnFilterEnable(enable, status)
	}
}

// FireFilterParamSetup echoes a parameter slot acknowledgement.
func (e *Engine) FireFilterParamSetup(availableSpaces uint8, action hci.ApcfAction, status uint8) {
	if cb := e.sink(); cb != nil {
		cb.OnFilterParamSetup(availableSpaces, action, status)
	}
}

// FireFilterConfig echoes a filter config acknowledgement.
func (e *Engine) FireFilterConfig(filterType hci.ApcfFilterType, availableSpaces uint8, action hci.ApcfAction, status uint8) {
	if cb := e.sink(); cb != nil {
		cb.OnFilterConfig(filterType, availableSpaces, action, status)
	}
}

// Registered returns the application UUIDs passed to RegisterScanner, in
// order.
func (e *Engine) Registered() []hci.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]hci.UUID(nil), e.registered...)
}

// Unregistered returns the ids passed to Unregister, in order.
func (e *Engine) Unregistered() []hci.ScannerID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]hci.ScannerID(nil), e.unregistered...)
}

// ScanStates returns the start arguments passed to Scan, in order.
func (e *Engine) ScanStates() []bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]bool(nil), e.scan...)
}

// ParamSetups returns the recorded filter parameter requests, in order.
func (e *Engine) ParamSetups() []ParamSetup {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ParamSetup(nil), e.paramSetups...)
}

// FilterAdds returns the recorded filter batches, in order.
func (e *Engine) FilterAdds() []FilterAdd {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]FilterAdd(nil), e.filterAdds...)
}

// Enables returns the arguments passed to ScanFilterEnable, in order.
func (e *Engine) Enables() []bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]bool(nil), e.enables...)
}

// Params returns the recorded scan parameter updates, in order.
func (e *Engine) Params() []ScanParams {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ScanParams(nil), e.scanParams...)
}
