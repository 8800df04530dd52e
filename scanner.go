package lescan

import (
	"sync"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/corebt/lescan/hci"
)

type regState uint8

const (
	regRegistering regState = iota
	regRegistered
	regUnregistered
)

// registration tracks one upper-layer scanner through the handshake with
// the controller. The deferred register callback is held until the engine
// answers, then cleared.
type registration struct {
	app   uuid.UUID
	id    hci.ScannerID
	state regState
	cb    RegisterCallback
}

// Scanner coordinates upper-layer scanning clients with a lower controller
// engine. Engine events are repackaged and posted to the dispatch Queue; no
// sink method ever runs on an engine or caller goroutine. The mutex guards
// only the registration table and the scanning flag and is never held
// across an engine call or a post.
type Scanner struct {
	eng  hci.Scanning
	q    Queue
	sink ScanningCallbacks

	mu       sync.Mutex
	regs     map[uuid.UUID]*registration
	byID     map[hci.ScannerID]*registration
	scanning bool
	closed   bool
}

// New attaches a Scanner to eng. Engine events flow to sink through q from
// the moment New returns, so both must be ready before the call.
func New(eng hci.Scanning, q Queue, sink ScanningCallbacks) (*Scanner, error) {
	if eng == nil {
		return nil, errors.New("lescan: nil engine")
	}
	if q == nil {
		return nil, errors.New("lescan: nil dispatch queue")
	}
	if sink == nil {
		return nil, errors.New("lescan: nil callback sink")
	}
	s := &Scanner{
		eng:  eng,
		q:    q,
		sink: sink,
		regs: make(map[uuid.UUID]*registration),
		byID: make(map[hci.ScannerID]*registration),
	}
	eng.RegisterCallback(s)
	return s, nil
}

// Close detaches the Scanner from the engine. Work already posted to the
// dispatch queue still runs; later engine events are dropped. The queue
// itself stays with its owner.
func (s *Scanner) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	s.eng.RegisterCallback(nil)
	return nil
}

// RegisterScanner starts the registration handshake for app. The scanner id
// arrives asynchronously: once the engine answers, sink.OnScannerRegistered
// is posted to the dispatch queue, immediately followed by cb when cb is
// non-nil. Registering an app that already holds a live registration is an
// internal error and reports status StatusInternalError without touching
// the existing record.
func (s *Scanner) RegisterScanner(app uuid.UUID, cb RegisterCallback) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if _, ok := s.regs[app]; ok {
		s.mu.Unlock()
		logger.Error("scanner already registered", "app", app.String())
		s.q.Post(func() {
			s.sink.OnScannerRegistered(app, 0, StatusInternalError)
			if cb != nil {
				cb(0, StatusInternalError)
			}
		})
		return
	}
	s.regs[app] = &registration{app: app, state: regRegistering, cb: cb}
	s.mu.Unlock()
	s.eng.RegisterScanner(hci.UUID128([16]byte(app)))
}

// Unregister releases a registered scanner id. Unknown ids are a no-op with
// a warning. After Unregister returns, no further registration events for
// that id reach the sink.
func (s *Scanner) Unregister(id hci.ScannerID) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	r, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		logger.Warn("unregister for unknown scanner", "id", int(id))
		return
	}
	r.state = regUnregistered
	delete(s.byID, id)
	delete(s.regs, r.app)
	s.mu.Unlock()
	s.eng.Unregister(id)
}

// Scan turns scanning on or off globally. Repeating the current state is a
// no-op, so the engine sees each transition exactly once.
func (s *Scanner) Scan(start bool) {
	s.mu.Lock()
	if s.closed || s.scanning == start {
		s.mu.Unlock()
		return
	}
	s.scanning = start
	s.mu.Unlock()
	s.eng.Scan(start)
}

// SetScanParameters programs scan interval and window, in 0.625 ms units.
// Only the first element of each slice is used and the scan type is always
// active; phy is unused, this core drives a single PHY. A window larger
// than the interval, or empty parameters, reports StatusInvalidArgument
// without reaching the engine.
func (s *Scanner) SetScanParameters(phy int, intervals, windows []uint16, cb StatusCallback) {
	if len(intervals) == 0 || len(windows) == 0 {
		logger.Warn("empty scan parameters", "phy", phy)
		if cb != nil {
			s.q.Post(func() { cb(StatusInvalidArgument) })
		}
		return
	}
	interval, window := intervals[0], windows[0]
	if window > interval {
		logger.Warn("scan window exceeds interval",
			"interval", int(interval), "window", int(window))
		if cb != nil {
			s.q.Post(func() { cb(StatusInvalidArgument) })
		}
		return
	}
	s.eng.SetScanParameters(hci.ScanTypeActive, interval, window)
	if cb != nil {
		s.q.Post(func() { cb(StatusSuccess) })
	}
}

// ScanFilterParameterSetup adds, deletes or clears the filter parameter
// slot at filterIndex. params is read only when non-nil; delete and clear
// carry no payload. The confirmation reports zero available spaces until
// the engine surfaces real slot counts. clientIf is carried for the upper
// stack's bookkeeping and is not consumed here.
func (s *Scanner) ScanFilterParameterSetup(clientIf uint8, action hci.ApcfAction, filterIndex uint8, params *FilterParams, cb FilterParamSetupCallback) {
	s.eng.ScanFilterParameterSetup(action, filterIndex, buildFilterParameter(params))
	if cb != nil {
		s.q.Post(func() { cb(0, 0, StatusSuccess) })
	}
}

// ScanFilterAdd translates and submits a batch of filter conditions for the
// slot at filterIndex. The batch is all-or-nothing: one bad condition drops
// the whole call without invoking cb, so no callback always means nothing
// was submitted.
func (s *Scanner) ScanFilterAdd(filterIndex uint8, commands []FilterCommand, cb FilterConfigCallback) {
	batch := make([]hci.FilterCommand, 0, len(commands))
	for _, c := range commands {
		fc, err := translateFilter(c)
		if err != nil {
			logger.Error("invalid apcf command", "err", err)
			return
		}
		batch = append(batch, fc)
	}
	s.eng.ScanFilterAdd(filterIndex, batch)
	if cb != nil {
		s.q.Post(func() { cb(0, 0, 0, 0, StatusSuccess) })
	}
}

// ScanFilterClear is not routed to the controller; the host clears slots
// through ScanFilterParameterSetup instead. Logged and dropped, cb is never
// invoked.
func (s *Scanner) ScanFilterClear(filterIndex uint8, cb FilterConfigCallback) {
	logger.Warn("scan filter clear not implemented", "index", int(filterIndex))
}

// ScanFilterEnable switches controller-side filtering on or off. The posted
// action mirrors the request: 1 when enabling, 0 when disabling.
func (s *Scanner) ScanFilterEnable(enable bool, cb EnableCallback) {
	s.eng.ScanFilterEnable(enable)
	action := uint8(0)
	if enable {
		action = 1
	}
	if cb != nil {
		s.q.Post(func() { cb(action, StatusSuccess) })
	}
}
