package carriers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tripboard/tripboard/src/common/types"
	"github.com/tripboard/tripboard/src/schedule"
	"go.uber.org/zap"
)

// ScheduleAPI is the single collaborator the controller needs; *schedule.Client
// satisfies it.
type ScheduleAPI interface {
	SearchSchedule(ctx context.Context, req schedule.SearchRequest) ([]types.RawSegment, error)
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	}
	return "unknown"
}

// FailureKind is the user-visible error class: connectivity or upstream
// trouble, never both.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNoInternet
	FailureServer
)

// Snapshot is an immutable view of the controller's current list state.
type Snapshot struct {
	State    State
	Carriers []types.Carrier
	Failure  FailureKind
}

// DefaultTransportTypes are the transport tags shown to users by default.
var DefaultTransportTypes = []string{"train", "suburban"}

const defaultLimit = 100

// Controller runs the fetch, dedupe, normalize, filter pipeline for one
// origin/destination pair and owns the resulting list state. Each search
// screen gets its own instance; there is no shared state between them.
type Controller struct {
	mu             sync.Mutex
	client         ScheduleAPI
	logger         *zap.SugaredLogger
	from           types.Station
	to             types.Station
	date           string
	transportTypes []string
	limit          int

	filter   types.CarrierFilter
	all      []types.Carrier // normalized, deduplicated, unfiltered
	snapshot Snapshot
	inFlight bool
	onChange func(Snapshot)
}

func NewController(client ScheduleAPI, from types.Station, to types.Station, date string, logger *zap.SugaredLogger) (*Controller, error) {
	if client == nil {
		return nil, errors.New("carriers: schedule client is required")
	}
	if from.Code == "" || to.Code == "" {
		return nil, errors.New("carriers: both stations need a code")
	}
	if from.Code == to.Code {
		return nil, fmt.Errorf("carriers: origin and destination are the same station (%s)", from.Code)
	}

	return &Controller{
		client:         client,
		logger:         logger,
		from:           from,
		to:             to,
		date:           date,
		transportTypes: DefaultTransportTypes,
		limit:          defaultLimit,
		snapshot:       Snapshot{State: StateIdle},
	}, nil
}

// OnChange registers a callback invoked after every state transition. The
// callback runs outside the controller lock.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Snapshot returns the current list state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// SetFilter swaps the active filter and re-applies it to the cached list
// without touching the network.
func (c *Controller) SetFilter(filter types.CarrierFilter) {
	c.mu.Lock()
	c.filter = filter

	if c.snapshot.State != StateSuccess {
		c.mu.Unlock()
		return
	}

	snap := Snapshot{State: StateSuccess, Carriers: ApplyFilter(c.all, filter)}
	notify := c.publish(snap)
	c.mu.Unlock()
	notify()
}

// Search fetches the schedule and rebuilds the carrier list. The fetch is the
// only blocking step; at most one is in flight per controller, and a repeated
// call while one is pending is a no-op.
func (c *Controller) Search(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true

	request := schedule.SearchRequest{
		From:           c.from.Code,
		To:             c.to.Code,
		Date:           c.date,
		TransportTypes: c.transportTypes,
		Limit:          c.limit,
	}
	notify := c.publish(Snapshot{State: StateLoading})
	c.mu.Unlock()
	notify()

	segments, err := c.client.SearchSchedule(ctx, request)

	c.mu.Lock()
	c.inFlight = false

	if ctx.Err() != nil {
		// Screen went away mid-fetch; drop the result.
		notify = c.publish(Snapshot{State: StateIdle})
		c.mu.Unlock()
		notify()
		return ctx.Err()
	}

	if err != nil && !errors.Is(err, schedule.ErrNotFound) {
		failure := FailureServer
		if schedule.IsConnectivity(err) {
			failure = FailureNoInternet
		}
		if c.logger != nil {
			c.logger.Warnw("schedule fetch failed", "from", c.from.Code, "to", c.to.Code, "error", err)
		}
		notify = c.publish(Snapshot{State: StateError, Failure: failure})
		c.mu.Unlock()
		notify()
		return err
	}

	// ErrNotFound means "no routes today", not a failure.
	segments = KeepTransportTypes(segments, c.transportTypes)
	c.all = NormalizeAll(Dedupe(segments))

	var snap Snapshot
	if len(c.all) == 0 {
		snap = Snapshot{State: StateEmpty}
	} else {
		snap = Snapshot{State: StateSuccess, Carriers: ApplyFilter(c.all, c.filter)}
	}
	notify = c.publish(snap)
	c.mu.Unlock()
	notify()
	return nil
}

// publish stores the snapshot and returns the notification to run after the
// lock is released.
func (c *Controller) publish(snap Snapshot) func() {
	c.snapshot = snap
	fn := c.onChange
	if fn == nil {
		return func() {}
	}
	return func() { fn(snap) }
}

// KeepTransportTypes keeps segments whose transport tag is in the allowed
// set; an empty set keeps everything.
func KeepTransportTypes(segments []types.RawSegment, allowed []string) []types.RawSegment {
	if len(allowed) == 0 {
		return segments
	}

	kept := make([]types.RawSegment, 0, len(segments))
	for _, segment := range segments {
		for _, transportType := range allowed {
			if segment.Thread.TransportType == transportType {
				kept = append(kept, segment)
				break
			}
		}
	}
	return kept
}
