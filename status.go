package lazyload

// Status is the lifecycle status of a shared fetch cache.
type Status uint8

const (
	// StatusIdle means no fetch has been issued yet.
	StatusIdle Status = iota

	// StatusLoading means a fetch is in flight.
	StatusLoading

	// StatusReady means the data is loaded. It is terminal.
	StatusReady

	// StatusFailed means the last fetch failed. The next request retries.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle stage of a per-item progressive loader.
type Phase uint8

const (
	// PhaseUnobserved means the item has not been loaded.
	// A loader whose initial page failed also rests here.
	PhaseUnobserved Phase = iota

	// PhaseInitialLoading means the initial page is being fetched.
	PhaseInitialLoading

	// PhasePartial means the initial page is loaded.
	PhasePartial

	// PhaseExpanding means the remaining page is being fetched.
	PhaseExpanding

	// PhaseFull means every page is loaded.
	PhaseFull
)

func (p Phase) String() string {
	switch p {
	case PhaseUnobserved:
		return "unobserved"
	case PhaseInitialLoading:
		return "initial-loading"
	case PhasePartial:
		return "partial"
	case PhaseExpanding:
		return "expanding"
	case PhaseFull:
		return "full"
	default:
		return "unknown"
	}
}

// Fetching reports whether a fetch is running in the phase.
func (p Phase) Fetching() bool {
	return p == PhaseInitialLoading || p == PhaseExpanding
}
