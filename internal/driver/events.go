package driver

// Status is the lifecycle of one file in a format batch.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusCached
	StatusError
)

// Event reports per-file progress to an optional observer (the CLI's
// progress UI). Emission never blocks the pipeline: events are dropped when
// the observer lags.
type Event struct {
	Path   string
	Status Status
}

func emit(events chan<- Event, path string, status Status) {
	if events == nil {
		return
	}
	select {
	case events <- Event{Path: path, Status: status}:
	default:
	}
}
