package procmodel

import "errors"

// Sentinel errors returned by Descriptor construction. All are classified
// as InvalidDescriptor per spec.md §7: fail fast, surface to the caller,
// never swallowed.
var (
	// ErrNonPositivePorts indicates NewDescriptor was called with n_ports <= 0.
	ErrNonPositivePorts = errors.New("procmodel: n_ports must be positive")

	// ErrUnknownPort indicates an operation or memory tier referenced a port
	// index outside [0, n_ports).
	ErrUnknownPort = errors.New("procmodel: port index out of range")

	// ErrEmptyPorts indicates NewOp was called with an empty ports list; an
	// operation must be admissible on at least one port.
	ErrEmptyPorts = errors.New("procmodel: operation has no admissible ports")

	// ErrNegativeLatency indicates NewOp was called with a negative len_t.
	ErrNegativeLatency = errors.New("procmodel: operation latency must be non-negative")

	// ErrNonPositiveTierSize indicates NewMemLevel was called with size <= 0.
	ErrNonPositiveTierSize = errors.New("procmodel: memory tier size must be positive")

	// ErrNegativeLoadTime indicates NewMemLevel was called with a negative
	// load_time.
	ErrNegativeLoadTime = errors.New("procmodel: memory tier load_time must be non-negative")

	// ErrUnknownOp indicates Op was called with an id outside the catalog.
	ErrUnknownOp = errors.New("procmodel: unknown operation id")
)
