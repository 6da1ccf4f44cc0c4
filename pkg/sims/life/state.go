package life

// RunState gates which operations a Session accepts.
type RunState uint8

const (
	// StateInit accepts paint edits; ticks do not advance.
	StateInit RunState = iota
	// StateRunning advances once per tick; paint edits are discarded.
	StateRunning
)

func (s RunState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Editable reports whether paint edits are accepted.
func (s RunState) Editable() bool { return s == StateInit }

// Advancing reports whether ticks advance the grid.
func (s RunState) Advancing() bool { return s == StateRunning }

// stroke tracks a pointer drag. A stroke paints a single value from press to
// release.
type stroke struct {
	active bool
	alive  bool
}
