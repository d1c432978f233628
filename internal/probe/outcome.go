package probe

// Outcome is the result of a liveness probe.
type Outcome int

const (
	// NotLive means the endpoint answered with a status other than 200.
	NotLive Outcome = iota
	// Live means the endpoint answered 200.
	Live
	// Failed means the endpoint could not be reached at all.
	Failed
)

// IsLive reports whether the endpoint counts as live.
func (o Outcome) IsLive() bool {
	return o == Live
}

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Live:
		return "Live"
	case NotLive:
		return "NotLive"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}
