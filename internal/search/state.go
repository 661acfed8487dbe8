package search

// State is where a single submission currently is.
type State int

const (
	Idle State = iota
	Validating
	Rejected
	Submitting
	AwaitingSimulatedLatency
	Generating
	Presenting
)

var stateNames = [...]string{
	Idle:                     "idle",
	Validating:               "validating",
	Rejected:                 "rejected",
	Submitting:               "submitting",
	AwaitingSimulatedLatency: "awaiting_simulated_latency",
	Generating:               "generating",
	Presenting:               "presenting",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
