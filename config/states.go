package config

// StateID identifies an actor state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Mascot behaviour states
	Idle StateID = iota
	Walking
	Hunting
	Eating
)

// StateToName maps StateID to a readable name for logs and debug output.
var StateToName = map[StateID]string{
	Idle:    "idle",
	Walking: "walking",
	Hunting: "hunting",
	Eating:  "eating",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}
