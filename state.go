package battery

// State is the charging state of a battery.
type State uint8

const (
	Unknown State = iota
	Charging
	Discharging
	Empty
	Full
)

var stateNames = [...]string{"unknown", "charging", "discharging", "empty", "full"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return stateNames[Unknown]
	}

	return stateNames[s]
}

// ParseState maps an OS-reported status string to a State. Unrecognized
// values (including the sysfs "Not charging" status) map to Unknown.
func ParseState(s string) State {
	switch s {
	case "Charging", "charging":
		return Charging
	case "Discharging", "discharging":
		return Discharging
	case "Empty", "empty":
		return Empty
	case "Full", "full":
		return Full
	default:
		return Unknown
	}
}
