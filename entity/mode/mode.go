package mode

import "fmt"

// Mode selects the quantity computed along the path difference sweep.
type Mode uint8

const (
	Field Mode = iota
	Intensity
	Interference
	Visibility
)

var names = [...]string{
	Field:        "field",
	Intensity:    "intensity",
	Interference: "interference",
	Visibility:   "visibility",
}

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "f", "field":
		return Field, nil
	case "I", "intensity":
		return Intensity, nil
	case "i", "interference":
		return Interference, nil
	case "v", "visibility":
		return Visibility, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	if int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(names) {
		return nil, fmt.Errorf("invalid mode: %d", m)
	}
	return []byte(names[m]), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := UnmarshalText(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
