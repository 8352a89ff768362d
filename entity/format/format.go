package format

import "fmt"

// Format is the output file format.
type Format int8

const (
	HTML Format = iota
	Csv
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Csv:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case HTML, Csv:
		return []byte(f.String()), nil
	default:
		return nil, fmt.Errorf("invalid format: %d", f)
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := UnmarshalText(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
