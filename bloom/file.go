package bloom

import (
	"os"
)

// WriteFile stores the text record for f at path.
func (f *Filter) WriteFile(path string) error {
	text, err := f.MarshalText()
	if err != nil {
		return err
	}
	return os.WriteFile(path, text, 0o644)
}

// ReadFile loads a filter from the text record at path.
func ReadFile(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
