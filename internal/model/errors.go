package model

import "strings"

// MissingFieldError reports required JSON fields absent from a payload.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// requireFields returns a *MissingFieldError naming every field whose
// presence flag is false, in the order given.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldError{Fields: missing}
}

type field struct {
	name    string
	present bool
}
