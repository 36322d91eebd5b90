// Package schema declares, per quote type, the recognized form fields and
// their validity constraints. Validation is pure: it consults no external
// state, so the same rule set drives both the browser forms and the HTTP
// layer.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fleetcover/quote-service/internal/utils"
)

var validate = validator.New()

// FieldKind enumerates the value shapes a form field can take.
type FieldKind int

const (
	KindString FieldKind = iota
	KindEmail
	KindState
	KindBool
	KindStringList
	KindVehicleList
	KindDriverList
)

// Field is one declarative validation rule.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	MinLen   int
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Vehicle is the repeated vehicle substructure; every attribute is an
// optional string exactly as entered on the form.
type Vehicle struct {
	Year            string `json:"year"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	VIN             string `json:"vin"`
	SeatingCapacity string `json:"seatingCapacity"`
	StatedValue     string `json:"statedValue"`
}

// Driver is the repeated driver substructure.
type Driver struct {
	FullName        string `json:"fullName"`
	DateOfBirth     string `json:"dateOfBirth"`
	LicenseNumber   string `json:"licenseNumber"`
	LicenseState    string `json:"licenseState"`
	YearsExperience string `json:"yearsExperience"`
	DateOfHire      string `json:"dateOfHire"`
}

// Submission is the normalized value set produced by a successful
// validation: unknown extra fields dropped, missing optional fields
// defaulted.
type Submission struct {
	Strings  map[string]string
	Flags    map[string]bool
	Lists    map[string][]string
	Vehicles []Vehicle
	Drivers  []Driver
}

// Validate checks input against the definition's rules. It returns either a
// normalized Submission or the full list of field-level errors, never both.
func (d *Definition) Validate(input map[string]any) (*Submission, []FieldError) {
	sub := &Submission{
		Strings: make(map[string]string),
		Flags:   make(map[string]bool),
		Lists:   make(map[string][]string),
	}
	var errs []FieldError

	for _, f := range d.Fields {
		raw, present := input[f.Name]
		if !present || raw == nil {
			if f.Required {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s is required", f.Name),
				})
				continue
			}
			applyDefault(sub, f)
			continue
		}

		switch f.Kind {
		case KindString, KindEmail, KindState:
			s, ok := raw.(string)
			if !ok {
				errs = append(errs, FieldError{f.Name, fmt.Sprintf("%s must be a string", f.Name)})
				continue
			}
			if fe := checkString(f, s, sub); fe != nil {
				errs = append(errs, *fe)
			}

		case KindBool:
			b, ok := raw.(bool)
			if !ok {
				errs = append(errs, FieldError{f.Name, fmt.Sprintf("%s must be a boolean", f.Name)})
				continue
			}
			sub.Flags[f.Name] = b

		case KindStringList:
			list, fe := coerceStringList(f.Name, raw)
			if fe != nil {
				errs = append(errs, *fe)
				continue
			}
			sub.Lists[f.Name] = list

		case KindVehicleList:
			var vehicles []Vehicle
			if fe := decodeList(f.Name, raw, &vehicles); fe != nil {
				errs = append(errs, *fe)
				continue
			}
			sub.Vehicles = vehicles

		case KindDriverList:
			var drivers []Driver
			if fe := decodeList(f.Name, raw, &drivers); fe != nil {
				errs = append(errs, *fe)
				continue
			}
			sub.Drivers = drivers
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return sub, nil
}

func checkString(f Field, s string, sub *Submission) *FieldError {
	if f.Required && len(s) < max(f.MinLen, 1) {
		if s == "" {
			return &FieldError{f.Name, fmt.Sprintf("%s is required", f.Name)}
		}
		return &FieldError{f.Name, fmt.Sprintf("%s must be at least %d characters", f.Name, f.MinLen)}
	}

	switch f.Kind {
	case KindEmail:
		if err := validate.Var(s, "email"); err != nil {
			return &FieldError{f.Name, fmt.Sprintf("%s must be a valid email address", f.Name)}
		}
	case KindState:
		code, err := utils.NormalizeUSState(s)
		if err != nil {
			return &FieldError{f.Name, fmt.Sprintf("%s must be a US state or territory", f.Name)}
		}
		s = code
	}

	sub.Strings[f.Name] = s
	return nil
}

func applyDefault(sub *Submission, f Field) {
	switch f.Kind {
	case KindString, KindEmail, KindState:
		sub.Strings[f.Name] = ""
	case KindBool:
		sub.Flags[f.Name] = false
	case KindStringList:
		sub.Lists[f.Name] = []string{}
	case KindVehicleList:
		sub.Vehicles = []Vehicle{}
	case KindDriverList:
		sub.Drivers = []Driver{}
	}
}

func coerceStringList(name string, raw any) ([]string, *FieldError) {
	items, ok := raw.([]any)
	if !ok {
		return nil, &FieldError{name, fmt.Sprintf("%s must be an array of strings", name)}
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &FieldError{name, fmt.Sprintf("%s must be an array of strings", name)}
		}
		list = append(list, s)
	}
	return list, nil
}

// decodeList round-trips the raw JSON value into the fixed sub-schema,
// dropping any attributes the sub-schema does not declare.
func decodeList[T any](name string, raw any, out *[]T) *FieldError {
	buf, err := json.Marshal(raw)
	if err != nil {
		return &FieldError{name, fmt.Sprintf("%s is not a valid array", name)}
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return &FieldError{name, fmt.Sprintf("%s is not a valid array", name)}
	}
	return nil
}
