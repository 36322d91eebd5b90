package dtos

// ValidationErrorDetail is one entry of the field-indexed error set returned
// on HTTP 400.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
