package models

// ChatRequest is the single-field chat form submission
type ChatRequest struct {
	Input string `json:"input" schema:"input" validate:"required,notblank"`
}

// FieldErrors maps a form field name to its validation messages
type FieldErrors map[string][]string

// Add appends a message for the given field
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// ValidationResult is either valid, carrying the accepted input, or invalid, carrying field errors.
type ValidationResult struct {
	Input       string
	FieldErrors FieldErrors
}

// Valid builds a successful result
func Valid(input string) ValidationResult {
	return ValidationResult{Input: input}
}

// Invalid builds a failed result
func Invalid(errs FieldErrors) ValidationResult {
	return ValidationResult{FieldErrors: errs}
}

func (r ValidationResult) Valid() bool {
	return len(r.FieldErrors) == 0
}

// FirstError returns the first message found, preferring the input field.
func (r ValidationResult) FirstError() string {
	if msgs := r.FieldErrors[InputField]; len(msgs) > 0 {
		return msgs[0]
	}
	for _, msgs := range r.FieldErrors {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// FormState is the redisplay-ready state of the chat form
type FormState struct {
	Valid  bool        `json:"valid"`
	Data   ChatRequest `json:"data"`
	Errors FieldErrors `json:"errors,omitempty"`
}

// CompletionResponse carries the reply text extracted from the upstream payload
type CompletionResponse struct {
	Text string `json:"text"`
}
