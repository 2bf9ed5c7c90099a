package contract

// Result is the uniform envelope every operation returns to the caller.
// Failures carry a short human-readable description and an ErrorKind;
// they never carry a stack trace or a numeric code.
type Result struct {
	Success     bool           `json:"success"`
	Description string         `json:"description"`
	Payload     map[string]any `json:"payload,omitempty"`
	ErrorKind   ErrorKind      `json:"errorKind,omitempty"`
}

// OK builds a successful Result.
func OK(description string, payload map[string]any) *Result {
	return &Result{Success: true, Description: description, Payload: payload}
}

// Fail builds a failed Result from a description and kind.
func Fail(description string, kind ErrorKind) *Result {
	return &Result{Success: false, Description: description, ErrorKind: kind}
}

// FailErr builds a failed Result from an error, classifying its chain.
func FailErr(err error) *Result {
	return &Result{Success: false, Description: err.Error(), ErrorKind: ClassifyError(err)}
}
