package command

// Status is the outcome class of a dispatched invocation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the uniform envelope returned for every dispatched invocation,
// regardless of which handler kind ran. Exactly one is produced per
// invocation; it is never mutated after construction.
type Result struct {
	Status  Status         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Success builds a success envelope with just a message.
func Success(message string) *Result {
	return &Result{Status: StatusSuccess, Message: message}
}

// SuccessData builds a success envelope carrying structured data.
func SuccessData(message string, data map[string]any) *Result {
	return &Result{Status: StatusSuccess, Message: message, Data: data}
}

// Failure maps a fault into an error envelope: a human-readable summary in
// Message and the underlying detail in Error. The fault itself stops here.
func Failure(message string, err error) *Result {
	r := &Result{Status: StatusError, Message: message}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
