package advisor

// Status says whether advisory text came back.
type Status int

const (
	// StatusUnavailable is the zero value: no suggestion to show.
	StatusUnavailable Status = iota
	StatusAvailable
)

func (s Status) String() string {
	if s == StatusAvailable {
		return "available"
	}
	return "unavailable"
}

// Result is the outcome of one Suggest call. Callers show Text only when
// OK reports true. Reason is for logs.
type Result struct {
	Status Status
	Text   string
	Reason string
}

// Unavailable returns a result with no text.
func Unavailable(reason string) Result {
	return Result{Status: StatusUnavailable, Reason: reason}
}

// Available wraps generated text.
func Available(text string) Result {
	return Result{Status: StatusAvailable, Text: text}
}

// OK reports whether the result carries text.
func (r Result) OK() bool {
	return r.Status == StatusAvailable
}
