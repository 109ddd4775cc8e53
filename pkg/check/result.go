package check

// Status represents the outcome of a probe.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single probe.
type Result struct {
	Name   string // display name, e.g. "Node.js"
	Status Status // OK or FAIL
	Output string // trimmed version output; empty on failure
	Err    error  // underlying execution error for failures
}

// OK returns true if the probe passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
