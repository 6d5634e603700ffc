package config

// ErrAlreadyParsed is returned when parsing the flags
// of a Parser a second time
var ErrAlreadyParsed = errAlreadyParsed{}

type errAlreadyParsed struct{}

func (errAlreadyParsed) Error() string {
	return "flags already parsed"
}

// ErrParseFlags is returned when the flags cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

// Unwrap returns the cause of the failure
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
