package fileio_api

import "fmt"

// A ConfigurationError aborts a whole run: the input or output can't be opened,
// the input has the wrong format or a required column can't be located.
type ConfigurationError struct {
	// The file the error applies to
	Path string

	// A human readable description of the problem
	Reason string

	// The underlying error, if any
	Err error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Create a new ConfigurationError
func NewConfigurationError(path string, err error, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
