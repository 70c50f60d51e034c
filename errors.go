package pmsnappy

import "errors"

// Errors returned by the pmsnappy package.
var (
	ErrDuplicateParameter     = errors.New("pmsnappy: multiple occurrence of extension parameter")
	ErrIllegalParameterValue  = errors.New("pmsnappy: illegal extension parameter value")
	ErrUnknownParameter       = errors.New("pmsnappy: unknown extension parameter")
	ErrInvalidAcceptParameter = errors.New("pmsnappy: no-context-takeover request not supported by client offer")
	ErrInvalidResponse        = errors.New("pmsnappy: invalid response")
	ErrCorruptStream          = errors.New("pmsnappy: corrupt snappy framed stream")
	ErrChecksum               = errors.New("pmsnappy: snappy framed stream checksum mismatch")
)

// ParameterError reports which extension parameter failed validation.
type ParameterError struct {
	Param string
	Err   error
}

func (e *ParameterError) Error() string {
	return e.Err.Error() + ": " + e.Param
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}
