package locate

// ErrorCode classifies a location-provider failure so callers can pick
// the right recovery messaging. Permission denial and positioning
// failure are distinct, user-facing classes.
type ErrorCode string

const (
	ErrPermissionDenied    ErrorCode = "denied"
	ErrPositionUnavailable ErrorCode = "unavailable"
	ErrTimeout             ErrorCode = "timeout"
	ErrUnknown             ErrorCode = "unknown"
)

type LocationError struct {
	Code ErrorCode
	Err  error
}

func (e *LocationError) Error() string {
	switch e.Code {
	case ErrPermissionDenied:
		return "location permission denied"
	case ErrPositionUnavailable:
		return "current position unavailable"
	case ErrTimeout:
		return "timed out waiting for a position fix"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown location error"
	}
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// CodeOf returns the classification of err, or ErrUnknown for anything
// that is not a *LocationError.
func CodeOf(err error) ErrorCode {
	if le, ok := err.(*LocationError); ok {
		return le.Code
	}
	return ErrUnknown
}
