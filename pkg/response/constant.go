package response

const (
	// DateFormat is the wire format for date-only values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetime values.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"

	// DefaultErrorMessage is returned for unexpected internal errors.
	DefaultErrorMessage = "internal server error"
)
