package provider

// RejectedError is returned when a provider answers with a non-200 status.
// The status code is kept for server-side logging only; Error deliberately
// renders the generic retry message so nothing provider-specific can leak to
// the end user.
type RejectedError struct {
	Provider string
	Status   int
}

func (e *RejectedError) Error() string {
	return "payment failed, please try again later"
}
