package validators

// ValidationError reports a request body that violates a schema rule or
// the password policy. The message is written for direct inclusion in a
// 400 response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
