package http

// Response messages returned by the HTTP layer. The resource-specific
// messages mirror the public API contract exactly, so tests compare against
// these constants.
const (
	msgUnauthorized         = "Unauthorized request"
	msgInvalidJSON          = "Invalid JSON was passed"
	msgInvalidData          = "invalid data provided"
	msgServerError          = "server error"
	msgIncorrectCredentials = "Incorrect user name or password"
	msgUsernameTaken        = "Username already taken"
	msgUserNotFound         = "User does not exist"
	msgHouseholdNotFound    = "Household does not exist"
	msgChoreNotFound        = "Chore does not exist"
	msgUnknownReference     = "Referenced record does not exist"
)
