package errs

import "strings"

// FieldError points at one invalid field of a request payload:
//
//	{"field": "email", "error": "must be a valid email address"}
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ActionType string

const ActionTypeRedirect ActionType = "redirect"

// Action is an optional follow-up the client should perform.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the body of every failed response.
//
// Code is machine readable ("USER_INVALID", "USERNAME_TAKEN"), Message is
// for humans. Override marks messages that are safe to show to end users
// verbatim; generic 500s never set it.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches targets by status: errors.Is(err, errs.ErrConflict) holds for
// any 409, and a target without a status matches every HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	return t.Status == 0 || t.Status == e.Status
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
