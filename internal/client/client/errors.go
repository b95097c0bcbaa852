package client

import "github.com/dmitrijs2005/securevault/internal/common"

var (
	ErrUnavailable  = common.ErrorUnavailable
	ErrUnauthorized = common.ErrorUnauthorized
	ErrNoSession    = common.ErrNoSession
)

// RemoteError carries the message reported by the server together with the
// sentinel the status code maps to. Error returns the server message as is,
// so it can be shown to the user verbatim.
type RemoteError struct {
	Kind    error
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}
