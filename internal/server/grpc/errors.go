package grpc

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/securevault/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorValidation, codes.InvalidArgument},
	{common.ErrorAlreadyExists, codes.AlreadyExists},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
}

// toStatus maps a service error onto a gRPC status. The message is what
// users end up reading, so known errors keep their detail and everything
// else collapses to a generic internal error.
func toStatus(err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, message(err, e.err))
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// message drops the "<sentinel>: " prefix added by fmt.Errorf wrapping.
func message(err, sentinel error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}
