package errors

import (
	"context"
	"errors"
	"net"
)

// Origin tells which layer produced an error message
type Origin string

// Origins
const (
	OriginServer    Origin = "server"
	OriginClient    Origin = "client"
	OriginTransport Origin = "transport"
)

// MetaOrigin is the metadata key holding the Origin
const MetaOrigin = "origin"

// MetaErrorCode holds the errorCode field of a failed response envelope
const MetaErrorCode = "error_code"

// MetaStatus holds the HTTP status of a failed response
const MetaStatus = "http_status"

// GetOrigin returns the origin recorded on err, or "" when none was recorded
func GetOrigin(err error) Origin {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	o, _ := meta[MetaOrigin].(string)
	return Origin(o)
}

// FromResponse builds the error for a failed API call. The server message is
// kept verbatim; an empty message falls back to the status text.
func FromResponse(status int, message, errorCode string) *Error {
	code := FromHTTPStatus(status)
	if code == CodeOK {
		// success=false inside a 2xx envelope
		code = CodeFailedPrecondition
	}
	if message == "" {
		message = defaultStatusMessage(code)
	}

	err := New(code, message).WithOrigin(OriginServer).WithMeta(MetaStatus, status)
	if errorCode != "" {
		err.WithMeta(MetaErrorCode, errorCode)
	}
	return err
}

// Client creates a client-side rejection that never reached the network
func Client(code Code, message string) *Error {
	return New(code, message).WithOrigin(OriginClient)
}

// Transport wraps a failure to obtain a response at all
func Transport(err error, message string) *Error {
	if err == nil {
		return nil
	}

	code := CodeUnavailable
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeDeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = CodeCanceled
	case errors.As(err, &netErr) && netErr.Timeout():
		code = CodeDeadlineExceeded
	}

	return WrapWithCode(err, code, message).WithOrigin(OriginTransport)
}

// IsAuthFailure reports whether err should end the current session
func IsAuthFailure(err error) bool {
	code := GetCode(err)
	return code == CodeUnauthenticated || code == CodePermissionDenied
}

// UserMessage picks what to show the user for err. Server and client messages
// are shown verbatim; anything else gets fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	switch GetOrigin(err) {
	case OriginServer, OriginClient:
		var e *Error
		if errors.As(err, &e) {
			// report the innermost message carrying the origin
			for {
				var inner *Error
				if e.Cause == nil || !errors.As(e.Cause, &inner) || GetOrigin(inner) == "" {
					break
				}
				e = inner
			}
			if e.Message != "" {
				return e.Message
			}
		}
	}
	return fallback
}

func defaultStatusMessage(code Code) string {
	switch code {
	case CodeUnauthenticated:
		return "로그인이 필요합니다."
	case CodePermissionDenied:
		return "권한이 없습니다."
	case CodeNotFound:
		return "요청한 정보를 찾을 수 없습니다."
	default:
		return "요청을 처리하지 못했습니다."
	}
}
