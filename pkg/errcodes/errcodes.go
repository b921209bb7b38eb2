package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"
	InputTooLong        failure.ErrorCode = "InputTooLong"

	OracleNotConfigured failure.ErrorCode = "OracleNotConfigured"
	OracleUnavailable   failure.ErrorCode = "OracleUnavailable"
	OracleBadResponse   failure.ErrorCode = "OracleBadResponse"
)
