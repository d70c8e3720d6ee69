package apperrors

// ErrorCode is the error_code field of a Datos Provida API error response:
//
//	{"error_code": "resource_not_found", "message": "..."}
type ErrorCode string

// codes the dashboard reacts to - anything else is handled by HTTP status alone
const (
	ErrCodeAccessTokenExpired    ErrorCode = "access_token_expired"
	ErrCodeAuthenticationFailure ErrorCode = "authentication_error"
	ErrCodeForbidden             ErrorCode = "forbidden"
	ErrCodeInternalError         ErrorCode = "internal_error"
	ErrCodeInvalidRequest        ErrorCode = "invalid_request"
	ErrCodeRateLimitExceeded     ErrorCode = "rate_limit_exceeded"
	ErrCodeResourceNotFound      ErrorCode = "resource_not_found"
)
