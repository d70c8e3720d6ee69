package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/datosprovida/dashboard/internal/apperrors"
)

// maximum number of bytes read from an error response body
const maxErrorBodySize = 64 * 1024

const (
	msgSessionExpired = "Su sesión ha caducado. Inicie sesión de nuevo."
	msgInvalidSession = "Su sesión no es válida. Inicie sesión de nuevo."
	msgForbidden      = "No tiene permiso para acceder a este recurso."
	msgNotFound       = "No se encontró el recurso solicitado."
	msgInvalidRequest = "Solicitud no válida. Revise los datos e inténtelo de nuevo."
	msgRateLimited    = "Demasiadas solicitudes. Inténtelo de nuevo en unos momentos."
	msgUnavailable    = "El servicio no está disponible temporalmente. Inténtelo más tarde."
	msgTimeout        = "La solicitud tardó demasiado. Inténtelo de nuevo."
	msgUnreachable    = "No se pudo conectar con el servidor. Compruebe su conexión e inténtelo de nuevo."
	msgGeneric        = "Se produjo un error. Inténtelo de nuevo."
)

// ResponseError is returned by Client.Do when the API answers with a status outside the 2xx range
type ResponseError struct {
	StatusCode int
	Status     string
	ErrorCode  apperrors.ErrorCode
	Message    string
	Body       []byte
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api status %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api status %d", e.StatusCode)
}

// newResponseError reads (and closes) the response body.
// The API reports errors as {"error_code": "...", "message": "..."}; other bodies are kept as-is.
func newResponseError(res *http.Response) *ResponseError {
	e := &ResponseError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}
	if res.Body == nil {
		return e
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	if err != nil {
		return e
	}
	e.Body = body

	var apiErr struct {
		ErrorCode apperrors.ErrorCode `json:"error_code"`
		Message   string              `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil {
		e.ErrorCode = apiErr.ErrorCode
		e.Message = apiErr.Message
	}
	return e
}

// UserMessage translates a request error into a message that can be shown to the end user.
// Use err.Error() for logging.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var resErr *ResponseError
	if errors.As(err, &resErr) {
		if msg, ok := errorCodeMessage(resErr); ok {
			return msg
		}

		switch resErr.StatusCode {
		case http.StatusUnauthorized:
			return msgInvalidSession
		case http.StatusForbidden:
			return msgForbidden
		case http.StatusNotFound:
			return msgNotFound
		case http.StatusBadRequest:
			return invalidRequestMessage(resErr)
		case http.StatusTooManyRequests:
			return msgRateLimited
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return msgUnavailable
		default:
			return msgGeneric
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return msgTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return msgUnreachable
	}

	return msgGeneric
}

// errorCodeMessage maps the API error_code, when present, to a user message.
// A known code takes precedence over the status.
func errorCodeMessage(e *ResponseError) (string, bool) {
	switch e.ErrorCode {
	case apperrors.ErrCodeAccessTokenExpired:
		return msgSessionExpired, true
	case apperrors.ErrCodeAuthenticationFailure:
		return msgInvalidSession, true
	case apperrors.ErrCodeForbidden:
		return msgForbidden, true
	case apperrors.ErrCodeResourceNotFound:
		return msgNotFound, true
	case apperrors.ErrCodeInvalidRequest:
		return invalidRequestMessage(e), true
	case apperrors.ErrCodeRateLimitExceeded:
		return msgRateLimited, true
	case apperrors.ErrCodeInternalError:
		return msgUnavailable, true
	}
	return "", false
}

// validation errors from the API are safe to show
func invalidRequestMessage(e *ResponseError) string {
	if e.Message != "" {
		return e.Message
	}
	return msgInvalidRequest
}
