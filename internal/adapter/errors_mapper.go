package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// backendErrorBody covers the error shapes of GoTrue and PostgREST.
type backendErrorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapAuthError is mapHTTPError for the token endpoint, where 400 and 401
// mean the credentials (or refresh token) were rejected.
func mapAuthError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, errorMessage(resp.Body()))
	}
	return mapHTTPError(resp)
}

func errorMessage(raw []byte) string {
	body := strings.TrimSpace(string(raw))

	var parsed backendErrorBody
	if err := json.Unmarshal(raw, &parsed); err == nil {
		for _, msg := range []string{parsed.Message, parsed.Msg, parsed.ErrorDescription, parsed.Error} {
			if msg != "" {
				return msg
			}
		}
	}

	return body
}
