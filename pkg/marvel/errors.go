package marvel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrInvalidEndpoint    = errors.New("invalid endpoint")
	ErrMissingCredentials = errors.New("missing API credentials")
	ErrSchemaNotFound     = errors.New("no schema registered for resource type")
	ErrConfigRequired     = errors.New("config is required")
	ErrFetcherRequired    = errors.New("fetcher is required")
	ErrEmptyResult        = errors.New("query returned no results")
	ErrSubTypeEqualsBase  = errors.New("sub-query type equals base type")
	ErrUnparseableURI     = errors.New("cannot parse resource URI")
)

// APIError represents an error body returned by the gateway. The gateway is
// inconsistent about the code field: conflict-style errors carry a numeric
// code, credential errors carry a string code plus "message" instead of
// "status".
type APIError struct {
	Code   string `json:"-"`
	Status string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Status)
}

// UnmarshalJSON accepts both error body shapes the gateway produces.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code    json.RawMessage `json:"code"`
		Status  string          `json:"status"`
		Message string          `json:"message"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshaling API error: %w", err)
	}

	if len(raw.Code) > 0 {
		var num int
		if json.Unmarshal(raw.Code, &num) == nil {
			e.Code = strconv.Itoa(num)
		} else {
			var str string
			if json.Unmarshal(raw.Code, &str) == nil {
				e.Code = str
			}
		}
	}

	e.Status = raw.Status
	if e.Status == "" {
		e.Status = raw.Message
	}

	return nil
}

// TransportError wraps a network, HTTP, or envelope failure. It is always
// surfaced to the caller and never retried by the query engine.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap exposes the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParameterValidationError reports parameters rejected by a type schema. It
// is only returned when strict parameter validation is configured; otherwise
// the failure is recorded on the query's Validated flags.
type ParameterValidationError struct {
	Type ResourceType
	Err  error
}

// Error implements the error interface.
func (e *ParameterValidationError) Error() string {
	return fmt.Sprintf("invalid parameters for %s: %v", e.Type, e.Err)
}

// Unwrap exposes the underlying validation error.
func (e *ParameterValidationError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a gateway not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == "404"
	}

	return false
}

// IsInvalidCredentials checks if the error is a gateway credential error.
func IsInvalidCredentials(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == "InvalidCredentials" || apiErr.Code == "401"
	}

	return false
}

// IsRateLimited checks if the error is a gateway rate-limit error.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == "RequestThrottled" || apiErr.Code == "429"
	}

	return false
}
