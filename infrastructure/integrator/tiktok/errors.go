package tiktok

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

type ErrorKind string

const (
	// ErrorKindProvider is any failure of the remote call itself.
	ErrorKindProvider ErrorKind = "provider"
	// ErrorKindResponseDataNotValid is a payload or a response that does not
	// match its descriptor. Stage tells which one.
	ErrorKindResponseDataNotValid ErrorKind = "response_data_not_valid"
)

type Stage string

const (
	StageRequest  Stage = "request"
	StageCall     Stage = "call"
	StageResponse Stage = "response"
)

var (
	ErrProvider             = errors.New("tiktok provider error")
	ErrResponseDataNotValid = errors.New("tiktok response data not valid")
	ErrMissingAccessToken   = errors.New("tiktok access token is required")
)

// Param is an identifying parameter of an operation, kept in call order for
// the error message.
type Param struct {
	Name  string
	Value any
}

// ClientError is the normalized failure of a TiktokIntegrator operation.
type ClientError struct {
	Kind        ErrorKind
	Stage       Stage
	Operation   string // "create campaign"
	Subject     string // "campaign_details"
	AccessToken string
	Params      []Param
	Data        any    // payload sent or response received
	Reason      string // validation failure, empty for provider errors
	Err         error
}

func (e *ClientError) Error() string {
	params := e.formatParams()

	switch {
	case e.Kind == ErrorKindProvider:
		return fmt.Sprintf("Unable to %s (%s). Error: %s", e.Operation, params, rootCause(e.Err))
	case e.Stage == StageRequest:
		return fmt.Sprintf("Failed to validate %s before calling provider (%s): %s", e.Subject, params, e.Reason)
	default:
		return fmt.Sprintf("Data returned by provider for %s (%s, response_data=%s) is not valid: %s", e.Operation, e.formatParamsOnly(), formatData(e.Data), e.Reason)
	}
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Is(target error) bool {
	switch e.Kind {
	case ErrorKindProvider:
		return target == ErrProvider
	case ErrorKindResponseDataNotValid:
		return target == ErrResponseDataNotValid
	}
	return false
}

// AdvertiserID returns the advertiser the operation was scoped to, if any.
func (e *ClientError) AdvertiserID() string {
	for _, p := range e.Params {
		if p.Name == "advertiser_id" {
			return fmt.Sprint(p.Value)
		}
	}
	return ""
}

func (e *ClientError) formatParamsOnly() string {
	parts := make([]string, 0, len(e.Params)+1)
	parts = append(parts, "user_access_token="+e.AccessToken)
	for _, p := range e.Params {
		parts = append(parts, fmt.Sprintf("%s=%s", p.Name, formatData(p.Value)))
	}
	return strings.Join(parts, ", ")
}

func (e *ClientError) formatParams() string {
	params := e.formatParamsOnly()
	if e.Data == nil || e.Subject == "" {
		return params
	}
	return fmt.Sprintf("%s, %s=%s", params, e.Subject, formatData(e.Data))
}

var redactedKeys = map[string]bool{
	"secret":       true,
	"access_token": true,
}

func formatData(data any) string {
	switch value := data.(type) {
	case string:
		return value
	case map[string]any:
		masked := make(map[string]any, len(value))
		for k, v := range value {
			if redactedKeys[k] {
				v = "***"
			}
			masked[k] = v
		}
		data = masked
	}

	encoded, err := utils.MarshalToString(data)
	if err != nil {
		return fmt.Sprint(data)
	}
	return encoded
}

func rootCause(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
