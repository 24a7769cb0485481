package entities

import (
	"errors"
	"fmt"
)

// LeadSubmission is the flat, text-only lead forwarded to the relay. The
// relay credential is attached by the gateway, not stored here.
type LeadSubmission struct {
	Name               string `json:"name"`
	Mobile             string `json:"mobile"`
	Address            string `json:"address"`
	PropertyType       string `json:"propertyType"`
	PropertySize       string `json:"propertySize"`
	SurfaceCondition   string `json:"surfaceCondition"`
	AdditionalServices string `json:"additionalServices"`
	TotalCost          string `json:"totalCost"`
}

// RelayReceipt is what the relay answered on success.
type RelayReceipt struct {
	Message string `json:"message"`
}

var (
	ErrRelayTransport = errors.New("relay transport error")
	ErrRelayRejected  = errors.New("relay rejected submission")
)

// TransportError reports that the relay could not be reached or its answer
// could not be read (network, DNS, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRelayTransport, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrRelayTransport, e.Err}
}

// RelayRejectedError reports an answer without success=true, including
// answers that are not the expected JSON shape.
type RelayRejectedError struct {
	StatusCode int
	Message    string
}

func (e *RelayRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status=%d", ErrRelayRejected, e.StatusCode)
	}
	return fmt.Sprintf("%s: status=%d message=%q", ErrRelayRejected, e.StatusCode, e.Message)
}

func (e *RelayRejectedError) Unwrap() error {
	return ErrRelayRejected
}
