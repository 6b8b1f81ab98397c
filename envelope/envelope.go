// Package envelope isolates the parsing of backend response bodies.
//
// The backend usually answers with JSON shaped as
// {status, data?, message?}, but some endpoints prepend extraneous text
// before the JSON body, and the check-in/out endpoint reports its outcome
// through literal status strings. All of that tolerance lives here so call
// sites never string-match on raw bodies.
package envelope

import (
	"encoding/json"
	"strings"

	"fieldreport/bizerror"
)

const (
	StatusSuccess = "success"

	// StatusAlreadyProcessed is the backend's idempotent-duplicate marker
	// for a repeated check-in/out submission.
	StatusAlreadyProcessed = "success-Already CheckIN or CheckOut"

	// StatusRowUpdated is the backend's marker for an applied
	// check-in/out submission.
	StatusRowUpdated = "success-Record or Row updated ='1'"
)

type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// IsSuccess reports whether the status denotes any successful outcome,
// including the literal check-in/out markers.
func (e *Envelope) IsSuccess() bool {
	return strings.HasPrefix(e.Status, StatusSuccess)
}

func (e *Envelope) IsAlreadyProcessed() bool {
	return e.Status == StatusAlreadyProcessed
}

// Parse attempts a strict JSON parse first. If that fails it re-slices the
// text from the first '{' (tolerating textual prefixes) and retries; as a
// last resort it recognizes the known literal markers inside the raw text.
func Parse(text string) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal([]byte(text), &e); err == nil && e.Status != "" {
		return &e, nil
	}

	if idx := strings.Index(text, "{"); idx > 0 {
		e = Envelope{}
		if err := json.Unmarshal([]byte(text[idx:]), &e); err == nil && e.Status != "" {
			return &e, nil
		}
	}

	for _, marker := range []string{StatusAlreadyProcessed, StatusRowUpdated} {
		if strings.Contains(text, `"status":"`+marker+`"`) {
			return &Envelope{Status: marker}, nil
		}
	}

	return nil, bizerror.WrapMalformedResponse(text)
}
