package protocol

import (
	"encoding/json"
	"io"
)

// Envelope is the single response document written per invocation
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Succeeded returns a success envelope carrying data, which may be nil
func Succeeded(data json.RawMessage) Envelope {
	return Envelope{Success: true, Data: data}
}

// Failed returns an error envelope with message
func Failed(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// FailedWith returns an error envelope describing err
func FailedWith(err error) Envelope {
	return Failed(err.Error())
}

// Write encodes env to w as one line of JSON
func Write(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(env)
}
