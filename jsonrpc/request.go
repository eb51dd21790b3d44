package jsonrpc

import (
	"bytes"
	"encoding/json"
)

// Version is the JSON-RPC protocol version tag carried by every envelope
const Version = "2.0"

// Request represents a validated JSON-RPC request or notification.
// The two are discriminated at parse time: a request carries an id, a
// notification has no id field at all. Use IsNotification to tell them apart.
type Request struct {
	Version string
	Method  string
	Params  json.RawMessage

	id *ID
}

// NewRequest creates a new Request object. A nil id produces a notification.
func NewRequest(method string, params json.RawMessage, id interface{}) Request {
	r := Request{
		Version: Version,
		Method:  method,
		Params:  params,
	}
	if id != nil {
		v, err := NewID(id)
		if err == nil {
			r.id = &v
		}
	}
	return r
}

// IsNotification reports whether the request has no id and therefore
// expects no response body.
func (r Request) IsNotification() bool {
	return r.id == nil
}

// ID returns the request id. For notifications it returns the zero ID,
// which marshals as null.
func (r Request) ID() ID {
	if r.id == nil {
		return ID{}
	}
	return *r.id
}

var _ json.Marshaler = Request{}

// MarshalJSON implements json.Marshaler. Notifications omit the id key
// entirely rather than emitting "id": null.
func (r Request) MarshalJSON() ([]byte, error) {
	type wire struct {
		Version string          `json:"jsonrpc"`
		ID      *ID             `json:"id,omitempty"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}
	return json.Marshal(wire{
		Version: r.Version,
		ID:      r.id,
		Method:  r.Method,
		Params:  r.Params,
	})
}

// wireRequest is the raw envelope shape used during structural validation.
// RawMessage fields let absent keys be told apart from null values.
type wireRequest struct {
	Version json.RawMessage `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  json.RawMessage `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// Parse validates a raw message against the envelope shape and produces
// either a well-formed Request or a definite protocol error. All structural
// checks happen here, before any method dispatch:
//
//   - body is not valid JSON, or not an object: parse error
//   - version tag is not "2.0", method missing or not a string,
//     id present but null or not a string/number: invalid request
//   - params present but not an object: invalid request
//
// An envelope whose id key is absent entirely parses as a notification.
func Parse(data []byte) (Request, *Error) {
	var raw wireRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		if json.Valid(data) {
			return Request{}, NewError(ErrInvalidRequest, "request must be a JSON object")
		}
		return Request{}, NewError(ErrParse, err.Error())
	}

	var version string
	if err := json.Unmarshal(raw.Version, &version); err != nil || version != Version {
		return Request{}, NewError(ErrInvalidRequest, `jsonrpc must be "2.0"`)
	}

	var method string
	if err := json.Unmarshal(raw.Method, &method); err != nil || method == "" {
		return Request{}, NewError(ErrInvalidRequest, "method must be a non-empty string")
	}

	req := Request{
		Version: version,
		Method:  method,
	}

	if len(raw.Params) > 0 && !bytes.Equal(raw.Params, []byte("null")) {
		if raw.Params[0] != '{' {
			return Request{}, NewError(ErrInvalidRequest, "params must be an object")
		}
		req.Params = raw.Params
	}

	if len(raw.ID) > 0 {
		var id ID
		if err := id.UnmarshalJSON(raw.ID); err != nil || id.IsNil() {
			return Request{}, NewError(ErrInvalidRequest, "id must be a string or number")
		}
		req.id = &id
	}

	return req, nil
}
