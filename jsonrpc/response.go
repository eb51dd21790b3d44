package jsonrpc

// Result represents an arbitrary response payload
type Result interface{}

// Response represents a JSON-RPC response object
type Response struct {
	Version string `json:"jsonrpc"`
	Result  Result `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      ID     `json:"id"`
}

// NewResponse creates a new Response object. The id may be a raw string or
// number, or an ID echoed from the request; a nil id marshals as null.
func NewResponse(id interface{}, result Result, err *Error) Response {
	respID, _ := NewID(id)

	return Response{
		Version: Version,
		ID:      respID,
		Result:  result,
		Error:   err,
	}
}
