package server

import "encoding/json"

// Tool describes an exposed tool and its input schema.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

// CallRequest is the envelope for a tool invocation. Arguments stay raw so
// each tool can decode them strictly against its own argument struct.
type CallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}
