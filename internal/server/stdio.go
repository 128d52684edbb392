package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"lean-mcp/internal/gateway"
)

// maxLineBytes bounds a single stdio request line; write_file payloads
// arrive inline, so this is generous.
const maxLineBytes = 10 * 1024 * 1024

// ServeStdio reads newline-delimited CallRequest JSON from r and writes one
// Result line per request to w. Malformed lines and unknown tools produce
// Failure lines; only EOF or an I/O error ends the loop.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var res *gateway.Result
		var req CallRequest
		if err := json.Unmarshal(line, &req); err != nil {
			res = gateway.Failure("invalid json: " + err.Error())
		} else if spec, ok := s.tools[req.Name]; ok {
			res = spec.invoke(ctx, req.Arguments)
		} else {
			res = gateway.Failure("unknown tool: " + req.Name)
		}

		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	return scanner.Err()
}
