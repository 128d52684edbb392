package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"lean-mcp/internal/gateway"
)

// toolSpec couples a tool's published schema with its invocation path.
type toolSpec struct {
	Description string
	InputSchema any
	invoke      func(ctx context.Context, raw json.RawMessage) *gateway.Result
}

// newRegistry builds the static tool table. Populated once at startup and
// read-only thereafter.
func newRegistry(g *gateway.Gateway) map[string]toolSpec {
	return map[string]toolSpec{
		"read_file": {
			Description: "Read and return the contents of a file.",
			InputSchema: generateSchema[gateway.ReadFileArgs](),
			invoke:      handler(g.ReadFile),
		},
		"write_file": {
			Description: "Write content to a file, creating it and any parent directories if needed.",
			InputSchema: generateSchema[gateway.WriteFileArgs](),
			invoke:      handler(g.WriteFile),
		},
		"list_directory": {
			Description: "List all files and directories in the specified path. Defaults to the current directory.",
			InputSchema: generateSchema[gateway.ListDirectoryArgs](),
			invoke:      handler(g.ListDirectory),
		},
		"delete_file": {
			Description: "Delete a file.",
			InputSchema: generateSchema[gateway.DeleteFileArgs](),
			invoke:      handler(g.DeleteFile),
		},
		"create_directory": {
			Description: "Create a new directory, including parent directories if needed.",
			InputSchema: generateSchema[gateway.CreateDirectoryArgs](),
			invoke:      handler(g.CreateDirectory),
		},
		"file_info": {
			Description: "Get detailed information about a file or directory.",
			InputSchema: generateSchema[gateway.FileInfoArgs](),
			invoke:      handler(g.FileInfo),
		},
	}
}

// validator is satisfied by every gateway argument struct.
type validator interface {
	Validate() error
}

// handler adapts one typed gateway method into the registry's uniform
// invocation shape: strict decode, validate, then call. Argument problems
// surface as Failure results, never as transport faults.
func handler[T validator](op func(context.Context, T) *gateway.Result) func(context.Context, json.RawMessage) *gateway.Result {
	return func(ctx context.Context, raw json.RawMessage) *gateway.Result {
		args, err := decode[T](raw)
		if err != nil {
			return gateway.Failure(fmt.Sprintf("invalid arguments: %v", err))
		}
		return op(ctx, args)
	}
}

// decode strictly parses raw arguments into T, rejecting unknown fields,
// then runs the struct's own validation.
func decode[T validator](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&args); err != nil {
		return args, err
	}
	return args, args.Validate()
}

// generateSchema reflects a self-contained JSON schema from an argument
// struct, honoring the jsonschema tags for required fields and descriptions.
func generateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	return reflector.Reflect(&v)
}
