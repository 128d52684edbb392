package gateway

// Result is the uniform outcome of a tool invocation: either Success with
// operation-specific Data, or a short human-readable Error message.
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *string        `json:"error,omitempty"`
}

// Entry is one element of a directory listing.
type Entry struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Size int64  `json:"size,omitempty"`
}

// ReadFileArgs are the arguments for the read_file tool.
type ReadFileArgs struct {
	Path string `json:"path" jsonschema:"required,description=The path to the file to read."`
}

// WriteFileArgs are the arguments for the write_file tool.
type WriteFileArgs struct {
	Path    string `json:"path" jsonschema:"required,description=The path to the file to write."`
	Content string `json:"content" jsonschema:"required,description=The content to write to the file."`
}

// ListDirectoryArgs are the arguments for the list_directory tool.
type ListDirectoryArgs struct {
	Path string `json:"path,omitempty" jsonschema:"description=The path to the directory to list. Defaults to the current directory."`
}

// DeleteFileArgs are the arguments for the delete_file tool.
type DeleteFileArgs struct {
	Path string `json:"path" jsonschema:"required,description=The path to the file to delete."`
}

// CreateDirectoryArgs are the arguments for the create_directory tool.
type CreateDirectoryArgs struct {
	Path string `json:"path" jsonschema:"required,description=The path to the directory to create."`
}

// FileInfoArgs are the arguments for the file_info tool.
type FileInfoArgs struct {
	Path string `json:"path" jsonschema:"required,description=The path to the file or directory."`
}

// Validate reports whether required arguments are present.
func (a ReadFileArgs) Validate() error { return requirePath(a.Path) }

// Validate reports whether required arguments are present.
func (a WriteFileArgs) Validate() error { return requirePath(a.Path) }

// Validate always succeeds; an empty path means the current directory.
func (a ListDirectoryArgs) Validate() error { return nil }

// Validate reports whether required arguments are present.
func (a DeleteFileArgs) Validate() error { return requirePath(a.Path) }

// Validate reports whether required arguments are present.
func (a CreateDirectoryArgs) Validate() error { return requirePath(a.Path) }

// Validate reports whether required arguments are present.
func (a FileInfoArgs) Validate() error { return requirePath(a.Path) }

// Success builds an ok Result carrying the given payload.
func Success(data map[string]any) *Result {
	return &Result{Success: true, Data: data}
}

// Failure builds an error Result carrying the given message.
func Failure(message string) *Result {
	return &Result{Success: false, Error: &message}
}
