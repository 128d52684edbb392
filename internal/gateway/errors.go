package gateway

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Op identifies a gateway operation for error reporting.
type Op string

const (
	OpReadFile        Op = "read_file"
	OpWriteFile       Op = "write_file"
	OpListDirectory   Op = "list_directory"
	OpDeleteFile      Op = "delete_file"
	OpCreateDirectory Op = "create_directory"
	OpFileInfo        Op = "file_info"
)

// errWrongKind marks a kind mismatch detected by the gateway itself, such as
// read_file on a directory. OS-level EISDIR/ENOTDIR classify the same way.
var errWrongKind = errors.New("wrong kind of filesystem entry")

// messages holds the per-operation error strings. notFound and wrongKind
// templates take the path; the io template takes the underlying error.
type messages struct {
	notFound  string
	wrongKind string
	io        string
}

var messageTable = map[Op]messages{
	OpReadFile:        {notFound: "File not found: %s", wrongKind: "Not a file: %s", io: "Error reading file: %v"},
	OpWriteFile:       {io: "Error writing file: %v"},
	OpListDirectory:   {notFound: "Directory not found: %s", wrongKind: "Not a directory: %s", io: "Error listing directory: %v"},
	OpDeleteFile:      {notFound: "File not found: %s", wrongKind: "Not a file: %s", io: "Error deleting file: %v"},
	OpCreateDirectory: {io: "Error creating directory: %v"},
	OpFileInfo:        {notFound: "Path not found: %s", io: "Error inspecting path: %v"},
}

// fail funnels any error from a filesystem call into the operation's stable
// user-facing message. Every gateway failure passes through here.
func fail(op Op, path string, err error) *Result {
	m := messageTable[op]
	switch {
	case m.notFound != "" && errors.Is(err, fs.ErrNotExist):
		return Failure(fmt.Sprintf(m.notFound, path))
	case m.wrongKind != "" && isWrongKind(err):
		return Failure(fmt.Sprintf(m.wrongKind, path))
	default:
		return Failure(fmt.Sprintf(m.io, err))
	}
}

func isWrongKind(err error) bool {
	return errors.Is(err, errWrongKind) ||
		errors.Is(err, syscall.EISDIR) ||
		errors.Is(err, syscall.ENOTDIR)
}

func requirePath(path string) error {
	if path == "" {
		return errors.New("path parameter required")
	}
	return nil
}
