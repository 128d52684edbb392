// Package gateway maps named filesystem tools onto the local filesystem and
// funnels every failure into a stable, user-facing error message. It holds no
// cross-call state; each operation is a single request/response exchange with
// one filesystem side effect.
package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Gateway executes filesystem tool calls. Safe for concurrent use: the only
// mutable state is the filesystem itself.
type Gateway struct {
	log *zap.Logger
}

// New constructs a Gateway. A nil logger disables logging.
func New(log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{log: log}
}

// run wraps one tool invocation with the call/success/failure log lines every
// operation shares.
func (g *Gateway) run(op Op, path string, fn func() *Result) *Result {
	g.log.Info("tool called", zap.String("tool", string(op)), zap.String("path", path))
	res := fn()
	if res.Success {
		g.log.Info("tool completed", zap.String("tool", string(op)), zap.String("path", path))
	} else {
		g.log.Error("tool failed", zap.String("tool", string(op)), zap.String("path", path), zap.String("error", *res.Error))
	}
	return res
}

// ReadFile reads an entire file as text.
func (g *Gateway) ReadFile(ctx context.Context, args ReadFileArgs) *Result {
	return g.run(OpReadFile, args.Path, func() *Result {
		info, err := os.Stat(args.Path)
		if err != nil {
			return fail(OpReadFile, args.Path, err)
		}
		if info.IsDir() {
			return fail(OpReadFile, args.Path, errWrongKind)
		}
		data, err := os.ReadFile(args.Path)
		if err != nil {
			return fail(OpReadFile, args.Path, err)
		}
		return Success(map[string]any{
			"path":    args.Path,
			"content": string(data),
			"size":    len(data),
		})
	})
}

// WriteFile creates parent directories as needed, then overwrites (or
// creates) the file with the given content.
func (g *Gateway) WriteFile(ctx context.Context, args WriteFileArgs) *Result {
	return g.run(OpWriteFile, args.Path, func() *Result {
		if err := os.MkdirAll(filepath.Dir(args.Path), 0o755); err != nil {
			return fail(OpWriteFile, args.Path, err)
		}
		if err := os.WriteFile(args.Path, []byte(args.Content), 0o644); err != nil {
			return fail(OpWriteFile, args.Path, err)
		}
		return Success(map[string]any{
			"message":       fmt.Sprintf("Wrote %d bytes to '%s'", len(args.Content), args.Path),
			"path":          args.Path,
			"bytes_written": len(args.Content),
		})
	})
}

// ListDirectory enumerates the direct children of a directory, sorted
// lexicographically by name (os.ReadDir's contract). An empty path lists the
// current working directory.
func (g *Gateway) ListDirectory(ctx context.Context, args ListDirectoryArgs) *Result {
	path := args.Path
	if path == "" {
		path = "."
	}
	return g.run(OpListDirectory, path, func() *Result {
		info, err := os.Stat(path)
		if err != nil {
			return fail(OpListDirectory, path, err)
		}
		if !info.IsDir() {
			return fail(OpListDirectory, path, errWrongKind)
		}
		dirEntries, err := os.ReadDir(path)
		if err != nil {
			return fail(OpListDirectory, path, err)
		}
		entries := make([]Entry, 0, len(dirEntries))
		for _, de := range dirEntries {
			e := Entry{Name: de.Name(), Kind: "file"}
			if de.IsDir() {
				e.Kind = "directory"
			} else if fi, err := de.Info(); err == nil {
				e.Size = fi.Size()
			}
			entries = append(entries, e)
		}
		return Success(map[string]any{
			"path":    path,
			"entries": entries,
			"count":   len(entries),
		})
	})
}

// DeleteFile removes a single file. Directories are refused.
func (g *Gateway) DeleteFile(ctx context.Context, args DeleteFileArgs) *Result {
	return g.run(OpDeleteFile, args.Path, func() *Result {
		info, err := os.Lstat(args.Path)
		if err != nil {
			return fail(OpDeleteFile, args.Path, err)
		}
		if info.IsDir() {
			return fail(OpDeleteFile, args.Path, errWrongKind)
		}
		if err := os.Remove(args.Path); err != nil {
			return fail(OpDeleteFile, args.Path, err)
		}
		return Success(map[string]any{
			"message": fmt.Sprintf("Deleted file '%s'", args.Path),
			"path":    args.Path,
		})
	})
}

// CreateDirectory creates the directory and any missing parents. Calling it
// on an existing directory succeeds without touching its contents.
func (g *Gateway) CreateDirectory(ctx context.Context, args CreateDirectoryArgs) *Result {
	return g.run(OpCreateDirectory, args.Path, func() *Result {
		if err := os.MkdirAll(args.Path, 0o755); err != nil {
			return fail(OpCreateDirectory, args.Path, err)
		}
		return Success(map[string]any{
			"message": fmt.Sprintf("Created directory '%s'", args.Path),
			"path":    args.Path,
		})
	})
}

// FileInfo stats a path and returns its metadata.
func (g *Gateway) FileInfo(ctx context.Context, args FileInfoArgs) *Result {
	return g.run(OpFileInfo, args.Path, func() *Result {
		info, err := os.Stat(args.Path)
		if err != nil {
			return fail(OpFileInfo, args.Path, err)
		}
		abs, err := filepath.Abs(args.Path)
		if err != nil {
			return fail(OpFileInfo, args.Path, err)
		}
		kind := "file"
		if info.IsDir() {
			kind = "directory"
		}
		data := map[string]any{
			"name":     info.Name(),
			"path":     abs,
			"kind":     kind,
			"size":     info.Size(),
			"modified": info.ModTime().UTC().Format(time.RFC3339),
			"mode":     info.Mode().String(),
		}
		if kind == "file" {
			data["extension"] = filepath.Ext(args.Path)
		}
		return Success(data)
	})
}
