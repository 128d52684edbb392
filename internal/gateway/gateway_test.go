package gateway

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway() *Gateway { return New(nil) }

func TestWriteThenReadRoundTrip(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "note.txt")

	res := g.WriteFile(ctx, WriteFileArgs{Path: path, Content: "hello world"})
	require.True(t, res.Success, "write failed: %v", res.Error)
	assert.Equal(t, 11, res.Data["bytes_written"])

	res = g.ReadFile(ctx, ReadFileArgs{Path: path})
	require.True(t, res.Success, "read failed: %v", res.Error)
	assert.Equal(t, "hello world", res.Data["content"])
}

func TestWriteOverwrites(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "f.txt")

	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: path, Content: "a much longer first version"}).Success)
	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: path, Content: "short"}).Success)

	res := g.ReadFile(ctx, ReadFileArgs{Path: path})
	require.True(t, res.Success)
	assert.Equal(t, "short", res.Data["content"])
}

func TestReadMissingFile(t *testing.T) {
	g := newGateway()
	res := g.ReadFile(context.Background(), ReadFileArgs{Path: filepath.Join(t.TempDir(), "nope.txt")})
	require.False(t, res.Success)
	assert.Contains(t, strings.ToLower(*res.Error), "not found")
}

func TestReadDirectory(t *testing.T) {
	g := newGateway()
	dir := t.TempDir()
	res := g.ReadFile(context.Background(), ReadFileArgs{Path: dir})
	require.False(t, res.Success)
	assert.Equal(t, "Not a file: "+dir, *res.Error)
}

func TestListEmptyDirectory(t *testing.T) {
	g := newGateway()
	dir := t.TempDir()
	res := g.ListDirectory(context.Background(), ListDirectoryArgs{Path: dir})
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Data["count"])
	assert.Empty(t, res.Data["entries"])
}

func TestListSortedByName(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))

	res := g.ListDirectory(ctx, ListDirectoryArgs{Path: dir})
	require.True(t, res.Success)
	entries := res.Data["entries"].([]Entry)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "a", Kind: "directory"}, entries[0])
	assert.Equal(t, Entry{Name: "b.txt", Kind: "file", Size: 2}, entries[1])
	assert.Equal(t, Entry{Name: "c.txt", Kind: "file", Size: 1}, entries[2])
}

func TestListMissingAndNonDirectory(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	dir := t.TempDir()

	missing := filepath.Join(dir, "gone")
	res := g.ListDirectory(ctx, ListDirectoryArgs{Path: missing})
	require.False(t, res.Success)
	assert.Equal(t, "Directory not found: "+missing, *res.Error)

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	res = g.ListDirectory(ctx, ListDirectoryArgs{Path: file})
	require.False(t, res.Success)
	assert.Equal(t, "Not a directory: "+file, *res.Error)
}

func TestDeleteThenRead(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "f.txt")
	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: path, Content: "x"}).Success)

	res := g.DeleteFile(ctx, DeleteFileArgs{Path: path})
	require.True(t, res.Success)

	res = g.ReadFile(ctx, ReadFileArgs{Path: path})
	require.False(t, res.Success)
	assert.Equal(t, "File not found: "+path, *res.Error)
}

func TestDeleteRefusesDirectories(t *testing.T) {
	g := newGateway()
	dir := t.TempDir()
	res := g.DeleteFile(context.Background(), DeleteFileArgs{Path: dir})
	require.False(t, res.Success)
	assert.Equal(t, "Not a file: "+dir, *res.Error)
}

func TestDeleteMissingFile(t *testing.T) {
	g := newGateway()
	missing := filepath.Join(t.TempDir(), "gone.txt")
	res := g.DeleteFile(context.Background(), DeleteFileArgs{Path: missing})
	require.False(t, res.Success)
	assert.Equal(t, "File not found: "+missing, *res.Error)
}

func TestCreateDirectoryIdempotent(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.True(t, g.CreateDirectory(ctx, CreateDirectoryArgs{Path: dir}).Success)

	// Second call must succeed and leave existing contents alone.
	file := filepath.Join(dir, "keep.txt")
	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: file, Content: "kept"}).Success)
	require.True(t, g.CreateDirectory(ctx, CreateDirectoryArgs{Path: dir}).Success)

	res := g.ReadFile(ctx, ReadFileArgs{Path: file})
	require.True(t, res.Success)
	assert.Equal(t, "kept", res.Data["content"])
}

func TestCreateDirectoryOverFile(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "f.txt")
	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: file, Content: "x"}).Success)

	res := g.CreateDirectory(ctx, CreateDirectoryArgs{Path: file})
	require.False(t, res.Success)
	assert.Contains(t, *res.Error, "Error creating directory")
}

func TestFileInfo(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: path, Content: "{\"n\":1}"}).Success)

	res := g.FileInfo(ctx, FileInfoArgs{Path: path})
	require.True(t, res.Success)
	assert.Equal(t, "file", res.Data["kind"])
	assert.Equal(t, int64(7), res.Data["size"])
	assert.Equal(t, ".json", res.Data["extension"])
	assert.Equal(t, "data.json", res.Data["name"])
	assert.True(t, filepath.IsAbs(res.Data["path"].(string)))
	assert.NotEmpty(t, res.Data["modified"])
}

func TestFileInfoOnDirectory(t *testing.T) {
	g := newGateway()
	dir := t.TempDir()
	res := g.FileInfo(context.Background(), FileInfoArgs{Path: dir})
	require.True(t, res.Success)
	assert.Equal(t, "directory", res.Data["kind"])
	assert.NotContains(t, res.Data, "extension")
}

func TestFileInfoMissing(t *testing.T) {
	g := newGateway()
	missing := filepath.Join(t.TempDir(), "gone")
	res := g.FileInfo(context.Background(), FileInfoArgs{Path: missing})
	require.False(t, res.Success)
	assert.Equal(t, "Path not found: "+missing, *res.Error)
}

// Mirrors the end-to-end scenario: create tmp/a, write x.txt, list, read,
// delete, then stat the deleted file.
func TestLifecycleScenario(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	root := t.TempDir()
	dir := filepath.Join(root, "tmp", "a")
	file := filepath.Join(dir, "x.txt")

	require.True(t, g.CreateDirectory(ctx, CreateDirectoryArgs{Path: dir}).Success)
	require.True(t, g.WriteFile(ctx, WriteFileArgs{Path: file, Content: "hello"}).Success)

	res := g.ListDirectory(ctx, ListDirectoryArgs{Path: dir})
	require.True(t, res.Success)
	entries := res.Data["entries"].([]Entry)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Name: "x.txt", Kind: "file", Size: 5}, entries[0])

	res = g.ReadFile(ctx, ReadFileArgs{Path: file})
	require.True(t, res.Success)
	assert.Equal(t, "hello", res.Data["content"])

	require.True(t, g.DeleteFile(ctx, DeleteFileArgs{Path: file}).Success)

	res = g.FileInfo(ctx, FileInfoArgs{Path: file})
	require.False(t, res.Success)
	assert.Contains(t, strings.ToLower(*res.Error), "not found")
}

func TestArgValidation(t *testing.T) {
	assert.Error(t, ReadFileArgs{}.Validate())
	assert.Error(t, WriteFileArgs{Content: "x"}.Validate())
	assert.Error(t, DeleteFileArgs{}.Validate())
	assert.Error(t, CreateDirectoryArgs{}.Validate())
	assert.Error(t, FileInfoArgs{}.Validate())
	assert.NoError(t, ListDirectoryArgs{}.Validate())
	assert.NoError(t, ReadFileArgs{Path: "x"}.Validate())
}

func TestResultJSONShape(t *testing.T) {
	ok := Success(map[string]any{"path": "x"})
	b, err := json.Marshal(ok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"path":"x"}}`, string(b))

	bad := Failure("File not found: x")
	b, err = json.Marshal(bad)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"File not found: x"}`, string(b))
}
