package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/internal/core"
)

func testUser(id, email string) core.User {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return core.User{
		ID:          id,
		FirstName:   "John",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "9876543210",
		PANNumber:   "ABCDE1234F",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "users.json"))

	users, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	ctx := context.Background()

	want := []core.User{
		testUser("a", "john@example.com"),
		testUser("b", "jane@example.com"),
	}
	require.NoError(t, fs.Save(ctx, want))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "users.json")
	fs := NewFileStore(path)

	require.NoError(t, fs.Save(context.Background(), []core.User{testUser("a", "john@example.com")}))
	assert.FileExists(t, path)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, []core.User{testUser("a", "john@example.com")}))
	require.NoError(t, fs.Save(ctx, []core.User{testUser("b", "jane@example.com")}))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFileStoreSaveEmptyCollection(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, nil))

	// The file holds an empty array, not null.
	data, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	var raw []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Empty(t, raw)
}

func TestFileStoreLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	users, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "users.json"))
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, []core.User{testUser("a", "john@example.com")}))
	require.NoError(t, fs.Save(ctx, []core.User{testUser("b", "jane@example.com")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestNewIDUnique(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "users.json"))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := fs.NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
