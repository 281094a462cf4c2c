package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "records.json"))

	want := []record{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	require.NoError(t, f.Save(want))
	assert.True(t, f.Exists())

	var got []record
	require.NoError(t, f.Load(&got))
	assert.Equal(t, want, got)
}

func TestLoad_MissingFileLeavesValueUntouched(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.False(t, f.Exists())

	got := []record{{ID: 9, Name: "zero"}}
	require.NoError(t, f.Load(&got))
	assert.Equal(t, []record{{ID: 9, Name: "zero"}}, got)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nested", "deep", "records.json"))
	require.NoError(t, f.Save([]record{{ID: 1, Name: "x"}}))
	assert.True(t, f.Exists())
}

func TestSave_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "records.json"))
	require.NoError(t, f.Save([]record{{ID: 1, Name: "x"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestConcurrentSavesStayWellFormed(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "records.json"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = f.Save([]record{{ID: i, Name: fmt.Sprintf("writer-%d", i)}})
		}(i)
	}
	wg.Wait()

	var got []record
	require.NoError(t, f.Load(&got))
	require.Len(t, got, 1, "whole-file rewrites never interleave")
}
