package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/showcase/internal/drafts"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDraftLifecycle(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "1")
	now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	require.NoError(t, os.WriteFile("post.md", []byte("# Hello\n\nFirst paragraph here.\n"), 0o644))

	out, err := execute(t, "draft", "save", "--title", "Hello World!", "--tags", "go, , tips", "--file", "post.md")
	require.NoError(t, err)
	assert.Contains(t, out, "saved draft hello-world")

	out, err = execute(t, "draft", "show", "hello-world")
	require.NoError(t, err)
	assert.Contains(t, out, "First paragraph here.")

	out, err = execute(t, "draft", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hello-world")
	assert.Contains(t, out, "Drafts in "+filepath.Join(".showcase", "drafts.json"))

	out, err = execute(t, "draft", "export", "hello-world", "--dir", "exports")
	require.NoError(t, err)
	assert.Contains(t, out, "exported")

	data, err := os.ReadFile(filepath.Join("exports", "hello-world.json"))
	require.NoError(t, err)
	var d drafts.Draft
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, "Hello World!", d.Title)
	assert.Equal(t, []string{"go", "tips"}, d.Tags)
	assert.Equal(t, "2024-03-09", d.Date)
	assert.Equal(t, "First paragraph here.", d.Excerpt)

	_, err = execute(t, "draft", "delete", "hello-world")
	require.NoError(t, err)

	_, err = execute(t, "draft", "show", "hello-world")
	assert.ErrorIs(t, err, drafts.ErrNotFound)
}
