package blog

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"old.md":    post("Old", "2023-01-01"),
		"new.md":    post("New", "2024-06-01"),
		"broken.md": "---\ntitle: [unterminated\n---\n",
	})
	out := afero.NewMemMapFs()

	n, err := s.Export(out, "site")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	html, err := afero.ReadFile(out, "site/new.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "body text")

	raw, err := afero.ReadFile(out, "site/"+IndexFile)
	require.NoError(t, err)
	var index []map[string]string
	require.NoError(t, json.Unmarshal(raw, &index))
	require.Len(t, index, 2)
	assert.Equal(t, "new", index[0]["slug"])
	assert.Equal(t, "New", index[0]["title"])
	assert.Equal(t, "about New", index[0]["excerpt"])
	assert.Equal(t, "2024-06-01", index[0]["publishedAt"])
	assert.Equal(t, "old", index[1]["slug"])
	assert.NotContains(t, index[0], "Content")
}

func TestExportEmpty(t *testing.T) {
	s := newTestStore(t, nil)
	out := afero.NewMemMapFs()

	n, err := s.Export(out, "site")
	require.NoError(t, err)
	assert.Zero(t, n)

	raw, err := afero.ReadFile(out, "site/"+IndexFile)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}
