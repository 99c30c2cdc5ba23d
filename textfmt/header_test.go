package textfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Descriptor {
	t.Helper()
	d, err := ParseDescriptor([]byte(src))
	require.NoError(t, err)
	return d
}

func TestProcessHeader_OmitVersion(t *testing.T) {
	d := mustParse(t, `
info:
  version: "1.0"
  title: T
host: h
basePath: /p
`)

	got := New(2).ProcessHeader(d, true)

	assert.NotContains(t, got, "1.0")
	assert.Contains(t, got, "h/p")
	assert.Contains(t, got, "T")
	assert.Equal(t, "/**\n *     T\n *   h/p\n */\n", got)
}

func TestProcessHeader_KeepVersion(t *testing.T) {
	d := mustParse(t, `{"info": {"version": "1.0", "title": "T"}, "host": "h", "basePath": "/p"}`)

	got := New(2).ProcessHeader(d, false)

	assert.Equal(t, "/**\n *     1.0\n *     T\n *   h/p\n */\n", got)
}

func TestProcessHeader_NestedInfo(t *testing.T) {
	d := mustParse(t, `
info:
  title: Petstore
  description: |
    Sample server.

    Second paragraph.
  contact:
    email: api@example.com
  license:
    name: MIT
    url: "-"
host: petstore.example.com
basePath: /v2
`)

	got := New(2).ProcessHeader(d, true)

	expected := "/**\n" +
		" *     Petstore\n" +
		" *     Sample server.\n" +
		" *     Second paragraph.\n" +
		" *       api@example.com\n" +
		" *       MIT\n" +
		" *   petstore.example.com/v2\n" +
		" */\n"
	assert.Equal(t, expected, got)
}

func TestProcessHeader_NestedVersionKept(t *testing.T) {
	d := mustParse(t, `
info:
  title: T
  x-meta:
    version: beta
host: h
`)

	got := New(2).ProcessHeader(d, true)
	assert.Contains(t, got, "beta")
}

func TestProcessHeader_PathOnly(t *testing.T) {
	d := mustParse(t, `host: api.example.com`)

	got := New(0).ProcessHeader(d, false)
	assert.Equal(t, "/** api.example.com */\n", got)
}

func TestProcessHeader_Empty(t *testing.T) {
	d := mustParse(t, `{}`)
	assert.Equal(t, "", New(2).ProcessHeader(d, false))
}

func TestProcessHeader_DoesNotModifyDescriptor(t *testing.T) {
	d := mustParse(t, `
info:
  version: "2.0"
  title: T
`)

	New(2).ProcessHeader(d, true)

	require.Len(t, d.Info.Content, 4)
	assert.Equal(t, "version", d.Info.Content[0].Value)
}

func TestParseDescriptor_InfoNotMapping(t *testing.T) {
	_, err := ParseDescriptor([]byte(`info: just a string`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "info must be a mapping")
}

func TestParseDescriptor_Invalid(t *testing.T) {
	_, err := ParseDescriptor([]byte("info: [unclosed"))
	assert.Error(t, err)
}

func TestLoadDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"info": {"title": "T"}, "host": "h", "basePath": "/p"}`), 0644))

	d, err := LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, "h/p", d.Path())

	_, err = LoadDescriptor(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
