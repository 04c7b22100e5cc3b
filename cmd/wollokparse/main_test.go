package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSource(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.wlk")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunTreeFormatWellFormed(t *testing.T) {
	path := writeTempSource(t, "class Bird { var name method fly() = name }")

	var out bytes.Buffer
	exitCode, err := run(&out, path, "tree")
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, out.String(), "class Bird")
	assert.Contains(t, out.String(), "field name")
	assert.Contains(t, out.String(), "method fly")
}

func TestRunJSONFormatWellFormed(t *testing.T) {
	path := writeTempSource(t, "class Bird { }")

	var out bytes.Buffer
	exitCode, err := run(&out, path, "json")
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "sample", decoded["Name"])
}

func TestRunReportsProblemsAndNonZeroExit(t *testing.T) {
	path := writeTempSource(t, "class A {} @bogus class B {}")

	var out bytes.Buffer
	exitCode, err := run(&out, path, "tree")
	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out.String(), "malformedEntity")
}

func TestRunCBORFormatWellFormed(t *testing.T) {
	path := writeTempSource(t, "class Bird { }")

	var out bytes.Buffer
	exitCode, err := run(&out, path, "cbor")
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)

	var decoded map[string]any
	require.NoError(t, cbor.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "sample", decoded["Name"])
}

func TestClosestKeywordSuggestsNearMiss(t *testing.T) {
	assert.Equal(t, "class", closestKeyword("calss"))
	assert.Equal(t, "", closestKeyword("xyzzy12345"))
	assert.Equal(t, "", closestKeyword(""))
}

func TestFirstWordSkipsLeadingPunctuation(t *testing.T) {
	assert.Equal(t, "bogus", firstWord("@bogus class B"))
	assert.Equal(t, "", firstWord("@@@"))
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	_, err := run(&out, filepath.Join(t.TempDir(), "missing.wlk"), "tree")
	assert.Error(t, err)
}
