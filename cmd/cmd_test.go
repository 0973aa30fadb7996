package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/attrmap/attrmap"
)

func writeSources(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	require.NoError(t, os.WriteFile(base, []byte("name: base\nport: 80\ntags: [a]\n"), 0o644))
	override := filepath.Join(dir, "override.json")
	require.NoError(t, os.WriteFile(override, []byte(`{"port": 8080, "debug": true}`), 0o644))
	return base, override
}

func captureRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := stdout
	stdout = buf
	defer func() { stdout = prev }()
	err := run(args)
	return buf.String(), err
}

func TestMergeCmd(t *testing.T) {
	base, override := writeSources(t)

	testCases := []struct {
		name   string
		args   []string
		expect string
	}{
		{
			name:   "repr",
			args:   []string{"merge", base, override},
			expect: "Map({'name': 'base', 'port': 8080, 'tags': ['a'], 'debug': true})\n",
		},
		{
			name:   "overrides win",
			args:   []string{"merge", "-s", "name=cli", "-s", "extra=1", base, override},
			expect: "Map({'name': 'cli', 'port': 8080, 'tags': ['a'], 'debug': true, 'extra': 1})\n",
		},
		{
			name:   "order of documents matters",
			args:   []string{"merge", override, base},
			expect: "Map({'port': 80, 'debug': true, 'name': 'base', 'tags': ['a']})\n",
		},
		{
			name:   "yaml",
			args:   []string{"merge", "-o", "yaml", base, override},
			expect: "name: base\nport: 8080\ntags:\n    - a\ndebug: true\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := captureRun(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, out)
		})
	}
}

func TestMergeCmd_JSON(t *testing.T) {
	base, override := writeSources(t)
	out, err := captureRun(t, "merge", "-o", "json", base, override)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"base","port":8080,"tags":["a"],"debug":true}`, out)
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"debug"`))
}

func TestMergeCmd_Dump(t *testing.T) {
	base, override := writeSources(t)
	out, err := captureRun(t, "merge", "-o", "dump", base, override)
	require.NoError(t, err)
	assert.Contains(t, out, "(map[string]interface {}) (len=4)")
	for _, key := range []string{`"name"`, `"port"`, `"tags"`, `"debug"`} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, `"base"`)
}

func TestMergeCmd_Errors(t *testing.T) {
	base, _ := writeSources(t)
	dir := filepath.Dir(base)
	list := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(list, []byte("- a\n- b\n"), 0o644))

	_, err := captureRun(t, "merge", list)
	assert.True(t, errors.Is(err, attrmap.ErrInvalidSource), "unexpected error: %v", err)

	_, err = captureRun(t, "merge", "-s", "novalue", base)
	assert.ErrorContains(t, err, "expected key=value")

	_, err = captureRun(t, "merge", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGetCmd(t *testing.T) {
	base, override := writeSources(t)

	testCases := []struct {
		name   string
		args   []string
		expect string
	}{
		{name: "key", args: []string{"get", "-n", "port", base, override}, expect: "8080\n"},
		{name: "attribute", args: []string{"get", "-a", "-n", "name", base}, expect: "'base'\n"},
		{name: "bound operation", args: []string{"get", "-a", "-n", "keys", base, override}, expect: "['name', 'port', 'tags', 'debug']\n"},
		{name: "reserved looking key", args: []string{"get", "-n", "keys", "-s", "keys=stored", base}, expect: "'stored'\n"},
		{name: "json", args: []string{"get", "--json", "-n", "tags", base}, expect: "[\"a\"]\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := captureRun(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, out)
		})
	}

	_, err := captureRun(t, "get", "-a", "-n", "missing", base)
	assert.True(t, errors.Is(err, attrmap.ErrKeyNotFound), "unexpected error: %v", err)
}

func TestEvalCmd(t *testing.T) {
	base, override := writeSources(t)

	out, err := captureRun(t, "eval", "-e", "port + 1", base, override)
	require.NoError(t, err)
	assert.Equal(t, "8081\n", out)

	out, err = captureRun(t, "eval", "-e", `name + "-" + string(len(tags))`, "-s", "name=cli", base)
	require.NoError(t, err)
	assert.Equal(t, "'cli-1'\n", out)

	_, err = captureRun(t, "eval", "-e", "port +", base)
	assert.Error(t, err)
}

func TestReservedCmd(t *testing.T) {
	out, err := captureRun(t, "reserved", "-p", "pop")
	require.NoError(t, err)
	assert.Equal(t, "pop\npopitem\n", out)

	out, err = captureRun(t, "reserved")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(attrmap.ReservedNames(), "\n")+"\n", out)
}

func TestParseOverrides(t *testing.T) {
	named, err := parseOverrides([]string{"port=8080", "name=svc", "empty=", "ratio=0.5", "expr=a=b"})
	require.NoError(t, err)
	assert.Equal(t, attrmap.Named{
		attrmap.KV("port", 8080),
		attrmap.KV("name", "svc"),
		attrmap.KV("empty", nil),
		attrmap.KV("ratio", 0.5),
		attrmap.KV("expr", "a=b"),
	}, named)

	_, err = parseOverrides([]string{"=value"})
	assert.Error(t, err)
}
