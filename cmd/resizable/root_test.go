package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/go-resizable/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editorLayout = `id: editor
panels:
  - id: sidebar
    minSize: 20
    defaultSize: 20
    collapsible: true
    collapsedSize: 5
  - id: main
    label: Main
    minSize: 10
    grow: true
`

const editorLayoutTOML = `id = "editor"
direction = "vertical"

[[panels]]
id = "output"
minSize = 10.0
defaultSize = 30.0

[[panels]]
id = "input"
grow = true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, _ := newRootCmd()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestDistribute(t *testing.T) {
	type tc struct {
		name     string
		content  string
		args     []string
		expected string
	}

	tests := map[string]tc{
		"yaml with grow": {
			name:     "editor.yaml",
			content:  editorLayout,
			expected: "sidebar  20.00\nMain     80.00\n",
		},
		"toml": {
			name:     "editor.toml",
			content:  editorLayoutTOML,
			expected: "output  30.00\ninput   70.00\n",
		},
		"controlled sizes": {
			name:     "editor.yaml",
			content:  editorLayout + "sizes: [40, 60]\n",
			expected: "sidebar  40.00\nMain     60.00\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.content)
			out, err := run(t, append([]string{"distribute", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestAdjust(t *testing.T) {
	type tc struct {
		args     []string
		env      map[string]string
		expected string
	}

	tests := map[string]tc{
		"collapse snap": {
			args: []string{"--delta=-16"},
			expected: "start: 20.00 80.00\n" +
				"delta -16.00: 5.00 95.00\n" +
				"  collapse sidebar\n",
		},
		"sequential steps leave the dead zone": {
			args: []string{"--delta=-16", "--delta=0.8"},
			expected: "start: 20.00 80.00\n" +
				"delta -16.00: 5.00 95.00\n" +
				"  collapse sidebar\n" +
				"delta 0.80: 20.00 80.00\n" +
				"  expand sidebar\n",
		},
		"coalesced steps": {
			args: []string{"--delta=-16", "--delta=0.8", "--coalesce"},
			expected: "start: 20.00 80.00\n" +
				"delta -15.20: 5.00 95.00\n" +
				"  collapse sidebar\n",
		},
		"wider dead zone from flag": {
			args: []string{"--delta=-16", "--delta=0.8", "--hysteresis", "0.1"},
			expected: "start: 20.00 80.00\n" +
				"delta -16.00: 5.00 95.00\n" +
				"  collapse sidebar\n" +
				"delta 0.80: 5.00 95.00\n",
		},
		"wider dead zone from env": {
			args: []string{"--delta=-16", "--delta=0.8"},
			env:  map[string]string{"RESIZABLE_HYSTERESIS": "0.1"},
			expected: "start: 20.00 80.00\n" +
				"delta -16.00: 5.00 95.00\n" +
				"  collapse sidebar\n" +
				"delta 0.80: 5.00 95.00\n",
		},
		"clamped drag": {
			args: []string{"--delta=90"},
			expected: "start: 20.00 80.00\n" +
				"delta 90.00: 90.00 10.00\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, "editor.yaml", editorLayout)

			args := append([]string{"adjust", path, "--boundary", "0"}, tt.args...)
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestAdjust_Errors(t *testing.T) {
	type tc struct {
		args []string
		err  string
	}

	tests := map[string]tc{
		"bad boundary": {
			args: []string{"--boundary", "1", "--delta=5"},
			err:  "out of range",
		},
		"missing delta": {
			args: []string{"--boundary", "0"},
			err:  "delta",
		},
		"bad normalization": {
			args: []string{"--delta=5", "--normalize", "bogus"},
			err:  "unknown normalization",
		},
		"bad hysteresis": {
			args: []string{"--delta=5", "--hysteresis", "2"},
			err:  "hysteresis",
		},
		"quiet and verbose": {
			args: []string{"--delta=5", "-q", "-v"},
			err:  "pick only one",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "editor.yaml", editorLayout)
			_, err := run(t, append([]string{"adjust", path}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestAdjust_StateFile(t *testing.T) {
	path := writeFile(t, "editor.yaml", editorLayout)
	state := filepath.Join(t.TempDir(), "state.yaml")

	_, err := run(t, "adjust", path, "--boundary", "0", "--delta=-16", "--state-file", state)
	require.NoError(t, err)

	sizes, ok, err := store.NewFile(state).Load("editor")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{5, 95}, sizes, 1e-9)
}

func TestPreview(t *testing.T) {
	path := writeFile(t, "editor.yaml", editorLayout)
	svgPath := filepath.Join(t.TempDir(), "editor.svg")

	out, err := run(t, "preview", path, "--width", "60", "--height", "5", "--svg", svgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "80.0%")

	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "sidebar 20.0%")
	assert.Contains(t, string(data), "Main 80.0%")
}

func TestPreview_MissingFile(t *testing.T) {
	_, err := run(t, "preview", filepath.Join(t.TempDir(), "nope.yaml"), "--width", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read layout")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "resizable dev")
}
