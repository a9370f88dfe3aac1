package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
)

// execute runs the root command with args in an isolated config and cache
// home and returns what the command printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"list", "place", "render", "catalog", "hittest", "textfield", "browse", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var demos []demoEntry
	if err := json.Unmarshal([]byte(out), &demos); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(demos) != 6 {
		t.Fatalf("got %d demos, want 6", len(demos))
	}
	if demos[5].ID != "overlapping-shadow" || len(demos[5].Variants) != 1 {
		t.Errorf("last demo = %+v", demos[5])
	}
}

func TestListTable(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"hole-button", "Bounds Origin Effect", "Animation", "no demos yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		position annotate.Position
		frame    geom.Rect
		fits     bool
	}{
		{
			name:     "automatic bottom",
			args:     []string{"--subject", "100,100,50,50", "--label", "80,20", "--container", "0,0,400,400"},
			position: annotate.Bottom,
			frame:    geom.R(85, 158, 80, 20),
			fits:     true,
		},
		{
			name:     "automatic top",
			args:     []string{"--subject", "100,100,50,50", "--label", "80,20", "--container", "0,0,400,160"},
			position: annotate.Top,
			frame:    geom.R(85, 72, 80, 20),
			fits:     true,
		},
		{
			name:     "explicit left",
			args:     []string{"--subject", "100,100,50,50", "--label", "80,20", "--position", "left", "--offset", "4"},
			position: annotate.Left,
			frame:    geom.R(16, 115, 80, 20),
			fits:     true,
		},
		{
			name:     "fallback top right",
			args:     []string{"--subject", "0,0,400,400", "--label", "80,20", "--container", "0,0,400,400"},
			position: annotate.TopRight,
			frame:    geom.R(408, -28, 80, 20),
			fits:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"place", "--json"}, tt.args...)...)
			if err != nil {
				t.Fatalf("place: %v", err)
			}
			var got placement
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if got.Position != tt.position {
				t.Errorf("position = %v, want %v", got.Position, tt.position)
			}
			if got.Frame != tt.frame {
				t.Errorf("frame = %+v, want %+v", got.Frame, tt.frame)
			}
			if got.Fits != tt.fits {
				t.Errorf("fits = %v, want %v", got.Fits, tt.fits)
			}
		})
	}
}

func TestPlaceAll(t *testing.T) {
	out, err := execute(t, "place", "--subject", "100,100,50,50", "--text", "hi", "--all", "--json")
	if err != nil {
		t.Fatalf("place --all: %v", err)
	}
	var got []placement
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(annotate.Positions) {
		t.Fatalf("got %d placements, want %d", len(got), len(annotate.Positions))
	}
	for i, p := range got[1:] {
		if p.Requested != p.Position {
			t.Errorf("placement %d: explicit %v resolved to %v", i+1, p.Requested, p.Position)
		}
	}
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad subject", []string{"--subject", "1,2,3", "--label", "1,1"}, errors.ErrCodeInvalidInput},
		{"bad number", []string{"--subject", "1,2,x,4", "--label", "1,1"}, errors.ErrCodeInvalidInput},
		{"no label", []string{"--subject", "1,2,3,4"}, errors.ErrCodeInvalidInput},
		{"bad position", []string{"--subject", "1,2,3,4", "--label", "1,1", "--position", "middle"}, errors.ErrCodeInvalidPosition},
		{"negative offset", []string{"--subject", "1,2,3,4", "--label", "1,1", "--offset=-2"}, errors.ErrCodeInvalidGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"place"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "render", "negative-size", "-f", "svg,json", "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"negative-size.svg", "negative-size.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	single := filepath.Join(dir, "nested", "shadow.svg")
	if _, err := execute(t, "render", "overlapping-shadow", "--variant", "separate", "-o", single); err != nil {
		t.Fatalf("render single: %v", err)
	}
	data, err := os.ReadFile(single)
	if err != nil {
		t.Fatalf("read %s: %v", single, err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("%s is not an SVG", single)
	}
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "render", "--all", "-f", "json", "--no-cache", "-o", dir); err != nil {
		t.Fatalf("render --all: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 6 {
		t.Errorf("got %d files, want 6", len(entries))
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no demo", []string{"render"}, errors.ErrCodeInvalidInput},
		{"unknown demo", []string{"render", "nope", "-o", "out"}, errors.ErrCodeDemoNotFound},
		{"bad format", []string{"render", "hole-button", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad variant", []string{"render", "hole-button", "--variant", "separate", "-o", "out"}, errors.ErrCodeInvalidInput},
		{"traversal", []string{"render", "hole-button", "-o", "../escape.svg"}, errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, variant, format string
		single                  bool
		want                    string
	}{
		{"", "", "svg", true, "hole-button.svg"},
		{"", "separate", "png", true, "hole-button-separate.png"},
		{"out.svg", "", "svg", true, "out.svg"},
		{"out", "", "svg", true, filepath.Join("out", "hole-button.svg")},
		{"out.d", "", "svg", false, filepath.Join("out.d", "hole-button.svg")},
	}
	for _, tt := range tests {
		got := outputPath(tt.output, "hole-button", tt.variant, tt.format, tt.single)
		if got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q", tt.output, tt.variant, tt.format, tt.single, got, tt.want)
		}
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte("[canvas]\nwidth = 300\nheight = 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "scene.json")
	if _, err := execute(t, "--config", cfg, "render", "bounds-origin", "-f", "json", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var scene struct {
		Width, Height float64
	}
	if err := json.Unmarshal(data, &scene); err != nil {
		t.Fatal(err)
	}
	if scene.Width != 300 || scene.Height != 500 {
		t.Errorf("canvas = %vx%v, want 300x500", scene.Width, scene.Height)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[canvas]\ncolour = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--config", bad, "list"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad config error = %v, want INVALID_CONFIG", err)
	}
}

func TestHittest(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"200", "300"}, "miss: inside the hole"},
		{[]string{"105", "205"}, "hit: on the button"},
		{[]string{"50", "50"}, "miss: outside the button"},
		{[]string{"5", "5", "--local"}, "hit: on the button"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"hittest"}, tt.args...)...)
			if err != nil {
				t.Fatalf("hittest: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
		})
	}
}

func TestHittestMap(t *testing.T) {
	out, err := execute(t, "hittest", "--map", "--step", "50")
	if err != nil {
		t.Fatalf("hittest --map: %v", err)
	}
	want := "####\n#..#\n#..#\n####\n"
	if out != want {
		t.Errorf("map =\n%s\nwant\n%s", out, want)
	}
}

func TestTextfield(t *testing.T) {
	out, err := execute(t, "textfield", "--text", `one\ntwo\nthree`, "--fps", "20")
	if err != nil {
		t.Fatalf("textfield: %v", err)
	}
	// Three 13pt lines plus 24pt of insets.
	if !strings.Contains(out, "63") {
		t.Errorf("output missing height 63:\n%s", out)
	}
	if !strings.Contains(out, "44 → 63") {
		t.Errorf("output missing the 44 → 63 transition:\n%s", out)
	}

	if _, err := execute(t, "textfield", "--fps", "0"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("fps 0 error = %v, want INVALID_INPUT", err)
	}
}

func TestCachePathAndClear(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q, want suffix %q", out, appName)
	}

	out, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared the file cache") {
		t.Errorf("cache clear output = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range completionShells {
		for _, args := range [][]string{{"completion", shell}, {"completion", shell, "--no-descriptions"}} {
			t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
				out, err := execute(t, args...)
				if err != nil {
					t.Fatalf("completion: %v", err)
				}
				if !strings.Contains(out, appName) {
					t.Errorf("%s completion should mention the program name", shell)
				}
			})
		}
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should be rejected")
	}
}

func TestCompleteDemoIDs(t *testing.T) {
	ids, _ := completeDemoIDs(nil, []string{"negative-size"}, "")
	if len(ids) != 5 {
		t.Errorf("got %d completions, want 5 (one already given)", len(ids))
	}
	ids, _ = completeDemoIDs(nil, nil, "hole")
	if len(ids) != 1 || !strings.HasPrefix(ids[0], "hole-button\t") {
		t.Errorf("completions for hole = %v", ids)
	}
}
