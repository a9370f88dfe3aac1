package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/uithings/pkg/cache"
	"github.com/matzehuels/uithings/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" SVG, png,,svg ,json")
	want := []string{"svg", "png", "json"}
	if len(got) != len(want) {
		t.Fatalf("ParseFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{DemoID: "hole-button"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Width != 400 || opts.Height != 860 || opts.Offset != 8 || opts.Scale != 2 {
		t.Errorf("defaults = %vx%v offset %v scale %v", opts.Width, opts.Height, opts.Offset, opts.Scale)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "svg" {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing demo", Options{}, errors.ErrCodeInvalidInput},
		{"bad demo id", Options{DemoID: "Hole Button"}, errors.ErrCodeInvalidInput},
		{"negative width", Options{DemoID: "x", Width: -1, Height: 10}, errors.ErrCodeInvalidGeometry},
		{"huge canvas", Options{DemoID: "x", Width: 10000, Height: 10}, errors.ErrCodeInvalidGeometry},
		{"negative offset", Options{DemoID: "x", Offset: -2}, errors.ErrCodeInvalidGeometry},
		{"bad format", Options{DemoID: "x", Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad scale", Options{DemoID: "x", Scale: 9}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func newFileCache(t *testing.T) cache.Cache {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return fc
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newFileCache(t), nil, nil)
	defer r.Close()

	opts := Options{DemoID: "overlapping-shadow", Formats: []string{"svg", "json", "png"}, Scale: 1}
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if len(res.Artifacts) != 3 {
		t.Fatalf("Artifacts = %d, want 3", len(res.Artifacts))
	}
	if !bytes.HasPrefix(res.Artifacts["png"], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
	if res.SceneHash == "" || res.Scene == nil || res.Stats.Elements == 0 {
		t.Errorf("result = %+v", res.Stats)
	}

	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !again.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if again.SceneHash != res.SceneHash {
		t.Error("scene hash should be stable")
	}
	if !bytes.Equal(again.Artifacts["svg"], res.Artifacts["svg"]) {
		t.Error("cached svg differs")
	}

	opts.Refresh = true
	fresh, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if fresh.CacheInfo.RenderHit {
		t.Error("refresh should bypass cache reads")
	}
}

func TestRunnerSceneHashTracksInputs(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	a, err := r.Execute(ctx, Options{DemoID: "expanding-textfield", Formats: []string{"json"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(ctx, Options{DemoID: "expanding-textfield", Formats: []string{"json"}, Text: "one\ntwo\nthree\nfour"})
	if err != nil {
		t.Fatal(err)
	}
	if a.SceneHash == b.SceneHash {
		t.Error("different text should change the scene hash")
	}
}

func TestRunnerUnknownDemo(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{DemoID: "no-such-demo"})
	if !errors.Is(err, errors.ErrCodeDemoNotFound) {
		t.Errorf("Execute() error = %v, want DEMO_NOT_FOUND", err)
	}
}

func TestRunnerCatalogDOT(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newFileCache(t), nil, nil)

	data, hit, err := r.Catalog(ctx, CatalogFormatDOT, false, false)
	if err != nil || hit {
		t.Fatalf("Catalog() hit %v err %v", hit, err)
	}
	if !bytes.HasPrefix(data, []byte("digraph G {")) {
		t.Errorf("Catalog(dot) = %q", data[:20])
	}
	if _, hit, _ := r.Catalog(ctx, CatalogFormatDOT, false, false); !hit {
		t.Error("second catalog call should hit the cache")
	}
	if _, _, err := r.Catalog(ctx, "gif", false, false); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Catalog(gif) error = %v", err)
	}
}
