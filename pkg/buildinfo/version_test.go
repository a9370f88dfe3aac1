package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	Version, Commit, Date = "v1.2.3", "abc1234", "2026-01-02T03:04:05Z"

	got := String()
	for _, want := range []string{"version: v1.2.3", "commit: abc1234", "built: 2026-01-02T03:04:05Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	oldV := Version
	defer func() { Version = oldV }()

	Version = "v9.9.9"
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} v9.9.9\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Template() should end with a newline")
	}
}
