package contributors

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseNames(t *testing.T) {
	in := "Alice\r\nBob\n\n   \nAlice\nCarl Jr."

	names, err := parseNames(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parseNames() error = %v", err)
	}

	want := []string{"Alice", "Bob", "Alice", "Carl Jr."}
	if strings.Join(names, "|") != strings.Join(want, "|") {
		t.Errorf("parseNames() = %q, want %q", names, want)
	}
}

func TestGitSourceWithoutDir(t *testing.T) {
	_, err := GitSource{}.Names(context.Background())
	if !errors.Is(err, ErrNoRepo) {
		t.Errorf("Names() error = %v, want ErrNoRepo", err)
	}
}

func TestGitSourceFailureFallsBack(t *testing.T) {
	// keep git from discovering a repository above the temp dir
	t.Setenv("GIT_DIR", filepath.Join(t.TempDir(), "missing"))

	tests := []struct {
		name string
		src  GitSource
	}{
		{"missing binary", GitSource{Dir: t.TempDir(), Command: "no-such-vcs-binary", Timeout: time.Second}},
		{"not a repository", GitSource{Dir: t.TempDir(), Timeout: 5 * time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Load(context.Background(), tt.src)
			if res.Outcome != UseFallback {
				t.Errorf("Outcome = %v, want %v", res.Outcome, UseFallback)
			}
			if res.Err == nil {
				t.Error("Err = nil, want the git failure")
			}
		})
	}
}
