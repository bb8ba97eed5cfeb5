package contributors

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// ErrNoRepo is returned by GitSource when no directory is configured.
var ErrNoRepo = errors.New("contributors: repository directory not set")

// GitSource reads author names from the history of a git checkout.
type GitSource struct {
	Dir     string
	Timeout time.Duration // Zero means no limit
	Command string        // Defaults to "git"
}

// Names runs git log in Dir and returns one author per commit.
func (g GitSource) Names(ctx context.Context) ([]string, error) {
	if g.Dir == "" {
		return nil, ErrNoRepo
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	bin := g.Command
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, "--no-pager", "log", "--pretty=format:%an")
	cmd.Dir = g.Dir

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log in %s: %w", g.Dir, err)
	}
	return parseNames(bytes.NewReader(out))
}

// parseNames reads one name per line, skipping blank lines.
func parseNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read git output: %w", err)
	}
	return names, nil
}
