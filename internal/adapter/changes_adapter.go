package adapter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	m "github.com/mouse-blink/impactplan/internal/model"
)

const devNull = "/dev/null"

// ChangesAdapter turns the supported change-set inputs into changed paths.
// Every method keeps first-seen order and drops duplicates.
type ChangesAdapter interface {
	// FromArgs accepts paths given on the command line.
	FromArgs(args []string) []m.Path
	// FromList reads one path per line. Blank lines are ignored.
	FromList(r io.Reader) ([]m.Path, error)
	// FromDiff extracts the old and new file names of a unified diff.
	FromDiff(r io.Reader) ([]m.Path, error)
}

// LocalChangesAdapter is the default ChangesAdapter.
type LocalChangesAdapter struct{}

// NewLocalChangesAdapter constructs a LocalChangesAdapter.
func NewLocalChangesAdapter() *LocalChangesAdapter {
	return &LocalChangesAdapter{}
}

// FromArgs converts command line arguments into paths. Arguments are kept
// exactly as given; only empty ones are dropped.
func (a *LocalChangesAdapter) FromArgs(args []string) []m.Path {
	paths := newPathSet(len(args))
	for _, arg := range args {
		paths.add(arg)
	}

	return paths.list
}

// FromList reads a newline separated list of paths, as printed by
// `git diff --name-only`.
func (a *LocalChangesAdapter) FromList(r io.Reader) ([]m.Path, error) {
	paths := newPathSet(0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		paths.add(strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read changed paths: %w", err)
	}

	return paths.list, nil
}

// FromDiff parses a multi-file unified diff. Renames contribute both names.
func (a *LocalChangesAdapter) FromDiff(r io.Reader) ([]m.Path, error) {
	fileDiffs, err := diff.NewMultiFileDiffReader(r).ReadAllFiles()
	if err != nil {
		return nil, fmt.Errorf("parse diff: %w", err)
	}

	paths := newPathSet(len(fileDiffs) * 2)

	for _, fd := range fileDiffs {
		paths.add(diffName(fd.OrigName, "a/"))
		paths.add(diffName(fd.NewName, "b/"))
	}

	return paths.list, nil
}

func diffName(name, prefix string) string {
	name = strings.TrimSpace(name)
	if name == devNull {
		return ""
	}

	return strings.TrimPrefix(name, prefix)
}

type pathSet struct {
	seen map[m.Path]struct{}
	list []m.Path
}

func newPathSet(capacity int) *pathSet {
	return &pathSet{
		seen: make(map[m.Path]struct{}, capacity),
		list: make([]m.Path, 0, capacity),
	}
}

func (s *pathSet) add(raw string) {
	p := m.Path(raw)
	if p == "" {
		return
	}

	if _, ok := s.seen[p]; ok {
		return
	}

	s.seen[p] = struct{}{}
	s.list = append(s.list, p)
}
