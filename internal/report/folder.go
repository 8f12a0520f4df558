package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matchdex/matchdex/internal/model"
)

// TreeBuilder builds the per-team scorecard folder tree.
//
// The tree is built in a staging directory next to the final root and only
// swapped into place once every scorecard has been written. A crash mid-run
// therefore leaves the previous tree intact; the one remaining non-atomic
// window is the remove-then-rename pair in Commit, which replaces the old
// tree wholesale.
type TreeBuilder struct {
	// root is the final data folder path.
	root string

	// staging is the temporary build directory, empty until Stage runs.
	staging string

	// teamDirs maps team names to their staged subdirectories.
	teamDirs map[string]string
}

// NewTreeBuilder creates a builder for the given data folder root.
func NewTreeBuilder(root string) *TreeBuilder {
	return &TreeBuilder{
		root:     root,
		teamDirs: make(map[string]string),
	}
}

// Stage creates the staging directory and one subdirectory per team.
// It must run before any scorecard is generated, since generators write
// into the per-team directories.
func (b *TreeBuilder) Stage(teams []*model.Team) error {
	parent := filepath.Dir(b.root)
	if err := os.MkdirAll(parent, 0750); err != nil {
		return fmt.Errorf("failed to create parent of data folder: %w", err)
	}

	staging, err := os.MkdirTemp(parent, "."+filepath.Base(b.root)+"-stage-")
	if err != nil {
		return fmt.Errorf("failed to create staging folder: %w", err)
	}
	b.staging = staging

	// Sanitizing can map distinct team names to the same folder name;
	// collisions get a position suffix so no team shares a directory.
	used := make(map[string]bool, len(teams))
	for i, team := range teams {
		base := fileSafeName(team.Name)
		if used[base] {
			base = fmt.Sprintf("%s (%d)", base, i+1)
		}
		used[base] = true

		dir := filepath.Join(staging, base)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create folder for %q: %w", team.Name, err)
		}
		b.teamDirs[team.Name] = dir
	}
	return nil
}

// TeamDir returns the staged directory for a team, or an error if the team
// was not part of Stage. An unknown team here is the same programming
// invariant violation as an unknown team during projection.
func (b *TreeBuilder) TeamDir(name string) (string, error) {
	dir, ok := b.teamDirs[name]
	if !ok {
		return "", fmt.Errorf("no staged folder for team %q", name)
	}
	return dir, nil
}

// Commit replaces the data folder with the staged tree.
// Any previous tree at the root is removed wholesale first.
func (b *TreeBuilder) Commit() error {
	if b.staging == "" {
		return fmt.Errorf("commit before stage for %s", b.root)
	}
	if err := os.RemoveAll(b.root); err != nil {
		return fmt.Errorf("failed to remove previous data folder %s: %w", b.root, err)
	}
	if err := os.Rename(b.staging, b.root); err != nil {
		return fmt.Errorf("failed to move staged tree into %s: %w", b.root, err)
	}
	b.staging = ""
	return nil
}

// Discard removes the staging directory after a failed run.
// Safe to call whether or not Stage or Commit ran.
func (b *TreeBuilder) Discard() {
	if b.staging != "" {
		_ = os.RemoveAll(b.staging) //nolint:errcheck // Best effort cleanup
		b.staging = ""
	}
}

// fileSafeName makes a team or opponent name usable as a file-system name.
// Only the characters that break paths outright are replaced; everything
// else is preserved so folder names stay recognizable.
func fileSafeName(name string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		default:
			return r
		}
	}, name)
	if s == "" {
		s = "unnamed"
	}
	return s
}
