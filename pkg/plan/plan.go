// Package plan diffs the desired export tree against the filesystem and the
// artifact cache, producing an ordered list of actions that converges the
// library. Building a plan never mutates anything.
package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"strmsync/pkg/cache"
)

// ActionType labels what the executor must do for one path.
type ActionType string

const (
	// ActionCreateDir ensures a directory exists.
	ActionCreateDir ActionType = "create-dir"
	// ActionWriteFile writes desired content, creating or replacing the file.
	ActionWriteFile ActionType = "write-file"
	// ActionSkip records that a path is already converged.
	ActionSkip ActionType = "skip"
	// ActionDeleteFile removes a file no longer in the desired tree.
	ActionDeleteFile ActionType = "delete-file"
	// ActionRemoveDir removes a directory left empty by deletions.
	ActionRemoveDir ActionType = "remove-dir"
	// ActionForget drops a cache row whose file is gone and no longer wanted.
	ActionForget ActionType = "forget"
)

// Action is one step of a plan.
type Action struct {
	Type        ActionType
	Path        string
	Content     []byte
	Perm        os.FileMode
	Kind        cache.ArtifactKind
	RemoteID    string
	Fingerprint string
	Reason      string
	// RepairCache marks a skip whose cache row is missing or stale and
	// should be rewritten without touching the file.
	RepairCache bool
	// Replaces marks a write that overwrites an existing file rather than
	// creating a new one.
	Replaces bool
}

// Plan is the ordered action list for one account: directory creates first,
// then writes and skips, then deletes, then empty-directory removals deepest
// first.
type Plan struct {
	AccountID int
	Actions   []Action
}

// Counts tallies the plan by action type.
func (p *Plan) Counts() map[ActionType]int {
	counts := map[ActionType]int{}
	for _, a := range p.Actions {
		counts[a.Type]++
	}
	return counts
}

// Desired describes one file the export wants on disk.
type Desired struct {
	Path     string
	Content  []byte
	Kind     cache.ArtifactKind
	RemoteID string
	// Overwrite controls whether an existing file with different content
	// gets rewritten. Pointer files always overwrite; sidecars and artwork
	// follow their config toggles.
	Overwrite bool
}

// Fingerprint hashes content the way artifact rows store it.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
