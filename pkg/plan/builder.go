package plan

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"strmsync/pkg/cache"
	"strmsync/pkg/io"
	"strmsync/pkg/logger"
)

const filePerm = 0o644

// Builder produces plans from desired trees.
type Builder struct {
	store     cache.Store
	fs        io.FileIO
	deleteOld bool
}

// NewBuilder creates a Builder. deleteOld enables pruning of files and empty
// directories that fall out of the desired tree.
func NewBuilder(store cache.Store, fio io.FileIO, deleteOld bool) *Builder {
	return &Builder{store: store, fs: fio, deleteOld: deleteOld}
}

// Build diffs desired against disk and cache for one account. roots are the
// account's library directories, scanned for strays when pruning is on.
func (b *Builder) Build(ctx context.Context, accountID int, roots []string, desired []Desired) (*Plan, error) {
	log := logger.FromCtx(ctx)

	wantPaths := make(map[string]struct{}, len(desired))
	for _, d := range desired {
		wantPaths[d.Path] = struct{}{}
	}

	var creates, writes, skips []Action

	for _, dir := range desiredDirs(desired) {
		if !b.fs.FileExists(dir) {
			creates = append(creates, Action{Type: ActionCreateDir, Path: dir})
		}
	}

	for _, d := range desired {
		action := b.fileAction(ctx, d)
		switch action.Type {
		case ActionWriteFile:
			writes = append(writes, action)
		case ActionSkip:
			skips = append(skips, action)
		}
	}

	var deletes, removes, forgets []Action
	if b.deleteOld {
		var err error
		deletes, removes, err = b.pruneActions(roots, wantPaths)
		if err != nil {
			return nil, err
		}
		forgets = b.forgetActions(ctx, accountID, wantPaths)
	}

	log.Debugw("plan built",
		"account", accountID,
		"creates", len(creates),
		"writes", len(writes),
		"skips", len(skips),
		"deletes", len(deletes),
		"rmdirs", len(removes))

	actions := make([]Action, 0, len(creates)+len(writes)+len(skips)+len(deletes)+len(removes)+len(forgets))
	actions = append(actions, creates...)
	actions = append(actions, writes...)
	actions = append(actions, skips...)
	actions = append(actions, deletes...)
	actions = append(actions, forgets...)
	actions = append(actions, removes...)

	return &Plan{AccountID: accountID, Actions: actions}, nil
}

// fileAction decides between write and skip for one desired file. The cache
// fingerprint answers most cases; disk content is the tiebreaker when the
// cache is silent or disagrees.
func (b *Builder) fileAction(ctx context.Context, d Desired) Action {
	log := logger.FromCtx(ctx)

	want := Fingerprint(d.Content)
	base := Action{
		Path:        d.Path,
		Content:     d.Content,
		Perm:        filePerm,
		Kind:        d.Kind,
		RemoteID:    d.RemoteID,
		Fingerprint: want,
	}

	if !b.fs.FileExists(d.Path) {
		base.Type = ActionWriteFile
		return base
	}

	cached, err := b.store.GetArtifact(ctx, d.Path)
	if err != nil {
		log.Warnw("artifact cache read failed, comparing disk content", "path", d.Path, "error", err)
		cached = nil
	}

	if cached != nil && cached.Fingerprint == want {
		base.Type = ActionSkip
		base.Reason = "up to date"
		return base
	}

	// cache miss or mismatch: the file on disk decides
	onDisk, err := b.fs.ReadFile(d.Path)
	if err == nil && bytes.Equal(onDisk, d.Content) {
		base.Type = ActionSkip
		base.Reason = "content matches"
		base.RepairCache = true
		return base
	}

	if !d.Overwrite {
		base.Type = ActionSkip
		base.Reason = "exists, overwrite disabled"
		return base
	}

	base.Type = ActionWriteFile
	base.Replaces = true
	return base
}

// pruneActions scans the roots for files outside the desired tree and for
// directories those deletions leave empty.
func (b *Builder) pruneActions(roots []string, want map[string]struct{}) (deletes, removes []Action, err error) {
	// dirs that keep at least one file, directly or through a subdirectory
	keep := map[string]struct{}{}
	var strayDirs []string

	for _, root := range roots {
		if !b.fs.FileExists(root) {
			continue
		}
		keep[root] = struct{}{}

		// every directory the desired tree writes into stays, whether or not
		// its files exist yet
		for path := range want {
			for dir := filepath.Dir(path); strings.HasPrefix(dir, root); dir = filepath.Dir(dir) {
				keep[dir] = struct{}{}
			}
		}

		walkErr := b.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}
			if d.IsDir() {
				strayDirs = append(strayDirs, path)
				return nil
			}
			if _, ok := want[path]; ok {
				return nil
			}
			deletes = append(deletes, Action{Type: ActionDeleteFile, Path: path})
			return nil
		})
		if walkErr != nil {
			return nil, nil, walkErr
		}
	}

	// deepest first so children go before parents
	sort.Slice(strayDirs, func(i, j int) bool {
		return depth(strayDirs[i]) > depth(strayDirs[j])
	})
	for _, dir := range strayDirs {
		if _, ok := keep[dir]; !ok {
			removes = append(removes, Action{Type: ActionRemoveDir, Path: dir})
		}
	}

	sort.Slice(deletes, func(i, j int) bool { return deletes[i].Path < deletes[j].Path })
	return deletes, removes, nil
}

// forgetActions drops cache rows for files that are both undesired and
// already absent from disk, so a crash between delete and cache update still
// converges next run.
func (b *Builder) forgetActions(ctx context.Context, accountID int, want map[string]struct{}) []Action {
	log := logger.FromCtx(ctx)

	rows, err := b.store.ListArtifacts(ctx, accountID)
	if err != nil {
		log.Warnw("artifact listing failed, skipping cache cleanup", "account", accountID, "error", err)
		return nil
	}

	var forgets []Action
	for _, row := range rows {
		if _, ok := want[row.Path]; ok {
			continue
		}
		if b.fs.FileExists(row.Path) {
			// the walk already queued a delete which also drops the row
			continue
		}
		forgets = append(forgets, Action{Type: ActionForget, Path: row.Path})
	}
	return forgets
}

func desiredDirs(desired []Desired) []string {
	seen := map[string]struct{}{}
	for _, d := range desired {
		dir := filepath.Dir(d.Path)
		for dir != "." && dir != string(filepath.Separator) {
			if _, ok := seen[dir]; ok {
				break
			}
			seen[dir] = struct{}{}
			dir = filepath.Dir(dir)
		}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	// parents sort before children
	sort.Strings(dirs)
	return dirs
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}
