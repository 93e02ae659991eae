// Package executor applies plans to the filesystem and keeps the artifact
// cache in step. In simulate mode it walks the same decisions without
// touching anything.
package executor

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"strmsync/pkg/cache"
	"strmsync/pkg/io"
	"strmsync/pkg/logger"
	"strmsync/pkg/plan"
)

const dirPerm = 0o755

// Report tallies what one Apply did, or would have done in simulate mode.
// Written is Created plus Updated. Degraded is filled in by the caller, which
// knows which items exported without metadata.
type Report struct {
	AccountID    int
	Simulated    bool
	CreatedDirs  int
	Written      int
	Created      int
	Updated      int
	Skipped      int
	Deleted      int
	RemovedDirs  int
	Forgotten    int
	Failed       int
	Degraded     int
	BytesWritten int64
}

// Executor applies plans.
type Executor struct {
	store cache.Store
	fs    io.FileIO
}

// New creates an Executor over a cache store and a filesystem.
func New(store cache.Store, fio io.FileIO) *Executor {
	return &Executor{store: store, fs: fio}
}

// Apply runs every action of a plan in order. Individual action failures are
// logged and counted; the run continues so one bad path cannot block the
// rest of the library. Actions under a directory that failed to create are
// skipped as failed too.
func (e *Executor) Apply(ctx context.Context, p *plan.Plan, simulate bool) (*Report, error) {
	log := logger.FromCtx(ctx)
	report := &Report{AccountID: p.AccountID, Simulated: simulate}

	failedDirs := map[string]struct{}{}

	total := len(p.Actions)
	nextProgress := 10

	for i, action := range p.Actions {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		switch action.Type {
		case plan.ActionCreateDir:
			e.applyCreateDir(ctx, action, simulate, report, failedDirs)
		case plan.ActionWriteFile:
			e.applyWrite(ctx, action, simulate, report, failedDirs)
		case plan.ActionSkip:
			e.applySkip(ctx, action, simulate, report)
		case plan.ActionDeleteFile:
			e.applyDelete(ctx, action, simulate, report)
		case plan.ActionRemoveDir:
			e.applyRemoveDir(ctx, action, simulate, report)
		case plan.ActionForget:
			e.applyForget(ctx, action, simulate, report)
		}

		if total >= 10 {
			pct := (i + 1) * 100 / total
			if pct >= nextProgress && nextProgress < 100 {
				log.Debugw("apply progress", "account", p.AccountID, "done", i+1, "total", total, "pct", pct)
				for nextProgress <= pct && nextProgress < 100 {
					nextProgress += 10
				}
			}
		}
	}

	log.Infow("plan applied",
		"account", p.AccountID,
		"simulate", simulate,
		"dirs", report.CreatedDirs,
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped,
		"deleted", report.Deleted,
		"rmdirs", report.RemovedDirs,
		"failed", report.Failed,
		"bytes", humanize.Bytes(uint64(report.BytesWritten)))

	return report, nil
}

func (e *Executor) applyCreateDir(ctx context.Context, action plan.Action, simulate bool, report *Report, failedDirs map[string]struct{}) {
	if underFailedDir(action.Path, failedDirs) {
		report.Failed++
		return
	}
	if simulate {
		logger.FromCtx(ctx).Infow("would create directory", "path", action.Path)
		report.CreatedDirs++
		return
	}
	if err := e.fs.MkdirAll(action.Path, dirPerm); err != nil {
		logger.FromCtx(ctx).Errorw("create directory failed", "path", action.Path, "error", err)
		failedDirs[action.Path] = struct{}{}
		report.Failed++
		return
	}
	report.CreatedDirs++
}

func (e *Executor) applyWrite(ctx context.Context, action plan.Action, simulate bool, report *Report, failedDirs map[string]struct{}) {
	log := logger.FromCtx(ctx)

	if underFailedDir(action.Path, failedDirs) {
		log.Warnw("skipping write under failed directory", "path", action.Path)
		report.Failed++
		return
	}

	if simulate {
		log.Infow("would write file", "path", action.Path, "size", humanize.Bytes(uint64(len(action.Content))))
		countWrite(report, action)
		return
	}

	if err := e.fs.WriteFile(action.Path, action.Content, action.Perm); err != nil {
		log.Errorw("write failed", "path", action.Path, "error", err)
		report.Failed++
		return
	}
	countWrite(report, action)

	// recorded only after the bytes are on disk, so a crash in between
	// leaves a stale cache row, never a phantom one
	e.recordArtifact(ctx, action, report.AccountID)
}

func (e *Executor) applySkip(ctx context.Context, action plan.Action, simulate bool, report *Report) {
	logger.FromCtx(ctx).Debugw("skipping", "path", action.Path, "reason", action.Reason)
	report.Skipped++
	if action.RepairCache && !simulate {
		e.recordArtifact(ctx, action, report.AccountID)
	}
}

func countWrite(report *Report, action plan.Action) {
	report.Written++
	if action.Replaces {
		report.Updated++
	} else {
		report.Created++
	}
	report.BytesWritten += int64(len(action.Content))
}

func (e *Executor) applyDelete(ctx context.Context, action plan.Action, simulate bool, report *Report) {
	log := logger.FromCtx(ctx)

	if simulate {
		log.Infow("would delete file", "path", action.Path)
		report.Deleted++
		return
	}

	if err := e.fs.Remove(action.Path); err != nil {
		log.Errorw("delete failed", "path", action.Path, "error", err)
		report.Failed++
		return
	}
	report.Deleted++

	if err := e.store.DeleteArtifact(ctx, action.Path); err != nil {
		log.Warnw("artifact cache delete failed", "path", action.Path, "error", err)
	}
}

func (e *Executor) applyRemoveDir(ctx context.Context, action plan.Action, simulate bool, report *Report) {
	log := logger.FromCtx(ctx)

	if simulate {
		log.Infow("would remove empty directory", "path", action.Path)
		report.RemovedDirs++
		return
	}

	if err := e.fs.RemoveDir(action.Path); err != nil {
		// a file may have appeared since planning; leave the directory be
		log.Warnw("directory removal skipped", "path", action.Path, "error", err)
		return
	}
	report.RemovedDirs++
}

func (e *Executor) applyForget(ctx context.Context, action plan.Action, simulate bool, report *Report) {
	if simulate {
		report.Forgotten++
		return
	}
	if err := e.store.DeleteArtifact(ctx, action.Path); err != nil {
		logger.FromCtx(ctx).Warnw("artifact cache delete failed", "path", action.Path, "error", err)
		return
	}
	report.Forgotten++
}

func (e *Executor) recordArtifact(ctx context.Context, action plan.Action, accountID int) {
	err := e.store.PutArtifact(ctx, cache.Artifact{
		Path:        action.Path,
		AccountID:   accountID,
		Kind:        action.Kind,
		RemoteID:    action.RemoteID,
		Fingerprint: action.Fingerprint,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		// next run re-verifies against disk content and repairs the row
		logger.FromCtx(ctx).Warnw("artifact cache write failed", "path", action.Path, "error", err)
	}
}

func underFailedDir(path string, failedDirs map[string]struct{}) bool {
	for dir := range failedDirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
