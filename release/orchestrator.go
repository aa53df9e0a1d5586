package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fastcat.org/go/relkit/shx"
	"fastcat.org/go/relkit/suite"
)

// forEach runs a per-package action over every package in dependency order,
// umbrella last. Order matters: later packages may depend on earlier ones
// having been built or installed already.
func (r *Runner) forEach(
	ctx context.Context,
	action func(context.Context, suite.Package) error,
) error {
	for _, p := range r.Suite.All() {
		if err := action(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) UpdateAllVersions(ctx context.Context) error {
	return r.forEach(ctx, r.UpdateVersions)
}

func (r *Runner) BuildAll(ctx context.Context) error {
	return r.forEach(ctx, r.Build)
}

func (r *Runner) InstallAll(ctx context.Context) error {
	return r.forEach(ctx, r.Install)
}

func (r *Runner) PushAll(ctx context.Context) error {
	return r.forEach(ctx, r.Push)
}

// BundleCheck verifies the suite's dependency lock resolves before anything
// gets committed or pushed.
func (r *Runner) BundleCheck(ctx context.Context) error {
	if _, err := shx.Run(ctx,
		[]string{"bundle", "check"},
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("bundle check: %w", err)
	}
	return nil
}

// Commit records the release bookkeeping changes, if any. The commit message
// starts fully commented out so the operator has to uncomment it to confirm;
// aborting the editor aborts the release.
func (r *Runner) Commit(ctx context.Context) error {
	res, err := shx.Run(ctx,
		[]string{"git", "status", "--porcelain"},
		shx.CaptureOutput(),
		shx.WithCombinedError(),
	)
	if err != nil {
		return fmt.Errorf("git status: %w", err)
	}
	if res.Text() == "" {
		r.Log.Info("working tree clean, nothing to commit")
		return nil
	}
	if err := os.MkdirAll(r.Suite.OutputDir, 0o755); err != nil {
		return err
	}
	msgFile := filepath.Join(r.Suite.OutputDir, "commit_message.txt")
	msg := fmt.Sprintf("# UNCOMMENT THE LINE BELOW TO COMMIT\n# Preparing for %s release\n", r.Version)
	if err := os.WriteFile(msgFile, []byte(msg), 0o644); err != nil {
		return err
	}
	defer os.Remove(msgFile) // nolint:errcheck
	if _, err := shx.Run(ctx,
		[]string{"git", "add", "."},
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	if _, err := shx.Run(ctx,
		[]string{"git", "commit", "--verbose", "--template=" + msgFile},
		shx.PassStdio(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

// TagAndPush creates the signed release tag and pushes tags to the remote.
func (r *Runner) TagAndPush(ctx context.Context) error {
	tag := r.Version.Tag()
	r.Log.Info("tagging", "tag", tag)
	if _, err := shx.Run(ctx,
		[]string{"git", "tag", "-s", "-m", tag + " release", tag},
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("git tag %s: %w", tag, err)
	}
	if _, err := shx.Run(ctx,
		[]string{"git", "push", "--tags"},
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("git push --tags: %w", err)
	}
	return nil
}

// ReleaseAll is the whole flow: guards, changelog headers, full build,
// dependency-lock check, bookkeeping commit, tags, publishes. Any failure
// stops the chain where it happened.
func (r *Runner) ReleaseAll(ctx context.Context, skipTag bool) error {
	if err := r.EnsureCleanState(ctx); err != nil {
		return err
	}
	if !skipTag {
		if err := r.CheckTagFree(ctx); err != nil {
			return err
		}
	}
	if err := r.Headers(time.Now()); err != nil {
		return err
	}
	if err := r.BuildAll(ctx); err != nil {
		return err
	}
	if err := r.BundleCheck(ctx); err != nil {
		return err
	}
	if err := r.Commit(ctx); err != nil {
		return err
	}
	if !skipTag {
		if err := r.TagAndPush(ctx); err != nil {
			return err
		}
	}
	return r.PushAll(ctx)
}
