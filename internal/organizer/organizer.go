// Package organizer sequences the pipeline: discover, extract, probe,
// resolve, build destination paths, and move files (or write dry-run
// placeholders). Files are processed one at a time, to completion, in
// discovery order.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/probe"
	"github.com/vmunix/renamarr/internal/renamer"
	"github.com/vmunix/renamarr/internal/resolver"
	"github.com/vmunix/renamarr/internal/scanner"
	"github.com/vmunix/renamarr/internal/subtitles"
	"github.com/vmunix/renamarr/internal/tmdb"
)

// Collision records two source files mapping to the same destination. The
// second source is skipped rather than silently overwriting the first.
type Collision struct {
	Dest   string
	First  string
	Second string
}

func (c Collision) Error() string {
	return fmt.Sprintf("destination collision: %s and %s both map to %s", c.First, c.Second, c.Dest)
}

// Summary reports what a run did.
type Summary struct {
	Discovered int
	Resolved   int
	Unresolved []string // titles lacking a catalog id after resolution
	Renamed    int
	Collisions []Collision
}

// Organizer runs the rename pipeline over one library.
type Organizer struct {
	fs      afero.Fs
	scanner *scanner.Scanner
	res     *resolver.Resolver
	prober  *probe.Prober
	deny    *mediapath.DenyList
	log     *slog.Logger
	dryRun  bool
}

// New assembles an Organizer. prober may be nil when probing is disabled.
func New(fsys afero.Fs, res *resolver.Resolver, prober *probe.Prober, deny *mediapath.DenyList, dryRun bool, log *slog.Logger) *Organizer {
	if log == nil {
		log = slog.Default()
	}
	return &Organizer{
		fs:      fsys,
		scanner: scanner.New(fsys, log.With("component", "scanner")),
		res:     res,
		prober:  prober,
		deny:    deny,
		log:     log,
		dryRun:  dryRun,
	}
}

// Run processes every video under root and places results under outRoot.
// It stops early when ctx is canceled; in-flight moves are not rolled back.
func (o *Organizer) Run(ctx context.Context, root, outRoot string, kind mediapath.Kind) (*Summary, error) {
	records, err := o.scanner.Scan(root, kind, o.deny)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Discovered: len(records)}
	dests := make(map[string]*mediapath.Record, len(records))
	sawPathLadder, sawProbeLadder := false, false

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if rec.Resolution != "" {
			sawPathLadder = true
		} else if o.probeResolution(ctx, root, rec) {
			sawProbeLadder = true
		}

		o.annotate(ctx, rec, summary)

		dest := renamer.BuildPath(rec)
		if first, ok := dests[dest]; ok {
			c := Collision{Dest: dest, First: first.FullPath, Second: rec.FullPath}
			o.log.Error("skipping colliding record", "error", c)
			summary.Collisions = append(summary.Collisions, c)
			continue
		}
		dests[dest] = rec

		subNames := subtitles.Match(rec, renamer.Stem(dest), o.deny)

		if err := o.place(root, outRoot, rec, dest, subNames); err != nil {
			return summary, err
		}
		summary.Renamed++
	}

	if sawPathLadder && sawProbeLadder {
		o.log.Warn("library mixes path-derived and probe-derived resolution labels (e.g. 2160p vs 4K); review before relying on them")
	}

	return summary, nil
}

// probeResolution fills in the resolution from ffprobe when the path had no
// token. Reports whether a probe-derived label was set.
func (o *Organizer) probeResolution(ctx context.Context, root string, rec *mediapath.Record) bool {
	if o.prober == nil || !o.prober.Available() {
		return false
	}
	abs := filepath.Join(root, filepath.FromSlash(rec.FullPath))
	width, _, err := o.prober.WidthHeight(ctx, abs)
	if err != nil {
		o.log.Debug("probe failed", "path", rec.FullPath, "error", err)
		return false
	}
	rec.Resolution = probe.LabelForWidth(width)
	return true
}

// annotate fills the record's display name, year, and catalog id from the
// resolver. A failed lookup leaves the record unresolved, which shows up in
// the output path as a missing id tag; that is the operator's signal to fix
// the title by hand.
func (o *Organizer) annotate(ctx context.Context, rec *mediapath.Record, summary *Summary) {
	details, err := o.res.ResolveDetails(ctx, rec)
	if err != nil {
		if !errors.Is(err, tmdb.ErrNotFound) {
			o.log.Warn("resolution failed", "title", rec.Title, "error", err)
		}
		summary.Unresolved = append(summary.Unresolved, rec.Title)
		return
	}

	switch {
	case details.Season != nil:
		if name := details.EpisodeName(rec.Episode); name != "" {
			rec.Name = name
		}
		if rec.Year == 0 {
			rec.Year = details.Season.Year()
		}
		if rec.TMDBID == 0 {
			rec.TMDBID = details.Season.ShowID
		}
	case details.Movie != nil:
		if rec.Year == 0 {
			rec.Year = details.Movie.Year()
		}
		if rec.TMDBID == 0 {
			rec.TMDBID = details.Movie.ID
		}
	}
	summary.Resolved++
}

// place moves the video and its subtitles to their destinations, or writes
// placeholder text files describing the move in dry-run mode.
func (o *Organizer) place(root, outRoot string, rec *mediapath.Record, dest string, subNames []string) error {
	destAbs := filepath.Join(outRoot, filepath.FromSlash(dest))
	destDir := filepath.Dir(destAbs)

	if err := o.fs.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", destDir, err)
	}

	if o.dryRun {
		return o.placeDryRun(rec, dest, destAbs, destDir, subNames)
	}

	srcAbs := filepath.Join(root, filepath.FromSlash(rec.FullPath))
	o.log.Info("moving", "from", rec.FullPath, "to", dest)
	if err := o.fs.Rename(srcAbs, destAbs); err != nil {
		return fmt.Errorf("move %s: %w", rec.FullPath, err)
	}

	for i, sub := range rec.Subtitles {
		if i >= len(subNames) {
			break
		}
		subSrc := filepath.Join(root, filepath.FromSlash(sub))
		subDest := filepath.Join(destDir, subNames[i])
		o.log.Info("moving subtitle", "from", sub, "to", subNames[i])
		if err := o.fs.Rename(subSrc, subDest); err != nil {
			return fmt.Errorf("move subtitle %s: %w", sub, err)
		}
	}

	return nil
}

func (o *Organizer) placeDryRun(rec *mediapath.Record, dest, destAbs, destDir string, subNames []string) error {
	body := fmt.Sprintf("fullpath: %s\nnewpath: %s\nrecord: %+v\n", rec.FullPath, dest, *rec)
	if err := afero.WriteFile(o.fs, destAbs+".txt", []byte(body), 0o644); err != nil {
		return fmt.Errorf("write placeholder: %w", err)
	}

	for i, sub := range rec.Subtitles {
		if i >= len(subNames) {
			break
		}
		body := fmt.Sprintf("fullpath: %s\nnewpath: %s\n", sub, subNames[i])
		subAbs := filepath.Join(destDir, subNames[i]) + ".txt"
		if err := afero.WriteFile(o.fs, subAbs, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write subtitle placeholder: %w", err)
		}
	}
	return nil
}

// OutputRoot resolves the output directory name relative to the library's
// parent directory, the way the rename command documents it.
func OutputRoot(libraryRoot, outName string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(libraryRoot)), outName)
}
