// Package scanner discovers video files under a library root and associates
// nearby subtitle files with each one.
package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/subtitles"
)

// Scanner walks a library tree. The filesystem is abstracted so tests run
// against an in-memory tree.
type Scanner struct {
	fs  afero.Fs
	log *slog.Logger
}

// New creates a Scanner over the given filesystem.
func New(fsys afero.Fs, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{fs: fsys, log: log}
}

// Scan walks root and returns one record per recognized video file, each
// with its associated (and possibly narrowed) subtitle paths. All record
// paths are slash-separated and relative to root.
func (s *Scanner) Scan(root string, kind mediapath.Kind, deny *mediapath.DenyList) ([]*mediapath.Record, error) {
	var records []*mediapath.Record
	discovered := 0

	err := afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		discovered++
		if discovered%100 == 0 {
			s.log.Info("scanning", "discovered", discovered)
		}

		rel, err := relSlash(root, path)
		if err != nil {
			return err
		}

		rec := mediapath.Extract(rel, kind, deny)
		if rec == nil {
			return nil
		}

		subs, err := s.collectSubtitles(root, rel)
		if err != nil {
			return err
		}
		rec.Subtitles = subs
		subtitles.FilterBundle(rec)

		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	s.log.Info("scan complete", "discovered", discovered, "videos", len(records))
	return records, nil
}

// collectSubtitles gathers every subtitle file under the video's directory,
// recursively, as root-relative paths in walk order.
func (s *Scanner) collectSubtitles(root, videoRel string) ([]string, error) {
	dir := filepath.Join(root, filepath.FromSlash(path.Dir(videoRel)))

	var subs []string
	err := afero.Walk(s.fs, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := relSlash(root, path)
		if err != nil {
			return err
		}
		if subtitles.IsSubtitle(rel) {
			subs = append(subs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect subtitles for %s: %w", videoRel, err)
	}
	return subs, nil
}

func relSlash(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}
