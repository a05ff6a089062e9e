// Package renamer builds canonical library-relative destination paths from
// resolved media records.
package renamer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vmunix/renamarr/internal/mediapath"
)

// illegalChars are stripped from every generated path. Slashes are the path
// separator and are never produced inside a component.
var illegalChars = regexp.MustCompile(`[:*?"<>|]`)

// BuildPath derives the destination path for a record. It is a pure
// function of the record: calling it twice on an unchanged record yields a
// byte-identical path.
func BuildPath(rec *mediapath.Record) string {
	dir := rec.Title
	if rec.Year != 0 {
		dir += fmt.Sprintf(" (%d)", rec.Year)
	}
	if rec.TMDBID != 0 {
		dir += fmt.Sprintf(" [tmdbid-%d]", rec.TMDBID)
	}

	var p string
	if rec.Kind == mediapath.KindShow {
		p = showPath(rec, dir)
	} else {
		p = moviePath(rec, dir)
	}

	return illegalChars.ReplaceAllString(p, "")
}

// Stem returns the filename of a built path without its extension; subtitle
// names are derived from it.
func Stem(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	if i := strings.LastIndex(p, "."); i >= 0 {
		p = p[:i]
	}
	return p
}

func moviePath(rec *mediapath.Record, dir string) string {
	file := rec.Title
	if rec.Resolution != "" {
		file += fmt.Sprintf(" - [%s]", rec.Resolution)
	}
	return dir + "/" + file + "." + rec.Extension
}

func showPath(rec *mediapath.Record, dir string) string {
	if rec.HasSeason {
		dir += fmt.Sprintf("/Season %02d", rec.Season)
	}

	switch rec.Class {
	case mediapath.ClassSample:
		return dir + "/samples/" + rec.Name + "." + rec.Extension
	case mediapath.ClassFeaturette:
		return dir + "/" + featuretteBucket(rec) + "/" + rec.Name + "." + rec.Extension
	}

	if rec.HasSeason && rec.HasEpisode {
		file := fmt.Sprintf("%s - S%02dE%02d", rec.Title, rec.Season, rec.Episode)
		if rec.EpisodeEnd != 0 {
			file += fmt.Sprintf("-%02d", rec.EpisodeEnd)
		}
		if rec.Name != "" {
			file += " - " + rec.Name
		}
		if rec.Resolution != "" {
			file += fmt.Sprintf(" [%s]", rec.Resolution)
		}
		return dir + "/" + file + "." + rec.Extension
	}

	// No episode numbering to work with; fall back to the movie-style name.
	file := rec.Title
	if rec.Resolution != "" {
		file += fmt.Sprintf(" - [%s]", rec.Resolution)
	}
	return dir + "/" + file + "." + rec.Extension
}

// featuretteBucket picks the destination directory for a featurette. Only
// the highest-priority matching tag decides; untagged featurettes land in
// "other".
func featuretteBucket(rec *mediapath.Record) string {
	buckets := []struct {
		tag  mediapath.FeaturetteTag
		name string
	}{
		{mediapath.TagBehindTheScenes, "behind the scenes"},
		{mediapath.TagInterview, "interview"},
		{mediapath.TagMakingOf, "behind the scenes"},
		{mediapath.TagDeletedScene, "deleted scenes"},
		{mediapath.TagExtra, "extras"},
		{mediapath.TagPromo, "other"},
		{mediapath.TagTeaser, "other"},
		{mediapath.TagTrailer, "trailers"},
		{mediapath.TagWebisode, "featurettes"},
	}
	for _, b := range buckets {
		if rec.HasTag(b.tag) {
			return b.name
		}
	}
	return "other"
}
