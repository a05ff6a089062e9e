// Package subtitles matches loose subtitle files to a spoken language and
// derives their canonical filenames next to the renamed video.
package subtitles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vmunix/renamarr/internal/language"
	"github.com/vmunix/renamarr/internal/mediapath"
)

// Extensions is the fixed set of recognized subtitle file extensions.
var Extensions = map[string]bool{
	"srt": true, "vtt": true, "ass": true, "mks": true,
}

var subtitleSeparators = regexp.MustCompile(`[.\-_,;:]`)

// IsSubtitle reports whether path has a recognized subtitle extension.
func IsSubtitle(path string) bool {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return false
	}
	return Extensions[strings.ToLower(path[i+1:])]
}

// Match produces one canonical subtitle filename per subtitle path attached
// to the record, in input order. Each name has the form
// <stem>.<code>.[forced.][sdh.]<ext>; subtitles with no detectable language
// default to English's "default" tag.
func Match(rec *mediapath.Record, canonicalStem string, deny *mediapath.DenyList) []string {
	names := make([]string, 0, len(rec.Subtitles))
	videoStem := stem(rec.FullPath)

	for _, sub := range rec.Subtitles {
		names = append(names, matchOne(sub, videoStem, canonicalStem, deny))
	}

	return names
}

func matchOne(sub, videoStem, canonicalStem string, deny *mediapath.DenyList) string {
	ext := ""
	if i := strings.LastIndex(sub, "."); i >= 0 {
		ext = sub[i+1:]
	}
	text := stem(sub)

	// The video's own filename often prefixes its subtitles; erase it so it
	// cannot outvote the actual language token.
	if videoStem != "" {
		if re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(videoStem)); err == nil {
			text = re.ReplaceAllString(text, "")
		}
	}

	text = strings.ToLower(subtitleSeparators.ReplaceAllString(text, " "))
	text = deny.Scrub(text)

	lang, sdh := detect(text)

	code := language.ShortCode(lang)

	name := canonicalStem + "." + code + "."
	if strings.Contains(text, "forced") {
		name += "forced."
	}
	if sdh {
		name += "sdh."
	}
	return name + ext
}

// detect scans the cleaned subtitle text for a language. Exact code variants
// win over fuzzy name matches; a later token's exact match may still replace
// an earlier fuzzy one. Very short stems carry no language information and
// default to English.
func detect(text string) (lang string, sdh bool) {
	if len(text) < 2 {
		return language.English, false
	}

	found := false
	lang = language.English

	for _, tok := range strings.Fields(text) {
		if tok == "sdh" {
			sdh = true
			continue
		}
		if len(tok) < 2 {
			continue
		}
		if name, ok := language.FromCode(tok); ok {
			lang = name
			break
		}
		if found {
			break
		}
		if name, ok := language.Closest(tok); ok {
			lang = name
			found = true
		}
	}

	return lang, sdh
}

// FilterBundle narrows a record's subtitle list when its directory appears to
// mix subtitles for several episodes. If no subtitle path mentions the title
// or resolved name, the bundle is assumed unrelated and is narrowed to the
// first path carrying the record's zero-padded season/episode token; when no
// such path exists the full list is kept.
func FilterBundle(rec *mediapath.Record) {
	if len(rec.Subtitles) <= 1 {
		return
	}

	for _, sub := range rec.Subtitles {
		if rec.Title != "" && strings.Contains(sub, rec.Title) {
			return
		}
		if rec.Name != "" && strings.Contains(sub, rec.Name) {
			return
		}
	}

	token := episodeToken(rec)
	if token == "" {
		return
	}
	for _, sub := range rec.Subtitles {
		if strings.Contains(sub, token) || strings.Contains(sub, strings.ToLower(token)) {
			rec.Subtitles = []string{sub}
			return
		}
	}
}

func episodeToken(rec *mediapath.Record) string {
	token := ""
	if rec.HasSeason {
		token += fmt.Sprintf("S%02d", rec.Season)
	}
	if rec.HasEpisode {
		token += fmt.Sprintf("E%02d", rec.Episode)
	}
	return token
}

// stem returns the final path element without its extension.
func stem(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	if i := strings.LastIndex(p, "."); i >= 0 {
		p = p[:i]
	}
	return p
}
