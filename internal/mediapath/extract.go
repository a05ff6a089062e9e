package mediapath

import (
	"regexp"
	"strconv"
	"strings"
)

// videoExtensions is the fixed allow-list of recognized container extensions.
var videoExtensions = map[string]bool{
	"mp4": true, "mkv": true, "avi": true, "webm": true, "flv": true,
	"mov": true, "wmv": true, "m4v": true, "3gp": true, "3g2": true,
}

var (
	sepRun     = regexp.MustCompile(`[._\s]+`)
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9åäöũỹẽß\s()\[\]-]`)
	wordHyphen = regexp.MustCompile(`\b-\b`)
	spaceRun   = regexp.MustCompile(`\s+`)

	featuretteRe = regexp.MustCompile(`(?i)featurettes?`)
	sampleRe     = regexp.MustCompile(`(?i)sample`)
	// A year must be followed by a non-"p" character so that "1080p" never
	// loses its first four digits to the year extractor.
	yearRe       = regexp.MustCompile(`[\[(]?\d{4}[^p][\])]?`)
	seasonEpEnd  = regexp.MustCompile(`(?i)S(\d+)E(\d+)-E(\d+)`)
	seasonEp     = regexp.MustCompile(`(?i)S(\d+)E(\d+)`)
	seasonWord   = regexp.MustCompile(`(?i)season (\d+)`)
	resolutionRe = regexp.MustCompile(`(?i)8k|4k|4320p|2160p|1080p|720p|480p`)
)

// featuretteDetectors are applied, in order, to the original full path when
// the record classifies as a featurette. Several may match.
var featuretteDetectors = []struct {
	re  *regexp.Regexp
	tag FeaturetteTag
}{
	{regexp.MustCompile(`(?i)behind the`), TagBehindTheScenes},
	{regexp.MustCompile(`(?i)interview`), TagInterview},
	{regexp.MustCompile(`(?i)making of`), TagMakingOf},
	{regexp.MustCompile(`(?i)promo`), TagPromo},
	{regexp.MustCompile(`(?i)trailer`), TagTrailer},
	{regexp.MustCompile(`(?i)teaser`), TagTeaser},
	{regexp.MustCompile(`(?i)webisode`), TagWebisode},
	{regexp.MustCompile(`(?i)deleted scene`), TagDeletedScene},
	{regexp.MustCompile(`(?i)extra`), TagExtra},
}

// cut removes the first match of re from s, collapsing the seam into a
// single space. It returns the remaining text and the matched substring
// (empty when re did not match).
func cut(re *regexp.Regexp, s string) (string, string) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, ""
	}
	match := s[loc[0]:loc[1]]
	s = spaceRun.ReplaceAllString(s[:loc[0]]+s[loc[1]:], " ")
	return s, match
}

// NormalizeResolution maps path-ladder aliases to their pixel-height label.
func NormalizeResolution(token string) string {
	switch strings.ToLower(token) {
	case "4k":
		return "2160p"
	case "8k":
		return "4320p"
	default:
		return strings.ToLower(token)
	}
}

// Extract parses one library-relative path into a Record. It returns nil
// when the extension is not a recognized video container.
//
// Segments are processed left to right. Every substring claimed as metadata
// is erased from all later segments, so a season tag in a directory name is
// not re-parsed out of the filename. The first segment becomes the title and
// is deliberately left out of that suppression: episode titles may
// legitimately repeat words from the series title. Malformed numeric tokens
// are dropped silently, leaving the field unset.
func Extract(pathStr string, kind Kind, deny *DenyList) *Record {
	ext := ""
	if i := strings.LastIndex(pathStr, "."); i >= 0 {
		ext = pathStr[i+1:]
	}
	if !videoExtensions[strings.ToLower(ext)] {
		return nil
	}

	rec := &Record{
		Kind:      kind,
		Class:     ClassMain,
		Extension: ext,
		FullPath:  pathStr,
	}

	queue := strings.Split(strings.TrimSuffix(pathStr, "."+ext), "/")
	var consumed []string
	first := true

	for len(queue) > 0 {
		part := queue[0]
		queue = queue[1:]

		part = sepRun.ReplaceAllString(part, " ")
		part = disallowed.ReplaceAllString(part, "")

		// "Show - Subsection" separators become individual segments. An
		// episode range like S01E02-E03 also contains a word hyphen and has
		// to survive the split intact.
		if !seasonEpEnd.MatchString(part) {
			if sub := wordHyphen.Split(part, -1); len(sub) > 1 {
				queue = append(append([]string{}, sub...), queue...)
				continue
			}
		}

		for _, c := range consumed {
			part = strings.ReplaceAll(part, c, "")
		}
		part = deny.Scrub(part)

		if part == "" {
			continue
		}

		if p, m := cut(featuretteRe, part); m != "" {
			rec.Class = ClassFeaturette
			consumed = append(consumed, m)
			part = p
		}

		if p, m := cut(sampleRe, part); m != "" {
			rec.Class = ClassSample
			consumed = append(consumed, m)
			part = p
		}

		if rec.Year == 0 {
			if p, m := cut(yearRe, part); m != "" {
				consumed = append(consumed, m)
				part = p
				if y, err := strconv.Atoi(strings.Trim(m, "()[] ")); err == nil {
					rec.Year = y
				}
			}
		}

		if !rec.HasSeason || !rec.HasEpisode {
			if p, m := cut(seasonEpEnd, part); m != "" {
				consumed = append(consumed, m)
				part = p
				if g := seasonEpEnd.FindStringSubmatch(m); g != nil {
					s, err1 := strconv.Atoi(g[1])
					e, err2 := strconv.Atoi(g[2])
					end, err3 := strconv.Atoi(g[3])
					if err1 == nil && err2 == nil && err3 == nil {
						rec.Season, rec.Episode, rec.EpisodeEnd = s, e, end
						rec.HasSeason, rec.HasEpisode = true, true
					}
				}
			}
		}

		if !rec.HasSeason || !rec.HasEpisode {
			if p, m := cut(seasonEp, part); m != "" {
				consumed = append(consumed, m)
				part = p
				if g := seasonEp.FindStringSubmatch(m); g != nil {
					s, err1 := strconv.Atoi(g[1])
					e, err2 := strconv.Atoi(g[2])
					if err1 == nil && err2 == nil {
						rec.Season, rec.Episode = s, e
						rec.HasSeason, rec.HasEpisode = true, true
					}
				}
			}
		}

		if !rec.HasSeason {
			if p, m := cut(seasonWord, part); m != "" {
				consumed = append(consumed, m)
				part = p
				if g := seasonWord.FindStringSubmatch(m); g != nil {
					if s, err := strconv.Atoi(g[1]); err == nil {
						rec.Season = s
						rec.HasSeason = true
					}
				}
			}
		}

		if rec.Resolution == "" {
			if p, m := cut(resolutionRe, part); m != "" {
				consumed = append(consumed, m)
				part = p
				rec.Resolution = NormalizeResolution(m)
			}
		}

		if first {
			first = false
			rec.Title = strings.TrimSpace(part)
			continue
		}

		if len(queue) == 0 {
			// Filename segment. Text before a parenthesized remainder is the
			// display name; a bare leftover deny term is not a name.
			if i := strings.LastIndex(part, "("); i >= 0 {
				rec.Name = strings.TrimSpace(part[:i])
			} else if !deny.MatchesStart(part) {
				rec.Name = strings.TrimSpace(part)
			}
		}
	}

	if rec.Class == ClassFeaturette {
		for _, d := range featuretteDetectors {
			if d.re.MatchString(pathStr) {
				rec.FeaturetteTags = append(rec.FeaturetteTags, d.tag)
			}
		}
	}

	return rec
}
