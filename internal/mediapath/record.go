// Package mediapath infers structured media metadata from library-relative
// file paths. Paths are slash-separated and relative to the library root;
// the extractor never touches the filesystem.
package mediapath

// Kind distinguishes the two library layouts.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// Class categorizes what a video file actually is.
type Class int

const (
	ClassMain Class = iota
	ClassSample
	ClassFeaturette
)

func (c Class) String() string {
	switch c {
	case ClassSample:
		return "sample"
	case ClassFeaturette:
		return "featurette"
	default:
		return "main"
	}
}

// FeaturetteTag refines a featurette. A file may carry several tags.
type FeaturetteTag int

const (
	TagBehindTheScenes FeaturetteTag = iota
	TagInterview
	TagMakingOf
	TagPromo
	TagTrailer
	TagTeaser
	TagWebisode
	TagDeletedScene
	TagExtra
)

func (t FeaturetteTag) String() string {
	switch t {
	case TagBehindTheScenes:
		return "behind-the-scenes"
	case TagInterview:
		return "interview"
	case TagMakingOf:
		return "making-of"
	case TagPromo:
		return "promo"
	case TagTrailer:
		return "trailer"
	case TagTeaser:
		return "teaser"
	case TagWebisode:
		return "webisode"
	case TagDeletedScene:
		return "deleted-scene"
	case TagExtra:
		return "extra"
	default:
		return "unknown"
	}
}

// Record is the metadata extracted from one video file's path, later
// annotated by the resolver. FullPath is the record's identity and is never
// rewritten. Season and Episode carry explicit presence flags because 0 is a
// legitimate value (specials live in Season 00); the other numeric fields
// treat zero as "unset", and Resolution and Name are unset when empty.
type Record struct {
	Kind           Kind
	Title          string // from the top-level directory, never overwritten
	Name           string // display name; episode title once resolved
	Extension      string
	Class          Class
	FeaturetteTags []FeaturetteTag
	Season         int
	HasSeason      bool
	Episode        int
	HasEpisode     bool
	EpisodeEnd     int // only meaningful when HasEpisode and nonzero
	Resolution     string
	Year           int
	FullPath       string   // original library-relative path, identity
	Subtitles      []string // associated subtitle paths, ordered
	TMDBID         int64
}

// HasTag reports whether the record carries the given featurette tag.
func (r *Record) HasTag(tag FeaturetteTag) bool {
	for _, t := range r.FeaturetteTags {
		if t == tag {
			return true
		}
	}
	return false
}
