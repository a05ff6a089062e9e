package subtitles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/renamarr/internal/mediapath"
)

func TestIsSubtitle(t *testing.T) {
	assert.True(t, IsSubtitle("Subs/movie.en.srt"))
	assert.True(t, IsSubtitle("movie.SRT"))
	assert.True(t, IsSubtitle("movie.vtt"))
	assert.True(t, IsSubtitle("movie.ass"))
	assert.True(t, IsSubtitle("movie.mks"))
	assert.False(t, IsSubtitle("movie.mkv"))
	assert.False(t, IsSubtitle("movie"))
	assert.False(t, IsSubtitle("movie.txt"))
}

func matchRec(fullPath string, subs ...string) *mediapath.Record {
	return &mediapath.Record{FullPath: fullPath, Subtitles: subs}
}

func TestMatch_LanguageName(t *testing.T) {
	rec := matchRec("Movie (2019)/Movie.2019.mkv",
		"Movie (2019)/Subs/Movie.2019.swedish.srt")

	names := Match(rec, "Movie (2019)", nil)
	assert.Equal(t, []string{"Movie (2019).sv.srt"}, names)
}

func TestMatch_ExactCode(t *testing.T) {
	rec := matchRec("Movie (2019)/Movie.2019.mkv",
		"Movie (2019)/Subs/Movie.2019.spa.srt")

	names := Match(rec, "Movie (2019)", nil)
	assert.Equal(t, []string{"Movie (2019).es.srt"}, names)
}

func TestMatch_EnglishBecomesDefault(t *testing.T) {
	rec := matchRec("Movie (2019)/Movie.2019.mkv",
		"Movie (2019)/Subs/Movie.2019.eng.srt")

	names := Match(rec, "Movie (2019)", nil)
	assert.Equal(t, []string{"Movie (2019).default.srt"}, names)
}

func TestMatch_ShortStemDefaultsToEnglish(t *testing.T) {
	// Nothing left after erasing the video stem: no language information.
	rec := matchRec("Movie (2019)/Movie.2019.mkv",
		"Movie (2019)/Movie.2019.srt")

	names := Match(rec, "Movie (2019)", nil)
	assert.Equal(t, []string{"Movie (2019).default.srt"}, names)
}

func TestMatch_ForcedAndSDH(t *testing.T) {
	rec := matchRec("Movie (2019)/Movie.2019.mkv",
		"Movie (2019)/Subs/Movie.2019.forced.en.srt",
		"Movie (2019)/Subs/Movie.2019.sdh.spa.srt")

	names := Match(rec, "Movie (2019)", nil)
	assert.Equal(t, []string{
		"Movie (2019).default.forced.srt",
		"Movie (2019).es.sdh.srt",
	}, names)
}

func TestMatch_FuzzyLanguage(t *testing.T) {
	rec := matchRec("Movie (2019)/Movie.2019.mkv",
		"Movie (2019)/Subs/Movie.2019.swedush.srt")

	names := Match(rec, "Movie (2019)", nil)
	assert.Equal(t, []string{"Movie (2019).sv.srt"}, names)
}

func TestMatch_PreservesOrder(t *testing.T) {
	rec := matchRec("Show/Show.S01E02.mkv",
		"Show/Subs/Show.S01E02.swedish.srt",
		"Show/Subs/Show.S01E02.spa.srt")

	names := Match(rec, "Show - S01E02", nil)
	assert.Equal(t, []string{
		"Show - S01E02.sv.srt",
		"Show - S01E02.es.srt",
	}, names)
}

func TestFilterBundle_SingleSubtitleUntouched(t *testing.T) {
	rec := matchRec("Show/Show.S01E02.mkv", "Show/Subs/anything.srt")
	rec.Title = "Show"
	FilterBundle(rec)
	assert.Len(t, rec.Subtitles, 1)
}

func TestFilterBundle_TitleMentionKeepsAll(t *testing.T) {
	rec := matchRec("Show/Show.S01E02.mkv",
		"Show/Subs/Show.1.srt",
		"Show/Subs/Show.2.srt")
	rec.Title = "Show"
	FilterBundle(rec)
	assert.Len(t, rec.Subtitles, 2)
}

func TestFilterBundle_NarrowsToEpisodeToken(t *testing.T) {
	rec := matchRec("ShowName/ShowName.S01E02.mkv",
		"ShowName/Subs/2_en.srt",
		"ShowName/Subs/S01E02.en.srt",
		"ShowName/Subs/S01E03.en.srt")
	rec.Title = "Unrelated Title"
	rec.Season, rec.HasSeason = 1, true
	rec.Episode, rec.HasEpisode = 2, true
	FilterBundle(rec)
	assert.Equal(t, []string{"ShowName/Subs/S01E02.en.srt"}, rec.Subtitles)
}

func TestFilterBundle_NarrowsSpecialsSeasonZero(t *testing.T) {
	rec := matchRec("ShowName/ShowName.S00E01.mkv",
		"ShowName/Subs/S00E01.en.srt",
		"ShowName/Subs/S01E01.en.srt")
	rec.Title = "Unrelated Title"
	rec.Season, rec.HasSeason = 0, true
	rec.Episode, rec.HasEpisode = 1, true
	FilterBundle(rec)
	assert.Equal(t, []string{"ShowName/Subs/S00E01.en.srt"}, rec.Subtitles)
}

func TestFilterBundle_NoTokenMatchKeepsAll(t *testing.T) {
	rec := matchRec("ShowName/ShowName.S01E02.mkv",
		"ShowName/Subs/a.srt",
		"ShowName/Subs/b.srt")
	rec.Title = "Unrelated Title"
	rec.Season, rec.HasSeason = 1, true
	rec.Episode, rec.HasEpisode = 2, true
	FilterBundle(rec)
	assert.Len(t, rec.Subtitles, 2)
}
