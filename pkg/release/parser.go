package release

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

var (
	// Show.Name.S01E02, Show Name s1e2, Show_Name-S01.E02
	seasonEpisodeRegex = regexp.MustCompile(`(?i)^(.+?)[ ._-]+s(\d{1,3})[ ._-]?e(\d{1,4})`)
	// Show.Name.1x02
	crossEpisodeRegex = regexp.MustCompile(`(?i)^(.+?)[ ._-]+(\d{1,2})x(\d{1,3})(?:[^0-9]|$)`)
	// Movie.Name.1999, Movie Name (2021). The last year-like token wins so
	// titles such as Blade.Runner.2049.2017 keep their number.
	movieYearRegex = regexp.MustCompile(`^(.*[^ ._(\[-])[ ._-]+[(\[]?((?:19|20)\d{2})[)\]]?(?:[^0-9]|$)`)
)

var (
	seriesTokens = []string{"tv", "show", "series"}
	movieTokens  = []string{"movie", "film"}
)

// InferKind guesses the media kind from a download category name.
// Series tokens are checked before movie tokens.
func InferKind(category string) Kind {
	c := strings.ToLower(category)
	for _, tok := range seriesTokens {
		if strings.Contains(c, tok) {
			return KindSeries
		}
	}
	for _, tok := range movieTokens {
		if strings.Contains(c, tok) {
			return KindMovie
		}
	}
	return KindUnknown
}

// Parse extracts a candidate identity from a raw download name.
//
// The category hint picks which pattern family applies. An unknown category
// tries the series patterns and then the movie pattern, taking the kind of
// whichever matches first. When nothing matches the title is the raw name.
func Parse(rawName, categoryHint string) Identity {
	kind := InferKind(categoryHint)
	id := Identity{Kind: kind, Title: rawName}

	if kind != KindMovie {
		if title, season, episode, ok := parseEpisode(rawName); ok {
			id.Kind = KindSeries
			id.Title = title
			id.Season = mo.Some(season)
			id.Episode = mo.Some(episode)
			return id
		}
	}
	if kind != KindSeries {
		if title, year, ok := parseMovie(rawName); ok {
			id.Kind = KindMovie
			id.Title = title
			id.Year = mo.Some(year)
			return id
		}
	}
	return id
}

func parseEpisode(name string) (title string, season, episode int, ok bool) {
	for _, re := range []*regexp.Regexp{seasonEpisodeRegex, crossEpisodeRegex} {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		title = cleanSegment(m[1])
		if title == "" {
			continue
		}
		season, _ = strconv.Atoi(m[2])
		episode, _ = strconv.Atoi(m[3])
		return title, season, episode, true
	}
	return "", 0, 0, false
}

func parseMovie(name string) (title string, year int, ok bool) {
	m := movieYearRegex.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	title = cleanSegment(m[1])
	if title == "" {
		return "", 0, false
	}
	year, _ = strconv.Atoi(m[2])
	return title, year, true
}

// cleanSegment turns a dotted release segment into a display title.
func cleanSegment(s string) string {
	s = strings.NewReplacer(".", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
