// Package namer maps raw catalog titles to canonical, filesystem-safe
// names and path segments. Normalization is a pure function of its inputs;
// the Namer itself only adds collision tracking within one account+kind.
package namer

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultTagDenylist holds the release-tag tokens stripped from titles.
var DefaultTagDenylist = []string{
	"4K", "8K", "1080p", "720p", "HDR10", "HDR", "H.264", "H.265", "HEVC",
}

var (
	fsSafePattern     = regexp.MustCompile(`[\\/:*?"<>|]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type Namer struct {
	tagPattern *regexp.Regexp
	claims     map[string]string
}

// New creates a Namer with the given tag denylist. An empty denylist falls
// back to DefaultTagDenylist. The Namer is scoped to one account and kind;
// collision disambiguation does not carry across scopes.
func New(denylist []string) *Namer {
	if len(denylist) == 0 {
		denylist = DefaultTagDenylist
	}

	quoted := make([]string, len(denylist))
	for i, token := range denylist {
		quoted[i] = regexp.QuoteMeta(token)
	}

	pattern := regexp.MustCompile(`(?i)(\b(` + strings.Join(quoted, "|") + `)\b|\[[^\]]+\])`)
	return &Namer{
		tagPattern: pattern,
		claims:     map[string]string{},
	}
}

// NormalizeTitle unicode-normalizes a raw title and strips release-tag
// noise and redundant separators.
func (n *Namer) NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	title = norm.NFKC.String(title)
	title = n.tagPattern.ReplaceAllString(title, "")
	title = whitespacePattern.ReplaceAllString(title, " ")
	return strings.Trim(title, " -._")
}

// FSSafe substitutes path-unsafe characters. Substitution only, never
// truncation; an all-unsafe name degrades to "_".
func FSSafe(name string) string {
	name = strings.TrimSpace(name)
	name = fsSafePattern.ReplaceAllString(name, "_")
	name = strings.Trim(name, " .")
	if name == "" {
		name = "_"
	}
	return name
}

// MovieStem builds the canonical movie folder/file stem. The year suffix is
// only appended when the year is known.
func MovieStem(title string, year int) string {
	if year > 0 {
		return FSSafe(fmt.Sprintf("%s (%d)", title, year))
	}
	return FSSafe(title)
}

// ShowStem builds the canonical series folder stem.
func ShowStem(title string) string {
	return FSSafe(title)
}

// SeasonDir builds the season folder segment.
func SeasonDir(season int) string {
	return fmt.Sprintf("Season %02d", season)
}

// EpisodeStem builds the canonical episode file stem.
func EpisodeStem(season, episode int, title string) string {
	stem := strings.Trim(fmt.Sprintf("S%02dE%02d - %s", season, episode, title), " -")
	return FSSafe(stem)
}

// Claim registers a stem for a remote id and returns the stem to use. When
// two distinct items normalize to the same stem, the second gets a
// disambiguator derived from its remote id rather than silently colliding.
func (n *Namer) Claim(stem, remoteID string) string {
	owner, ok := n.claims[stem]
	if !ok {
		n.claims[stem] = remoteID
		return stem
	}
	if owner == remoteID {
		return stem
	}

	disambiguated := fmt.Sprintf("%s [id-%s]", stem, FSSafe(remoteID))
	n.claims[disambiguated] = remoteID
	return disambiguated
}
