package JioSaavn

import (
	"Resona/Utils"
	"errors"
	"strings"
)

var ErrTrackNotFound = errors.New("track not found in catalog results")
var ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")

// QueryVariants returns the ordered fallback queries for one resolution.
// The combined query goes first; title-only and artist-only are the retry tiers.
func QueryVariants(Title, Artist string) []string {

	return []string{

		Title + " " + Artist,
		Title,
		Artist,

	}

}

// ArtistNamePool collects the names a requested artist may match against:
// the primary artists plus anyone in the full credit list credited as a singer.
func (T *Track) ArtistNamePool() []string {

	Pool := []string{}

	for _, Entry := range T.Artists.Primary {

		Pool = append(Pool, Entry.Name)

	}

	for _, Entry := range T.Artists.All {

		if Entry.Role == "singer" {

			Pool = append(Pool, Entry.Name)

		}

	}

	return Pool

}

// MatchTrack returns the first track in input order accepted by the prefix rules, or nil.
// The query must start with the candidate's title, and the requested artist must start with
// some pooled artist name; catalog titles are often truncated forms of the richer query text.
func MatchTrack(Tracks []Track, WantTitle, WantArtist string) *Track {

	WantTitleFolded := Utils.FoldForCompare(WantTitle)
	WantArtistFolded := Utils.FoldForCompare(WantArtist)

	for Index := range Tracks {

		Candidate := &Tracks[Index]

		if !strings.HasPrefix(WantTitleFolded, Utils.FoldForCompare(Candidate.Name)) {

			continue

		}

		for _, Name := range Candidate.ArtistNamePool() {

			if strings.HasPrefix(WantArtistFolded, Utils.FoldForCompare(strings.TrimSpace(Name))) {

				return Candidate

			}

		}

	}

	return nil

}

// Resolve runs the fallback cascade: each query variant is dispatched, normalized, and matched
// in order, stopping at the first accepted track. Variants never run concurrently; an early
// match must short-circuit the remaining network calls.
func (JS *JioSaavn) Resolve(Title, Artist string) (*Track, error) {

	Variants := QueryVariants(Title, Artist)

	FailedAttempts := 0

	for Ordinal, Variant := range Variants {

		Outcome := JS.Search(Variant, DefaultResultLimit)

		switch Outcome.Kind {

			case OutcomeTransportError, OutcomeMalformedResponse:

				FailedAttempts++

				Utils.Logger.Warnf("Search variant %d/%d failed: %s", Ordinal+1, len(Variants), Outcome.Detail)
				continue

			case OutcomeEmpty:

				continue

		}

		Tracks := make([]Track, 0, len(Outcome.Hits))

		for _, Hit := range Outcome.Hits {

			Tracks = append(Tracks, SongFromRaw(Hit))

		}

		if Matched := MatchTrack(Tracks, Title, Artist); Matched != nil {

			return Matched, nil

		}

	}

	// Only an all-variants transport failure counts as the upstream being down;
	// anything else means the catalog simply has no acceptable candidate

	if FailedAttempts == len(Variants) {

		return nil, ErrUpstreamUnavailable

	}

	return nil, ErrTrackNotFound

}
