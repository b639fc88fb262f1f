package JioSaavn

import (
	"regexp"
)

// Types

type ImageVariant struct {

	Quality string `json:"quality"`
	URL     string `json:"url"`

}

type Artist struct {

	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`

	Image []ImageVariant `json:"image"`

	Type string `json:"type"`
	URL  string `json:"url"`

}

type Album struct {

	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`

}

type TrackArtists struct {

	Primary  []Artist `json:"primary"`
	Featured []Artist `json:"featured"`
	All      []Artist `json:"all"`

}

// Track is the canonical, stable-shape record one raw search hit normalizes into.
type Track struct {

	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Year        string `json:"year"`
	ReleaseDate string `json:"releaseDate"`

	Duration *int `json:"duration"`

	Label           string `json:"label"`
	ExplicitContent bool   `json:"explicitContent"`

	PlayCount *int64 `json:"playCount"`

	Language  string `json:"language"`
	HasLyrics bool   `json:"hasLyrics"`
	LyricsID  string `json:"lyricsId"`

	URL       string `json:"url"`
	Copyright string `json:"copyright"`

	Album   Album        `json:"album"`
	Artists TrackArtists `json:"artists"`

	Image []ImageVariant `json:"image"`

	DownloadURL *string `json:"downloadUrl"`

}

// ResolvedTrack is the flattened payload the resolve endpoint responds with.
type ResolvedTrack struct {

	Name      string `json:"name"`
	Year      string `json:"year"`
	Copyright string `json:"copyright"`

	Duration *int `json:"duration"`

	Label     string `json:"label"`
	AlbumName string `json:"albumName"`

	Artists []Artist `json:"artists"`

	DownloadURL *string `json:"downloadUrl"`

}

// Flatten collapses a matched track into the resolve response shape, artists ordered primary, featured, all.
func (T *Track) Flatten() ResolvedTrack {

	Artists := make([]Artist, 0, len(T.Artists.Primary)+len(T.Artists.Featured)+len(T.Artists.All))

	Artists = append(Artists, T.Artists.Primary...)
	Artists = append(Artists, T.Artists.Featured...)
	Artists = append(Artists, T.Artists.All...)

	return ResolvedTrack{

		Name:        T.Name,
		Year:        T.Year,
		Copyright:   T.Copyright,
		Duration:    T.Duration,
		Label:       T.Label,
		AlbumName:   T.Album.Name,
		Artists:     Artists,
		DownloadURL: T.DownloadURL,

	}

}

// Image variants

var ImageQualities = []string{"50x50", "150x150", "500x500"}

var SizeTokenRegex = regexp.MustCompile(`150x150|50x50`)
var ProtocolRegex = regexp.MustCompile(`^http://`)

// BuildImageVariants expands one templated artwork URL into the fixed quality ladder.
// Empty input yields an empty slice; otherwise exactly one variant per quality tag.
func BuildImageVariants(TemplateURL string) []ImageVariant {

	if TemplateURL == "" {

		return []ImageVariant{}

	}

	Variants := make([]ImageVariant, 0, len(ImageQualities))

	for _, Quality := range ImageQualities {

		URL := TemplateURL

		if Location := SizeTokenRegex.FindStringIndex(URL); Location != nil {

			URL = URL[:Location[0]] + Quality + URL[Location[1]:]

		}

		URL = ProtocolRegex.ReplaceAllString(URL, "https://")

		Variants = append(Variants, ImageVariant{

			Quality: Quality,
			URL:     URL,

		})

	}

	return Variants

}
