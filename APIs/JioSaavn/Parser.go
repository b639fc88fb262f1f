package JioSaavn

import (
	"Resona/Utils"

	"github.com/tidwall/gjson"
)

// SongFromRaw maps one raw catalog search hit onto the canonical Track shape.
// The upstream payload is loosely shaped (optional nests, numbers sometimes encoded as strings),
// so every field access runs through gjson with explicit defaulting. Absent or malformed fields
// become zero values or nil, never errors; one bad hit must not poison the rest of a result page.
func SongFromRaw(Raw gjson.Result) Track {

	MoreInfo := Raw.Get("more_info")

	return Track{

		ID:   Raw.Get("id").String(),
		Name: Raw.Get("title").String(),
		Type: Raw.Get("type").String(),

		Year:        Raw.Get("year").String(),
		ReleaseDate: MoreInfo.Get("release_date").String(),

		Duration: optionalSeconds(MoreInfo.Get("duration")),

		Label:           MoreInfo.Get("label").String(),
		ExplicitContent: flagEquals(Raw.Get("explicit_content"), "1"),

		PlayCount: optionalCount(Raw.Get("play_count")),

		Language:  Raw.Get("language").String(),
		HasLyrics: flagEquals(MoreInfo.Get("has_lyrics"), "true"),
		LyricsID:  MoreInfo.Get("lyrics_id").String(),

		URL:       Raw.Get("perma_url").String(),
		Copyright: MoreInfo.Get("copyright_text").String(),

		Album: Album{

			ID:   MoreInfo.Get("album_id").String(),
			Name: MoreInfo.Get("album").String(),
			URL:  MoreInfo.Get("album_url").String(),

		},

		Artists: TrackArtists{

			Primary:  artistsFromRaw(MoreInfo.Get("artistMap.primary_artists")),
			Featured: artistsFromRaw(MoreInfo.Get("artistMap.featured_artists")),
			All:      artistsFromRaw(MoreInfo.Get("artistMap.artists")),

		},

		Image: BuildImageVariants(Raw.Get("image").String()),

		DownloadURL: decryptedDownloadURL(MoreInfo.Get("encrypted_media_url").String()),

	}

}

func artistsFromRaw(List gjson.Result) []Artist {

	Artists := []Artist{}

	if !List.IsArray() {

		return Artists

	}

	for _, Entry := range List.Array() {

		Artists = append(Artists, Artist{

			ID:    Entry.Get("id").String(),
			Name:  Entry.Get("name").String(),
			Role:  Entry.Get("role").String(),
			Image: BuildImageVariants(Entry.Get("image").String()),
			Type:  Entry.Get("type").String(),
			URL:   Entry.Get("perma_url").String(),

		})

	}

	return Artists

}

// flagEquals reports whether the raw value is exactly the given string literal.
// The upstream encodes its booleans as the strings "1" and "true"; numeric lookalikes do not count.
func flagEquals(Value gjson.Result, Literal string) bool {

	return Value.Type == gjson.String && Value.Str == Literal

}

// optionalSeconds parses a numeric-or-string duration, mapping zero, negative, and unparsable values to nil.
func optionalSeconds(Value gjson.Result) *int {

	Seconds := int(Value.Int())

	if Seconds <= 0 {

		return nil

	}

	return &Seconds

}

// optionalCount parses a numeric-or-string play count, mapping zero, negative, and unparsable values to nil.
func optionalCount(Value gjson.Result) *int64 {

	Count := Value.Int()

	if Count <= 0 {

		return nil

	}

	return &Count

}

// decryptedDownloadURL decodes the obfuscated media link, yielding nil when the field is absent or decryption fails.
func decryptedDownloadURL(Encrypted string) *string {

	if Encrypted == "" {

		return nil

	}

	Decrypted, ErrorDecrypting := DecryptMediaURL(Encrypted)

	if ErrorDecrypting != nil {

		Utils.Logger.Warnf("Failed to decrypt media URL: %s", ErrorDecrypting.Error())
		return nil

	}

	return &Decrypted

}
