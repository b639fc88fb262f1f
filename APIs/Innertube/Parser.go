package Innertube

import (
	"Resona/Utils"
	"errors"
	"strconv"
	"strings"
)

// Parser Functions

func ParseSongItem(Renderer map[string]interface{}) (Song, error) {

	VideoIDVal, VideoIDExists := Utils.GetNestedValue(Renderer, "playlistItemData", "videoId")

	if !VideoIDExists {

		return Song{}, errors.New("video ID not found in renderer")

	}

	VideoID, VideoIDValid := VideoIDVal.(string)

	if !VideoIDValid || VideoID == "" {

		return Song{}, errors.New("invalid video ID in renderer")

	}

	FlexColumns, FlexColumnsExists := Renderer["flexColumns"].([]interface{})

	if !FlexColumnsExists || len(FlexColumns) < 2 {

		return Song{}, errors.New("insufficient flex columns in renderer")

	}

	Title := ""

	TitleRuns, TitleRunsValid := Utils.GetNestedValue(FlexColumns[0], "musicResponsiveListItemFlexColumnRenderer", "text", "runs")

	if TitleRunsValid {

		if Runs, RunsOK := TitleRuns.([]interface{}); RunsOK && len(Runs) > 0 {

			if FirstRun, FirstRunOK := Runs[0].(map[string]interface{}); FirstRunOK {

				if TitleText, TitleTextOK := FirstRun["text"].(string); TitleTextOK {

					Title = TitleText

				}

			}

		}

	}

	Artists := []string{}

	Album := ""
	DurationFormatted := ""

	RunsVal, RunsValueOK := Utils.GetNestedValue(FlexColumns[1], "musicResponsiveListItemFlexColumnRenderer", "text", "runs")

	if RunsValueOK {

		if Runs, RunsValid := RunsVal.([]interface{}); RunsValid {

			for Index, Run := range Runs {

				if RunMap, RunMapOK := Run.(map[string]interface{}); RunMapOK {

					if RunText, RunTextOK := RunMap["text"].(string); RunTextOK {

						if RunText == " • " { continue }

						switch Index {

							case 0:

								SplitRunText := strings.SplitN(RunText, ", ", -1);

								for _, Artist := range SplitRunText {

									TrimmedArtist := strings.TrimSpace(strings.ReplaceAll(Artist, "&", ""))

									if TrimmedArtist != "" {

										Artists = append(Artists, TrimmedArtist)

									}

								}

							case 2:

								Album = RunText // Run 2 -> Album

							case 4:

								DurationFormatted = RunText // Run 4 -> Formatted Duration

						}

					}

				}

			}

		}

	}

	Cover := ExtractSongThumbnail(Renderer)
	DurationSeconds := ParseFormattedDuration(DurationFormatted)

	return Song{

		YouTubeID: VideoID,

		Title:   Title,
		Artists: Artists,
		Album:   Album,

		Duration: Duration{

			Seconds:   DurationSeconds,
			Formatted: DurationFormatted,

		},

		Cover: Cover,

	}, nil

}

// ParseFormattedDuration converts "m:ss" or "h:mm:ss" text to whole seconds, or 0 when unparsable.
func ParseFormattedDuration(Formatted string) int {

	if Formatted == "" {

		return 0

	}

	Parts := strings.Split(Formatted, ":")

	Seconds := 0

	for _, Part := range Parts {

		Value, ErrorParsing := strconv.Atoi(strings.TrimSpace(Part))

		if ErrorParsing != nil {

			return 0

		}

		Seconds = Seconds*60 + Value

	}

	return Seconds

}

// ExtractSongThumbnail pulls the largest available thumbnail URL from a song renderer, or an empty string.
func ExtractSongThumbnail(Renderer map[string]interface{}) string {

	ThumbnailsVal, ThumbnailsExists := Utils.GetNestedValue(Renderer, "thumbnail", "musicThumbnailRenderer", "thumbnail", "thumbnails")

	if !ThumbnailsExists {

		return ""

	}

	Thumbnails, ThumbnailsOK := ThumbnailsVal.([]interface{})

	if !ThumbnailsOK || len(Thumbnails) == 0 {

		return ""

	}

	// Last entry is the highest resolution

	LastThumbnail, LastThumbnailOK := Thumbnails[len(Thumbnails)-1].(map[string]interface{})

	if !LastThumbnailOK {

		return ""

	}

	URL, URLOK := LastThumbnail["url"].(string)

	if !URLOK {

		return ""

	}

	return URL

}
