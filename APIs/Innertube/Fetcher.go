package Innertube

import (
	"Resona/Utils"
	"context"
	"time"

	innertubego "github.com/nezbut/innertube-go"
)

// Variables

var InnerTubeClient *innertubego.InnerTube;

// Functions

func InitClient() error {

	InitializedClient, ErrorInitializing := innertubego.NewInnerTube(nil, "WEB_REMIX", "1.20240715.01.00", "", "", "", nil, true);

	if ErrorInitializing != nil {

		Utils.Logger.Error("Error initializing InnerTube client: " + ErrorInitializing.Error())
		return ErrorInitializing;

	}

	InnerTubeClient = InitializedClient;

	Utils.Logger.Info("InnerTube client initialized successfully.")
	return nil;

}

func SearchForSongs(Query string) []Song {

	Results := []Song{}
	Params := "EgWKAQIIAWoQEAMQCRAFEBAQBBAVEAoQEQ%3D%3D"; // Songs

	RequestContext, RequestCancel := context.WithTimeout(context.Background(), 5 * time.Second) // 5s timeout
	defer RequestCancel()

	SearchRequestResults, SearchRequestError := InnerTubeClient.Search(RequestContext, &Query, &Params, nil)

	if SearchRequestError != nil {

		Utils.Logger.Error("Error performing search request: " + SearchRequestError.Error())
		return Results

	}

	ShelfContentsVal, ShelfContentsExists := Utils.GetNestedValue(SearchRequestResults, "contents", "tabbedSearchResultsRenderer", "tabs")

	if !ShelfContentsExists {

		return Results

	}

	Tabs, TabsExists := ShelfContentsVal.([]interface{})

	if !TabsExists || len(Tabs) == 0 {

		return Results

	}

	ContentsVal, ContentsExists := Utils.GetNestedValue(Tabs[0], "tabRenderer", "content", "sectionListRenderer", "contents")

	if !ContentsExists {

		return Results

	}

	SectionContentsVal, SectionContentsExists := ContentsVal.([]interface{})

	if !SectionContentsExists || len(SectionContentsVal) == 0 {

		return Results

	}

	// Finds the musicShelfRenderer (skips itemSectionRenderer if present, e.g., "showing results for...")

	var MusicShelfRendererFound bool

	for _, Section := range SectionContentsVal {

		ShelfContentsVal, ShelfContentsExists = Utils.GetNestedValue(Section, "musicShelfRenderer", "contents")

		if ShelfContentsExists {

			MusicShelfRendererFound = true
			break

		}

	}

	if !MusicShelfRendererFound {

		return Results

	}

	ShelfContents, ShelfContentsOK := ShelfContentsVal.([]interface{})

	if !ShelfContentsOK {

		return Results

	}

	// Parse each song result

	for _, Item := range ShelfContents {

		ItemMap, ItemMapOK := Item.(map[string]interface{})

		if !ItemMapOK {

			continue

		}

		Renderer, RendererExists := ItemMap["musicResponsiveListItemRenderer"].(map[string]interface{})

		if !RendererExists {

			continue

		}

		Song, CreateError := ParseSongItem(Renderer)

		if CreateError == nil {

			Results = append(Results, Song)

		}

	}

	return Results

}
