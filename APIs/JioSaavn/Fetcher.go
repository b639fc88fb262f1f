package JioSaavn

import (
	"Resona/Utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

const (

	SearchEndpoint = "https://www.jiosaavn.com/api.php"

	SearchTimeout = 15 * time.Second

	DefaultResultLimit = 10

)

// Dispatch outcome kinds

const (

	OutcomeResults = "Results"
	OutcomeEmpty   = "Empty"

	OutcomeTransportError    = "TransportError"
	OutcomeMalformedResponse = "MalformedResponse"

)

// DispatchOutcome classifies one outbound search attempt.
// Transport failures and undecodable bodies stay distinct from an empty result page.
type DispatchOutcome struct {

	Kind string

	Hits []gjson.Result

	Detail string

}

type JioSaavn struct {

	BaseURL string

	HTTPClient *http.Client

}

var Client *JioSaavn

func Initialize() *JioSaavn {

	Client = &JioSaavn{

		BaseURL: SearchEndpoint,

		// The upstream rejects bare default clients, so requests go out with a Chrome fingerprint

		HTTPClient: Utils.NewBrowserClient(SearchTimeout),

	}

	return Client

}

// Search issues one bounded catalog search call and classifies the outcome.
func (JS *JioSaavn) Search(Query string, Limit int) DispatchOutcome {

	if Limit <= 0 {

		Limit = DefaultResultLimit

	}

	RequestURL := fmt.Sprintf("%s?_format=json&_marker=0&api_version=4&ctx=web6dot0&__call=search.getResults&q=%s&p=0&n=%d", JS.BaseURL, url.QueryEscape(Query), Limit)

	RequestContext, RequestCancel := context.WithTimeout(context.Background(), SearchTimeout)
	defer RequestCancel()

	Request, ErrorCreating := http.NewRequestWithContext(RequestContext, http.MethodGet, RequestURL, nil)

	if ErrorCreating != nil {

		return DispatchOutcome{Kind: OutcomeTransportError, Detail: ErrorCreating.Error()}

	}

	Request.Header.Set("User-Agent", Utils.BrowserUserAgent())
	Request.Header.Set("Accept", "application/json")

	Response, ErrorFetching := JS.HTTPClient.Do(Request)

	if ErrorFetching != nil {

		return DispatchOutcome{Kind: OutcomeTransportError, Detail: ErrorFetching.Error()}

	}

	defer Response.Body.Close()

	Body, ErrorReading := io.ReadAll(Response.Body)

	if ErrorReading != nil {

		return DispatchOutcome{Kind: OutcomeTransportError, Detail: ErrorReading.Error()}

	}

	if Response.StatusCode < 200 || Response.StatusCode > 299 {

		return DispatchOutcome{Kind: OutcomeTransportError, Detail: fmt.Sprintf("upstream returned status %d", Response.StatusCode)}

	}

	if !gjson.ValidBytes(Body) {

		return DispatchOutcome{Kind: OutcomeMalformedResponse, Detail: "response body is not valid JSON"}

	}

	// A missing or non-array results field is an empty page, not a malformed body;
	// the upstream omits it freely when nothing matches

	Results := gjson.GetBytes(Body, "results")

	if !Results.IsArray() {

		return DispatchOutcome{Kind: OutcomeEmpty}

	}

	Hits := Results.Array()

	if len(Hits) == 0 {

		return DispatchOutcome{Kind: OutcomeEmpty}

	}

	return DispatchOutcome{Kind: OutcomeResults, Hits: Hits}

}

// SearchAll normalizes every hit of a single search, with no matching applied.
func (JS *JioSaavn) SearchAll(Query string, Limit int) ([]Track, error) {

	Outcome := JS.Search(Query, Limit)

	switch Outcome.Kind {

		case OutcomeEmpty:

			return []Track{}, nil

		case OutcomeTransportError, OutcomeMalformedResponse:

			return nil, fmt.Errorf("jiosaavn search failed: %s", Outcome.Detail)

	}

	Tracks := make([]Track, 0, len(Outcome.Hits))

	for _, Hit := range Outcome.Hits {

		Tracks = append(Tracks, SongFromRaw(Hit))

	}

	return Tracks, nil

}
