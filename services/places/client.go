package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mandry/utils"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Gateway wraps the third-party places API. It is constructed once and
// injected wherever place data is needed; there is no package-level client.
type Gateway interface {
	// PlaceDetails fetches the full record for a place, including its
	// current third-party reviews.
	PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)
	// NearbySearch lists tourist attractions around a coordinate.
	NearbySearch(ctx context.Context, location GeoQuery) ([]PlaceSummary, error)
	// TextSearch runs a free-text place search biased around a coordinate.
	TextSearch(ctx context.Context, query string, location GeoQuery) ([]PlaceSummary, error)
	// PhotoURL resolves a photo reference into a fetchable URL.
	PhotoURL(photoReference string, maxWidth int) string
}

// GeoQuery is the common location bias for search calls.
type GeoQuery struct {
	Lat    float64
	Lng    float64
	Radius int // meters
}

// Client is the HTTP implementation of Gateway.
type Client struct {
	httpClient *http.Client
	apiKey     string
	language   string
	baseURL    string
}

// NewClient builds a places client. The request timeout is explicit: an
// expired call is reported as a gateway failure, never retried here.
func NewClient(apiKey, language string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		language:   language,
		baseURL:    defaultBaseURL,
	}
}

// detailsResponse mirrors the provider's place details envelope.
type detailsResponse struct {
	Status string        `json:"status"`
	Result *PlaceDetails `json:"result"`
}

// searchResponse mirrors the provider's search envelope.
type searchResponse struct {
	Status  string         `json:"status"`
	Results []PlaceSummary `json:"results"`
}

// PlaceDetails fetches the full record for a place keyed by its external id.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,geometry,photos,rating,types,editorial_summary,reviews")

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case "OK":
		return resp.Result, nil
	case "ZERO_RESULTS":
		// No data for this place is a successful, empty answer.
		return nil, nil
	default:
		return nil, utils.GatewayError{Err: fmt.Errorf("place details returned status %s", resp.Status)}
	}
}

// NearbySearch lists tourist attractions around a coordinate.
func (c *Client) NearbySearch(ctx context.Context, location GeoQuery) ([]PlaceSummary, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(location.Lat, location.Lng))
	params.Set("radius", strconv.Itoa(location.Radius))
	params.Set("type", "tourist_attraction")

	var resp searchResponse
	if err := c.get(ctx, "/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case "OK":
		return resp.Results, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, utils.GatewayError{Err: fmt.Errorf("nearby search returned status %s", resp.Status)}
	}
}

// TextSearch runs a free-text place search biased around a coordinate.
func (c *Client) TextSearch(ctx context.Context, query string, location GeoQuery) ([]PlaceSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", formatLatLng(location.Lat, location.Lng))
	params.Set("radius", strconv.Itoa(location.Radius))

	var resp searchResponse
	if err := c.get(ctx, "/textsearch/json", params, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case "OK":
		return resp.Results, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, utils.GatewayError{Err: fmt.Errorf("text search returned status %s", resp.Status)}
	}
}

// PhotoURL resolves a photo reference into a fetchable URL.
func (c *Client) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photoreference=%s&key=%s",
		maxWidth, url.QueryEscape(photoReference), url.QueryEscape(c.apiKey),
	)
}

// get performs one provider request and decodes the JSON envelope.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("language", c.language)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return utils.GatewayError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return utils.GatewayError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return utils.GatewayError{Err: fmt.Errorf("provider responded with HTTP %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return utils.GatewayError{Err: fmt.Errorf("decode provider response: %w", err)}
	}
	return nil
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
