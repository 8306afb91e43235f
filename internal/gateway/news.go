package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const newsAPIBaseURL = "https://newsapi.org/v2/top-headlines"

// NewsAPIHeadliner fetches top headlines from newsapi.org.
type NewsAPIHeadliner struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewNewsAPIHeadliner(apiKey string) *NewsAPIHeadliner {
	return &NewsAPIHeadliner{
		APIKey:  apiKey,
		BaseURL: newsAPIBaseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type headlinesResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

func (h *NewsAPIHeadliner) TopHeadlines(ctx context.Context, region string, count int) ([]string, error) {
	if h.APIKey == "" {
		return nil, ErrNoCredential
	}

	q := url.Values{}
	q.Set("country", region)
	q.Set("pageSize", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build headlines request: %w", err)
	}
	req.Header.Set("X-Api-Key", h.APIKey)

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("fetch headlines: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrNoCredential
	}

	var body headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode headlines: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s", body.Message)
	}
	if len(body.Articles) == 0 {
		return nil, fmt.Errorf("no articles returned")
	}

	titles := make([]string, 0, len(body.Articles))
	for _, a := range body.Articles {
		titles = append(titles, a.Title)
	}
	return titles, nil
}
