package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

var (
	ErrRateLimited = errors.New("github api rate limit exceeded")
	ErrUnavailable = errors.New("github api unavailable")
)

const defaultBaseURL = "https://api.github.com"

// Service proxies the GitHub repository-search API and post-processes the
// payload: optional name filtering and name ordering happen server-side.
type Service struct {
	client  *http.Client
	baseURL string
}

func NewService(baseURL string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Service) SearchRepositories(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/search/repositories?q=%s&per_page=100", s.baseURL, url.QueryEscape(req.Query))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	httpReq.Header.Set("User-Agent", "GitHub-Search-API")

	log.Printf("github search query=%q sort=%s ignore=%q", req.Query, req.Sort, req.Ignore)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		log.Printf("github search upstream status=%d", resp.StatusCode)
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("github search upstream status=%d", resp.StatusCode)
		return nil, ErrUnavailable
	}

	var payload SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	items := payload.Items
	if req.Ignore != "" {
		needle := strings.ToLower(req.Ignore)
		filtered := make([]Repository, 0, len(items))
		for _, repo := range items {
			if !strings.Contains(strings.ToLower(repo.Name), needle) {
				filtered = append(filtered, repo)
			}
		}
		log.Printf("github search filtered=%d ignore=%q", len(items)-len(filtered), req.Ignore)
		items = filtered
	}

	if req.Sort != "" {
		sort.SliceStable(items, func(i, j int) bool {
			a := strings.ToLower(items[i].Name)
			b := strings.ToLower(items[j].Name)
			if req.Sort == SortDesc {
				return a > b
			}
			return a < b
		})
	}

	return &SearchResponse{
		TotalCount:        len(items),
		IncompleteResults: payload.IncompleteResults,
		Items:             items,
	}, nil
}
