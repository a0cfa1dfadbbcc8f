package catalog_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

var (
	ErrTitleNotFound = errors.New("title not found in catalog")
)

// Client talks to the external movie catalog (TMDB wire format).
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}
}

type genreRef struct {
	Name string `json:"name"`
}

type detailResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	ReleaseDate string     `json:"release_date"`
	PosterPath  string     `json:"poster_path"`
	Runtime     int        `json:"runtime"`
	Genres      []genreRef `json:"genres"`
}

// MovieByID fetches one title's metadata by its catalog id. The returned
// movie carries no internal id; the caller assigns one when it stores it.
func (c *Client) MovieByID(ctx context.Context, catalogID int64) (model.Movie, error) {
	url := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, catalogID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Movie{}, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Movie{}, ErrTitleNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog returned unexpected status", "status", resp.StatusCode, "catalog_id", catalogID)
		return model.Movie{}, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var d detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return model.Movie{}, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return model.Movie{
		CatalogID:  d.ID,
		Title:      d.Title,
		Year:       releaseYear(d.ReleaseDate),
		Genres:     genreNames(d.Genres),
		Runtime:    d.Runtime,
		Overview:   d.Overview,
		PosterLink: posterLink(d.PosterPath),
	}, nil
}

func releaseYear(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Year()
}

func genreNames(gg []genreRef) []string {
	names := make([]string, 0, len(gg))
	for _, g := range gg {
		names = append(names, g.Name)
	}
	return names
}

func posterLink(path string) string {
	if path == "" {
		return ""
	}
	return posterBaseURL + path
}
