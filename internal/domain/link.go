package domain

import "time"

type Link struct {
	Code      string
	URL       string
	CreatedAt time.Time
	Clicks    uint64
}

// Links is the whole store keyed by short code.
type Links map[string]Link

// FindByURL scans for the record whose target equals targetURL byte for byte.
func (l Links) FindByURL(targetURL string) (Link, bool) {
	for _, link := range l {
		if link.URL == targetURL {
			return link, true
		}
	}
	return Link{}, false
}

type CreateURLRequest struct {
	URL string `json:"url"`
}

type CreateURLResponse struct {
	ShortCode   string `json:"short_code"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

type CreateURLBatchRequest struct {
	URLs []string `json:"urls"`
}

type CreateURLBatchResponse struct {
	URLs []CreateURLResponse `json:"urls"`
}

type LinkStatsResponse struct {
	ShortCode   string    `json:"short_code"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	Clicks      uint64    `json:"clicks"`
}
