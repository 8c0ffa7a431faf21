package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Link struct {
	Code string
	URL  string
}

type batchRequest struct {
	URLs []string `json:"urls"`
}

type createResponse struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
}

type batchResponse struct {
	URLs []createResponse `json:"urls"`
}

// Run creates count links through the batch endpoint and returns them in order.
func Run(baseURL string, count, batchSize int, insecureSkipVerify bool, timeout time.Duration) ([]Link, error) {
	numWorkers := runtime.NumCPU() * 2
	fmt.Printf("Seeding %d URLs (batch size: %d, workers: %d)...\n", count, batchSize, numWorkers)

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: insecureSkipVerify},
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	numBatches := (count + batchSize - 1) / batchSize
	results := make([][]Link, numBatches)
	var progress atomic.Int64

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(numWorkers)

	for batchIndex := range numBatches {
		startIndex := batchIndex * batchSize
		currentBatch := min(batchSize, count-startIndex)

		g.Go(func() error {
			links, err := createBatch(ctx, client, baseURL, startIndex, currentBatch)
			if err != nil {
				return fmt.Errorf("failed to create batch at %d: %w", startIndex, err)
			}
			results[batchIndex] = links
			done := progress.Add(int64(len(links)))
			fmt.Printf("\rProgress: %d/%d", done, count)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	links := make([]Link, 0, count)
	for _, batch := range results {
		links = append(links, batch...)
	}

	fmt.Printf("\nSeeding complete: %d links\n", len(links))
	return links, nil
}

func createBatch(ctx context.Context, client *http.Client, baseURL string, startIndex, count int) ([]Link, error) {
	urls := make([]string, count)
	for i := range count {
		urls[i] = fmt.Sprintf("https://example.com/seed/%d", startIndex+i)
	}

	body, err := json.Marshal(batchRequest{URLs: urls})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/urls/batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	links := make([]Link, len(result.URLs))
	for i, u := range result.URLs {
		links[i] = Link{Code: u.ShortCode, URL: u.OriginalURL}
	}
	return links, nil
}
