package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var urlCounter atomic.Uint64

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

// CreateTargeter posts a never seen URL on every hit.
func CreateTargeter(baseURL string) vegeta.Targeter {
	endpoint := baseURL + "/api/v1/urls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = endpoint
		t.Header = jsonHeader
		t.Body = fmt.Appendf(nil, `{"url":"https://example.com/bench/%d"}`, urlCounter.Add(1))
		return nil
	}
}

// DuplicateTargeter resubmits already shortened URLs, exercising code reuse.
func DuplicateTargeter(baseURL string, urls []string) vegeta.Targeter {
	endpoint := baseURL + "/api/v1/urls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = endpoint
		t.Header = jsonHeader
		t.Body = fmt.Appendf(nil, `{"url":%q}`, urls[rand.IntN(len(urls))])
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + codes[rand.IntN(len(codes))]
		t.Header = nil
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio float64) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL)
	redirectTarget := RedirectTargeter(baseURL, codes)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}

// SlashTargeter sends /short commands the way the chat platform does.
func SlashTargeter(baseURL string) vegeta.Targeter {
	endpoint := baseURL + "/slack/events"
	header := http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}}

	return func(t *vegeta.Target) error {
		form := url.Values{
			"command": {"/short"},
			"text":    {fmt.Sprintf("https://example.com/slash/%d", urlCounter.Add(1))},
			"user_id": {"UBENCH"},
			"team_id": {"TBENCH"},
		}
		t.Method = http.MethodPost
		t.URL = endpoint
		t.Header = header
		t.Body = []byte(form.Encode())
		return nil
	}
}
