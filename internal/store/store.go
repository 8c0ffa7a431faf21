// Package store holds what the link store backends share: the persisted record
// layout and the error kinds a backend reports.
//
// Every backend returns a non-nil mapping from Load, even together with an error,
// so callers can carry on with whatever could be read.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shortlinks/internal/domain"
)

var (
	ErrCorrupt = errors.New("link store is corrupt")
	ErrIO      = errors.New("link store i/o failed")

	// ErrBadTimestamp is reported alongside a link whose created_at could not be
	// read. The link is still usable and carries a zero CreatedAt.
	ErrBadTimestamp = errors.New("unusable created_at")
)

// Record is the persisted form of a link. The code is the key it is stored under.
type Record struct {
	OriginalURL string `json:"original_url"`
	CreatedAt   string `json:"created_at"`
	Clicks      uint64 `json:"clicks"`
}

// legacyRecord also accepts the field names written by older releases.
type legacyRecord struct {
	Record
	URL     string `json:"url"`
	Created string `json:"created"`
}

// Timestamps written without a zone are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func NewRecord(link domain.Link) Record {
	return Record{
		OriginalURL: link.URL,
		CreatedAt:   FormatTime(link.CreatedAt),
		Clicks:      link.Clicks,
	}
}

// Link converts r back into a domain link stored under code. Only an empty code or
// URL makes the record unusable; a bad created_at returns the link together with
// ErrBadTimestamp.
func (r Record) Link(code string) (domain.Link, error) {
	if code == "" {
		return domain.Link{}, errors.New("empty code")
	}
	if r.OriginalURL == "" {
		return domain.Link{}, fmt.Errorf("code %q: empty url", code)
	}
	link := domain.Link{
		Code:   code,
		URL:    r.OriginalURL,
		Clicks: r.Clicks,
	}
	createdAt, err := ParseTime(r.CreatedAt)
	if err != nil {
		return link, fmt.Errorf("code %q: %w: %w", code, ErrBadTimestamp, err)
	}
	link.CreatedAt = createdAt
	return link, nil
}

// Usable reports whether a link returned with err can still be served.
func Usable(err error) bool {
	return err == nil || errors.Is(err, ErrBadTimestamp)
}

// EncodeRecord marshals a single link.
func EncodeRecord(link domain.Link) ([]byte, error) {
	return marshal(NewRecord(link), "")
}

// DecodeRecord unmarshals a single link stored under code. Like Record.Link it may
// return a usable link together with an error; check with Usable.
func DecodeRecord(code string, data []byte) (domain.Link, error) {
	var lr legacyRecord
	if err := json.Unmarshal(data, &lr); err != nil {
		return domain.Link{}, fmt.Errorf("%w: code %q: %w", ErrCorrupt, code, err)
	}
	link, err := lr.normalize().Link(code)
	if err != nil {
		return link, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return link, nil
}

// Encode renders the whole mapping as an indented JSON object keyed by code.
func Encode(links domain.Links) ([]byte, error) {
	records := make(map[string]Record, len(links))
	for code, link := range links {
		records[code] = NewRecord(link)
	}
	return marshal(records, "  ")
}

// Decode parses a document produced by Encode. A document that is not a JSON object
// yields an empty mapping; records without a code or URL are dropped and records
// with a bad created_at are kept with a zero time. All of these report ErrCorrupt.
func Decode(data []byte) (domain.Links, error) {
	links := domain.Links{}
	if len(bytes.TrimSpace(data)) == 0 {
		return links, nil
	}

	var records map[string]legacyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return links, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var errs []error
	for code, lr := range records {
		link, err := lr.normalize().Link(code)
		if err != nil {
			errs = append(errs, err)
		}
		if Usable(err) {
			links[code] = link
		}
	}
	if len(errs) > 0 {
		return links, fmt.Errorf("%w: %d damaged records: %w", ErrCorrupt, len(errs), errors.Join(errs...))
	}
	return links, nil
}

func (lr legacyRecord) normalize() Record {
	r := lr.Record
	if r.OriginalURL == "" {
		r.OriginalURL = lr.URL
	}
	if r.CreatedAt == "" {
		r.CreatedAt = lr.Created
	}
	return r
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
