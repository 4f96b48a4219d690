// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// FeedParseError reports a payload that is not well-formed XML. A
// well-formed feed with zero entries is not an error.
type FeedParseError struct {
	Err error
}

func (e *FeedParseError) Error() string {
	return fmt.Sprintf("parsing arXiv feed: %v", e.Err)
}

func (e *FeedParseError) Unwrap() error { return e.Err }

// dateFmt is the calendar-date layout used for min-date filtering.
const dateFmt = "2006-01-02"

// Atom feed XML structures. The feed carries two namespaces (Atom and the
// arXiv extension); only Atom-namespace fields are needed here.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// ParseFeed decodes an arXiv Atom feed into Papers, excluding entries
// published strictly before minDate (YYYY-MM-DD, empty for no bound).
//
// Filtering fails open: an unparsable minDate disables the cutoff, and an
// entry whose published date does not parse is kept rather than dropped.
// Only the calendar-date portion of the published timestamp is compared.
func ParseFeed(data []byte, minDate string) ([]types.Paper, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, &FeedParseError{Err: err}
	}

	var cutoff time.Time
	if minDate != "" {
		if t, err := time.Parse(dateFmt, minDate); err == nil {
			cutoff = t
		}
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		published := strings.TrimSpace(entry.Published)

		if !cutoff.IsZero() && len(published) >= len(dateFmt) {
			if t, err := time.Parse(dateFmt, published[:len(dateFmt)]); err == nil && t.Before(cutoff) {
				continue
			}
		}

		url := strings.TrimSpace(entry.ID)

		p := types.Paper{
			ID:        extractArxivID(url),
			Title:     normalizeSpace(entry.Title),
			Summary:   normalizeSpace(entry.Summary),
			Published: published,
			Updated:   strings.TrimSpace(entry.Updated),
			URL:       url,
		}

		for _, a := range entry.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				p.Authors = append(p.Authors, name)
			}
		}
		for _, c := range entry.Categories {
			if c.Term != "" {
				p.Categories = append(p.Categories, c.Term)
			}
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// normalizeSpace collapses all whitespace runs, newlines included, to
// single spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// extractArxivID pulls the arXiv ID from the entry's abstract URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" -> "2301.07041v1"). A URL
// without the /abs/ marker is returned as-is.
func extractArxivID(idURL string) string {
	const marker = "/abs/"
	idx := strings.LastIndex(idURL, marker)
	if idx < 0 {
		return idURL
	}
	return idURL[idx+len(marker):]
}
