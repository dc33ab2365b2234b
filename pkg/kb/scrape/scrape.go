// Package scrape pulls the readable text out of allow-listed web pages.
package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrDomainNotAllowed = errors.New("domain not allowed")
	ErrTooLarge         = errors.New("page too large")
	ErrUnsupported      = errors.New("unsupported content-type")
)

type Fetcher struct {
	client   *http.Client
	allow    map[string]bool
	maxBytes int
}

const maxRedirects = 5

// New returns a Fetcher limited to the given hosts. An empty list allows
// nothing. Every redirect hop must stay on an allowed host too.
func New(allowed []string, maxBytes int) *Fetcher {
	allow := map[string]bool{}
	for _, h := range allowed {
		allow[strings.ToLower(strings.TrimSpace(h))] = true
	}
	f := &Fetcher{allow: allow, maxBytes: maxBytes}
	f.client = &http.Client{
		Timeout: 20 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects")
			}
			if !f.Allowed(req.URL.String()) {
				return fmt.Errorf("redirect to %s: %w", req.URL.Host, ErrDomainNotAllowed)
			}
			return nil
		},
	}
	return f
}

// Allowed reports whether rawURL is an http(s) URL on an allow-listed host.
func (f *Fetcher) Allowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	return f.allow[strings.ToLower(u.Hostname())]
}

// Fetch downloads rawURL and returns its main text and title.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (text, title string, err error) {
	if !f.Allowed(rawURL) {
		return "", "", ErrDomainNotAllowed
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	if resp.ContentLength > int64(f.maxBytes) {
		return "", "", ErrTooLarge
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.maxBytes)+1))
	if err != nil {
		return "", "", err
	}
	if len(b) > f.maxBytes {
		return "", "", ErrTooLarge
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/plain"):
		s := string(b)
		return s, guessTitleFromText(s), nil
	case strings.Contains(ct, "text/html"):
		return mainText(b)
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupported, ct)
	}
}

// mainText keeps headings, paragraphs and list items, preferring <main> and
// <article> when the page has them.
func mainText(b []byte) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), title, nil
}

var wsRX = regexp.MustCompile(`[ \t]+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if r := []rune(line); len(r) > 120 {
		line = string(r[:120])
	}
	return line
}
