package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"

	"wikibench/internal/eval"
)

const (
	baseURL       = "https://en.wikipedia.org"
	randomPageURL = baseURL + "/wiki/Special:Random"
	userAgent     = "WikiBench/1.0 (educational research tool)"

	defaultTimeout    = 30 * time.Second
	defaultCacheSize  = 256
	maxRedirects      = 10
	contentContainerQ = "#mw-content-text"
)

// FetchError wraps any network or parse failure while talking to Wikipedia.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches random pages and outbound article links from Wikipedia. It
// implements eval.LinkSource. Link results are held in an LRU cache so that
// validating a path an agent just walked does not refetch every page.
type Client struct {
	httpClient *http.Client
	cache      *lru.Cache[string, []eval.Link]
}

// Config controls the collaborator-boundary defenses. Zero values get
// sensible defaults.
type Config struct {
	Timeout   time.Duration
	CacheSize int
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, []eval.Link](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		cache: cache,
	}, nil
}

// RandomPage resolves Special:Random and reports the page it redirected to.
func (c *Client) RandomPage(ctx context.Context) (string, string, error) {
	resp, err := c.get(ctx, randomPageURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	title := TitleFromURL(finalURL)
	if title == "" {
		return "", "", &FetchError{URL: finalURL, Err: fmt.Errorf("no article title in redirect target")}
	}
	return title, finalURL, nil
}

// Links returns the article links visible in the page body, in document
// order. Namespace links (File:, Category:, ...) and fragment links are
// skipped. An empty result is a dead end, not an error.
func (c *Client) Links(ctx context.Context, pageURL string) ([]eval.Link, error) {
	if links, ok := c.cache.Get(pageURL); ok {
		return links, nil
	}

	resp, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	var links []eval.Link
	doc.Find(contentContainerQ + ` a[href]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !isArticleHref(href) {
			return
		}
		links = append(links, eval.Link{
			Title: titleFromHref(href),
			URL:   baseURL + href,
		})
	})

	c.cache.Add(pageURL, links)
	return links, nil
}

// PageURL derives the canonical article URL for a page title.
func (c *Client) PageURL(title string) string {
	return baseURL + "/wiki/" + strings.ReplaceAll(title, " ", "_")
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return resp, nil
}

func isArticleHref(href string) bool {
	if !strings.HasPrefix(href, "/wiki/") {
		return false
	}
	return !strings.ContainsAny(href, ":#")
}

func titleFromHref(href string) string {
	title := strings.TrimPrefix(href, "/wiki/")
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}
	return strings.ReplaceAll(title, "_", " ")
}

// TitleFromURL extracts the page title from a full article URL, or returns
// "" when the URL does not point at an article.
func TitleFromURL(pageURL string) string {
	_, after, found := strings.Cut(pageURL, "/wiki/")
	if !found || after == "" {
		return ""
	}
	return titleFromHref("/wiki/" + after)
}
