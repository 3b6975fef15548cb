package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/go-shiori/go-readability"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html/charset"

	"github.com/wgomg/digest/internal/config"
	"github.com/wgomg/digest/internal/textproc"
	"github.com/wgomg/digest/internal/utils"
)

var (
	ErrDisallowed = errors.New("fetching is disallowed by robots.txt")
	ErrNoContent  = errors.New("no readable content found")
)

var (
	blockOpen  = regexp.MustCompile(`<(div|p|br|li|td|tr|h[1-6])(\s[^>]*)?/?>`)
	blockClose = regexp.MustCompile(`</(div|p|br|li|td|tr|h[1-6])>`)
)

type Article struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Text    string `json:"text"`
}

type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// Fetcher downloads a single web page and extracts its main article text.
type Fetcher struct {
	http      *resty.Client
	userAgent string
	maxBytes  int
	logger    *utils.Logger
}

func NewFetcher(cfg *config.Config, logger *utils.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(time.Duration(cfg.App.HttpTimeoutSeconds)*time.Second).
		SetHeader("User-Agent", cfg.Source.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &Fetcher{
		http:      client,
		userAgent: cfg.Source.UserAgent,
		maxBytes:  cfg.Source.MaxFileBytes,
		logger:    logger,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Article, error) {
	reqID := utils.RequestID(ctx)

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL: scheme must be http or https, got %q", parsedURL.Scheme)
	}

	allowed, err := f.allowed(ctx, parsedURL)
	if err != nil {
		f.logger.Warn(reqID, "Failed to check robots.txt for %s: %v", parsedURL.Host, err)
	} else if !allowed {
		return nil, fmt.Errorf("%w: %s", ErrDisallowed, pageURL)
	}

	f.logger.Debug(reqID, "Fetching article from %s", pageURL)

	resp, err := f.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(parsedURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode(), URL: pageURL}
	}

	utf8Reader, err := charset.NewReader(body, resp.Header().Get("Content-Type"))
	if err != nil {
		utf8Reader = body
	}

	rawHTML, err := ReadText(utf8Reader, f.maxBytes)
	if err != nil {
		return nil, err
	}

	article, err := extractContent(rawHTML, parsedURL)
	if err != nil {
		return nil, err
	}

	f.logger.Debug(reqID, "Extracted %d words from %s", utils.CountWords(article.Text), pageURL)

	return article, nil
}

// allowed reports whether robots.txt of the page's host lets our user agent
// fetch the page. A missing robots.txt allows everything.
func (f *Fetcher) allowed(ctx context.Context, pageURL *url.URL) (bool, error) {
	robotsURL := url.URL{Scheme: pageURL.Scheme, Host: pageURL.Host, Path: "/robots.txt"}

	resp, err := f.http.R().SetContext(ctx).Get(robotsURL.String())
	if err != nil {
		return false, err
	}

	robots, err := robotstxt.FromStatusAndBytes(resp.StatusCode(), resp.Body())
	if err != nil {
		return false, err
	}

	path := pageURL.EscapedPath()
	if path == "" {
		path = "/"
	}

	return robots.FindGroup(f.userAgent).Test(path), nil
}

func extractContent(rawHTML string, pageURL *url.URL) (*Article, error) {
	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(addSpacesBeforeParsing(article.Content)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article content: %w", err)
	}

	text := textproc.CollapseSpace(doc.Text())
	if text == "" {
		return nil, ErrNoContent
	}

	return &Article{
		URL:     pageURL.String(),
		Title:   strings.TrimSpace(article.Title),
		Excerpt: strings.TrimSpace(article.Excerpt),
		Text:    text,
	}, nil
}

// addSpacesBeforeParsing keeps words of adjacent blocks apart once the
// markup is stripped.
func addSpacesBeforeParsing(html string) string {
	result := blockOpen.ReplaceAllString(html, " $0")
	return blockClose.ReplaceAllString(result, "$0 ")
}
