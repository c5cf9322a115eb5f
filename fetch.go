package emojitab

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/nodakmesh/emojitab/cache"
)

const (
	// DefaultBaseURL serves the 72x72 Twemoji PNG assets.
	DefaultBaseURL = "https://raw.githubusercontent.com/twitter/twemoji/master/assets/72x72"
	DefaultTimeout = 10 * time.Second
	// DefaultDelay paces consecutive downloads so the remote source is
	// not hammered. Cache hits are not paced.
	DefaultDelay = 50 * time.Millisecond
)

// FetchError indicates a single glyph image could not be retrieved;
// the pipeline substitutes the placeholder rather than aborting.
type FetchError struct {
	Code uint32
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch U+%X: %v", e.Code, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type FetcherConfig struct {
	BaseURL string
	Timeout time.Duration
	Delay   time.Duration
	// Insecure disables TLS certificate verification. Only intended
	// for hosts with broken local certificate stores; leave off.
	Insecure bool
}

// Fetcher retrieves raw glyph images, consulting the cache before the
// network and writing every successful download back through it.
type Fetcher struct {
	cache   *cache.Dir
	client  *http.Client
	baseURL string
	delay   time.Duration
	last    time.Time
}

func NewFetcher(dir *cache.Dir, config FetcherConfig) *Fetcher {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	client := &http.Client{Timeout: config.Timeout}
	if config.Insecure {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Fetcher{
		cache:   dir,
		client:  client,
		baseURL: config.BaseURL,
		delay:   config.Delay,
	}
}

// Fetch returns the raw image bytes for a codepoint. Network failures,
// non-success responses and timeouts are returned as *FetchError; cache
// I/O failures are returned as-is since they are fatal to the run.
func (f *Fetcher) Fetch(code uint32) ([]byte, error) {
	b, err := f.cache.Get(code)
	if err != nil {
		return nil, err
	}
	if b != nil {
		return b, nil
	}

	f.throttle()

	resp, err := f.client.Get(fmt.Sprintf("%s/%x.png", f.baseURL, code))
	if err != nil {
		return nil, &FetchError{Code: code, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Code: code, Err: fmt.Errorf("unexpected status %q", resp.Status)}
	}

	b, err = ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Code: code, Err: err}
	}

	if err := f.cache.Put(code, b); err != nil {
		return nil, err
	}

	return b, nil
}

// throttle enforces the fixed delay between consecutive downloads.
func (f *Fetcher) throttle() {
	if !f.last.IsZero() {
		if d := f.delay - time.Since(f.last); d > 0 {
			time.Sleep(d)
		}
	}
	f.last = time.Now()
}
