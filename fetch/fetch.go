package fetch

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	retryWaitMin = 1 * time.Second
	retryWaitMax = 30 * time.Second

	defaultTimeout = 1 * time.Minute
)

// Config type is used to describe fetcher parameters.
// RetryMax is zero by default: transfer failures surface immediately.
type Config struct {
	Timeout  time.Duration `json:"timeout"   yaml:"timeout"   env:"LOCDATA_FETCH_TIMEOUT"`
	RetryMax int           `json:"retry_max" yaml:"retry_max" env:"LOCDATA_FETCH_RETRY_MAX"`
}

func (c *Config) FillDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Fetcher type downloads remote assets into a destination directory.
type Fetcher struct {
	fs       afero.Fs
	client   *retryablehttp.Client
	insecure *retryablehttp.Client
}

// NewFetcher function creates Fetcher object writing to the local filesystem.
func NewFetcher(config Config) *Fetcher {
	return NewFetcherWithFs(config, afero.NewOsFs())
}

// NewFetcherWithFs function creates Fetcher object writing to the given filesystem.
func NewFetcherWithFs(config Config, fsys afero.Fs) *Fetcher {
	config.FillDefaults()

	return &Fetcher{
		fs:       fsys,
		client:   newClient(config, false),
		insecure: newClient(config, true),
	}
}

func newClient(config Config, insecure bool) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = config.RetryMax
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.HTTPClient.Timeout = config.Timeout

	if insecure {
		client.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		}
	}

	return client
}

// FetchAsset function downloads url into destDir, naming the local file after
// the final path segment of the url. An empty url returns an empty name and
// no error. When insecure is set, TLS certificate verification is disabled
// for this call only; no process-wide TLS default is touched.
func (f *Fetcher) FetchAsset(ctx context.Context, url, destDir string, insecure bool) (string, error) {
	if url == "" {
		return "", nil
	}

	name := url[strings.LastIndex(url, "/")+1:]
	if name == "" {
		return "", errors.Errorf("cannot derive file name from url %q", url)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.New(err.Error())
	}

	client := f.client
	if insecure {
		client = f.insecure
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.New(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("received non-OK status code %s for %q", resp.Status, url)
	}

	destPath := filepath.Join(destDir, name)

	out, err := f.fs.Create(destPath)
	if err != nil {
		return "", errors.New(err.Error())
	}

	if _, err = io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = f.fs.Remove(destPath) // don't leave a partial asset behind

		return "", errors.New(err.Error())
	}

	if err = out.Close(); err != nil {
		return "", errors.New(err.Error())
	}

	slog.Debug("fetched remote asset",
		slog.String("url", url), slog.String("path", destPath))

	return name, nil
}
