package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultOwner           = "abhisek"
	defaultRepo            = "codetutor"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker resolves and applies release updates from GitHub.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPathFn      func() (string, error)
}

type Option func(*Checker)

func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithBaseURLs overrides the GitHub endpoints, used in tests.
func WithBaseURLs(apiBase, downloadBase string) Option {
	return func(c *Checker) {
		c.apiBaseURL = apiBase
		c.downloadBaseURL = downloadBase
	}
}

// withExecPath overrides executable path resolution, used in tests.
func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) {
		c.execPathFn = fn
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CheckInput struct {
	Version string
}

type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
}

// Check fetches the latest release tag and compares it with the
// running version. Tags compare as plain strings after trimming the
// "v" prefix, which is enough for the date-ordered release scheme.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("latest release has no tag")
	}

	return &CheckResult{
		UpdateAvailable: normalizeVersion(release.TagName) != normalizeVersion(input.Version),
		LatestVersion:   release.TagName,
	}, nil
}

func (c *Checker) execPath() (string, error) {
	if c.execPathFn != nil {
		return c.execPathFn()
	}
	p, err := os.Executable()
	if err != nil {
		return "", err
	}
	return p, nil
}

func normalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
