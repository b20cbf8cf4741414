// Package font provisions the font embedded in printable invoices.
//
// The font is downloaded once and cached on disk. Provisioning is best
// effort: callers degrade to system fonts when it fails.
package font

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultURL is a font with the Indian rupee sign.
const DefaultURL = "https://github.com/googlefonts/noto-fonts/raw/main/hinted/ttf/NotoSans/NotoSans-Regular.ttf"

// ErrFontFetch is returned when the font could not be provisioned.
var ErrFontFetch = errors.New("font fetch failed")

// Provider fetches a font from URL into Path.
type Provider struct {
	URL    string
	Path   string // local cache file
	client *resty.Client
	log    *zap.Logger
}

// NewProvider creates a provider that caches the font at url in path.
func NewProvider(url, path string, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "shopkeeper")
	return &Provider{URL: url, Path: path, client: client, log: log}
}

// Cached reports whether the font is already on disk.
func (p *Provider) Cached() bool {
	info, err := os.Stat(p.Path)
	return err == nil && info.Size() > 0
}

// Fetch downloads the font unless it is cached, and returns its local path.
// Errors wrap ErrFontFetch.
func (p *Provider) Fetch(ctx context.Context) (string, error) {
	if p.Cached() {
		p.log.Debug("font cached", zap.String("path", p.Path))
		return p.Path, nil
	}
	if p.URL == "" {
		return "", fmt.Errorf("%w: no font url configured", ErrFontFetch)
	}

	resp, err := p.client.R().SetContext(ctx).Get(p.URL)
	if err != nil {
		return "", fmt.Errorf("%w: GET %s: %v", ErrFontFetch, p.URL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: GET %s: %s", ErrFontFetch, p.URL, resp.Status())
	}
	body := resp.Body()
	if len(body) == 0 {
		return "", fmt.Errorf("%w: GET %s: empty body", ErrFontFetch, p.URL)
	}

	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFontFetch, err)
	}
	tmp := p.Path + ".part"
	if err := os.WriteFile(tmp, body, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFontFetch, err)
	}
	if err := os.Rename(tmp, p.Path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("%w: %v", ErrFontFetch, err)
	}
	p.log.Info("font downloaded", zap.String("url", p.URL), zap.String("path", p.Path), zap.Int("bytes", len(body)))
	return p.Path, nil
}

// Load returns the font bytes, fetching them first if needed.
// On failure it returns nil bytes and an error wrapping ErrFontFetch, the
// caller is expected to carry on without the font.
func (p *Provider) Load(ctx context.Context) ([]byte, error) {
	path, err := p.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) || len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is missing", ErrFontFetch, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFetch, err)
	}
	return data, nil
}
