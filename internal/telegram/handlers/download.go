package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// FileURLResolver turns a Telegram file ID into a direct download URL.
type FileURLResolver interface {
	GetFileDirectURL(fileID string) (string, error)
}

// HTTPDownloader downloads Telegram files over HTTPS.
type HTTPDownloader struct {
	resolver FileURLResolver
	client   *resty.Client
	maxSize  int64
}

func NewHTTPDownloader(resolver FileURLResolver, maxSize int64, timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		resolver: resolver,
		client:   resty.New().SetTimeout(timeout),
		maxSize:  maxSize,
	}
}

func (d *HTTPDownloader) Download(ctx context.Context, fileID string) ([]byte, error) {
	url, err := d.resolver.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file url: %w", err)
	}

	resp, err := d.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode())
	}

	body := resp.Body()
	if d.maxSize > 0 && int64(len(body)) > d.maxSize {
		return nil, fmt.Errorf("downloaded file is %d bytes (max %d)", len(body), d.maxSize)
	}

	return body, nil
}
