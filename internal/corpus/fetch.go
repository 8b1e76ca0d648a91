package corpus

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Size limits keep a single novel from exhausting memory. The longest novels in
// typical corpora are a few megabytes.
const (
	MaxFileSizeBytes = 50 * 1024 * 1024
	MaxHTTPSizeBytes = 100 * 1024 * 1024
)

// HTTPRequestTimeout bounds a whole URL fetch.
const HTTPRequestTimeout = 30 * time.Second

var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPRequestTimeout / 6,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPRequestTimeout / 6,
		ResponseHeaderTimeout: HTTPRequestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// limitedReadCloser fails once more than N bytes have been read.
type limitedReadCloser struct {
	io.ReadCloser
	N      int64
	source string
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err := l.ReadCloser.Read(p)
	l.N -= int64(n)
	return n, err
}

// stdinCloser leaves the process stdin open.
type stdinCloser struct {
	io.Reader
}

func (stdinCloser) Close() error { return nil }

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open returns a size-limited reader for a source: "-" for stdin, an http(s) URL, or a
// local file path.
func Open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == StdinSource:
		return &limitedReadCloser{
			ReadCloser: stdinCloser{os.Stdin},
			N:          MaxFileSizeBytes,
			source:     "stdin",
		}, nil
	case IsURL(source):
		return openURL(ctx, source)
	default:
		return openFile(source)
	}
}

func openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "stylo/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, MaxHTTPSizeBytes)
		}
	}

	return &limitedReadCloser{
		ReadCloser: resp.Body,
		N:          MaxHTTPSizeBytes,
		source:     url,
	}, nil
}

func openFile(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}
	if info.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)", path, info.Size(), MaxFileSizeBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	return f, nil
}
