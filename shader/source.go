package shader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// The Loader interface is implemented by shader source providers.
type Loader interface {
	// Return the full text of the source at path. Missing sources yield
	// an error wrapping ErrSourceNotFound.
	Load(path string) (string, error)
}

// A Loader that reads sources from local files or http/https URLs.
// Relative paths are resolved against the base location.
type ResourceLoader struct {
	base   *url.URL
	client *http.Client
}

// Create a loader rooted at base which may be a local directory or an http/https URL.
func NewLoader(base string) (*ResourceLoader, error) {
	baseURL, err := url.Parse(strings.Replace(base, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("shader: invalid source location '%s': %s", base, err)
	}

	switch baseURL.Scheme {
	case "", "http", "https":
	default:
		return nil, fmt.Errorf("shader: unsupported scheme '%s'", baseURL.Scheme)
	}

	if baseURL.Scheme != "" && !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	return &ResourceLoader{
		base:   baseURL,
		client: http.DefaultClient,
	}, nil
}

// Load the source text at pathToSource.
func (l *ResourceLoader) Load(pathToSource string) (string, error) {
	srcURL, err := l.resolve(pathToSource)
	if err != nil {
		return "", err
	}

	var reader io.ReadCloser
	switch srcURL.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(srcURL.Path))
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, srcURL.Path)
		} else if err != nil {
			return "", fmt.Errorf("shader: could not open '%s': %s", srcURL.Path, err)
		}
	case "http", "https":
		resp, err := l.client.Get(srcURL.String())
		if err != nil {
			return "", fmt.Errorf("shader: could not fetch '%s': %s", srcURL.String(), err)
		}
		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, srcURL.String())
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return "", fmt.Errorf("shader: could not fetch '%s': status %d", srcURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return "", fmt.Errorf("shader: unsupported scheme '%s'", srcURL.Scheme)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("shader: could not read '%s': %s", pathToSource, err)
	}
	return string(data), nil
}

// Resolve pathToSource against the loader base. Absolute paths and URLs
// with a scheme are used as-is.
func (l *ResourceLoader) resolve(pathToSource string) (*url.URL, error) {
	srcURL, err := url.Parse(strings.Replace(pathToSource, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("shader: invalid source path '%s': %s", pathToSource, err)
	}
	if srcURL.Scheme != "" {
		return srcURL, nil
	}

	if l.base.Scheme != "" {
		return l.base.ResolveReference(&url.URL{Path: srcURL.Path}), nil
	}

	if filepath.IsAbs(srcURL.Path) {
		return srcURL, nil
	}
	return &url.URL{Path: filepath.Join(l.base.Path, srcURL.Path)}, nil
}
