package infra

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/ola007-cpu/webApp/utils"
)

// ObjectStore is the narrow gateway to the blob storage backend. The
// upload pipeline writes through Put and the feed rewrites stored
// locations through PresignedURL; everything else about the backend is
// a provider detail (MinIO or S3, selected by STORAGE_PROVIDER).
type ObjectStore interface {
	// Put writes one object under key and returns its canonical location.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// PresignedURL returns a read-only URL for the object at location,
	// valid for ttl. Callers fall back to the unsigned location on error.
	PresignedURL(ctx context.Context, location string, ttl time.Duration) (string, error)
}

const keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewObjectKey generates a unique object key encoding the upload time
// and a random disambiguator, e.g. "video-1756700000000-k3f9a2c.mp4".
func NewObjectKey(contentType string) string {
	buf := make([]byte, 7)
	suffix := make([]byte, 7)
	if _, err := rand.Read(buf); err != nil {
		copy(suffix, "0000000")
	} else {
		for i, b := range buf {
			suffix[i] = keyAlphabet[int(b)%len(keyAlphabet)]
		}
	}
	return fmt.Sprintf("video-%d-%s%s", time.Now().UnixMilli(), suffix, extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "video/webm":
		return ".webm"
	case "video/quicktime":
		return ".mov"
	case "video/ogg":
		return ".ogv"
	default:
		return ".mp4"
	}
}

// ObjectKeyFromLocation derives the object key from a canonical
// location. Keys are flat, so the key is the last path segment.
func ObjectKeyFromLocation(location string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("%w: parse location %q: %v", utils.ErrSigning, location, err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	key := segments[len(segments)-1]
	if key == "" {
		return "", fmt.Errorf("%w: no object key in location %q", utils.ErrSigning, location)
	}
	return key, nil
}
