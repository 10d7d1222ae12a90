package infra

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewObjectKey(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		before := time.Now().UnixMilli()
		key := NewObjectKey("video/mp4")
		after := time.Now().UnixMilli()

		if !strings.HasPrefix(key, "video-") {
			t.Fatalf("key = %q, want video- prefix", key)
		}
		if !strings.HasSuffix(key, ".mp4") {
			t.Fatalf("key = %q, want .mp4 suffix", key)
		}

		parts := strings.Split(strings.TrimSuffix(key, ".mp4"), "-")
		if len(parts) != 3 {
			t.Fatalf("key = %q, want 3 dash-separated parts", key)
		}
		ts, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			t.Fatalf("timestamp %q: %v", parts[1], err)
		}
		if ts < before || ts > after {
			t.Errorf("timestamp %d outside [%d, %d]", ts, before, after)
		}
		if len(parts[2]) != 7 {
			t.Errorf("suffix = %q, want 7 characters", parts[2])
		}
		for _, r := range parts[2] {
			if !strings.ContainsRune(keyAlphabet, r) {
				t.Errorf("suffix %q contains %q outside the key alphabet", parts[2], r)
			}
		}
	})

	t.Run("ExtensionFollowsContentType", func(t *testing.T) {
		cases := []struct {
			contentType string
			ext         string
		}{
			{"video/mp4", ".mp4"},
			{"video/webm", ".webm"},
			{"video/quicktime", ".mov"},
			{"video/ogg", ".ogv"},
			{"video/x-unknown", ".mp4"},
		}
		for _, tc := range cases {
			if key := NewObjectKey(tc.contentType); !strings.HasSuffix(key, tc.ext) {
				t.Errorf("NewObjectKey(%q) = %q, want %s suffix", tc.contentType, key, tc.ext)
			}
		}
	})

	t.Run("KeysAreUnique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			key := NewObjectKey("video/mp4")
			if seen[key] {
				t.Fatalf("duplicate key %q", key)
			}
			seen[key] = true
		}
	})
}

func TestObjectKeyFromLocation(t *testing.T) {
	t.Run("LastPathSegment", func(t *testing.T) {
		cases := []struct {
			location string
			key      string
		}{
			{"http://objects.local/videos/video-1-aaaaaaa.mp4", "video-1-aaaaaaa.mp4"},
			{"https://cdn.example.com/bucket/nested/video-2-bbbbbbb.webm", "video-2-bbbbbbb.webm"},
			{"http://objects.local/videos/video-3-ccccccc.mp4?X-Amz-Expires=3600", "video-3-ccccccc.mp4"},
		}
		for _, tc := range cases {
			key, err := ObjectKeyFromLocation(tc.location)
			if err != nil {
				t.Errorf("ObjectKeyFromLocation(%q): %v", tc.location, err)
				continue
			}
			if key != tc.key {
				t.Errorf("ObjectKeyFromLocation(%q) = %q, want %q", tc.location, key, tc.key)
			}
		}
	})

	t.Run("EmptyPathRejected", func(t *testing.T) {
		for _, location := range []string{"http://objects.local", "http://objects.local/"} {
			if _, err := ObjectKeyFromLocation(location); err == nil {
				t.Errorf("ObjectKeyFromLocation(%q) succeeded, want error", location)
			}
		}
	})
}
