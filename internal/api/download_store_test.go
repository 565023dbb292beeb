package api

import (
	"testing"
	"time"
)

func TestDownloadStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	token := s.put(downloadItem{filePath: "/tmp/x.pdf", fileName: "x.pdf"}, time.Minute)
	if token == "" {
		t.Fatalf("empty token")
	}

	item, ok := s.get(token)
	if !ok || item.fileName != "x.pdf" {
		t.Fatalf("get failed: %+v ok=%v", item, ok)
	}

	s.delete(token)
	if _, ok := s.get(token); ok {
		t.Fatalf("deleted token should be gone")
	}
}

func TestDownloadStore_Expiry(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	token := s.put(downloadItem{filePath: "/tmp/x.pdf"}, -time.Second)
	if _, ok := s.get(token); ok {
		t.Fatalf("expired token should not resolve")
	}
}

func TestDownloadStore_TokensUnique(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := s.put(downloadItem{}, time.Minute)
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
