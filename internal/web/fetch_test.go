package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRewriteGitHub(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "bare github host",
			url:  "github.com/u/repo/blob/main/script.go",
			want: "raw.githubusercontent.com/u/repo/blob/main/script.go",
		},
		{
			name: "https github host",
			url:  "https://github.com/u/repo/blob/main/script.go",
			want: "https://raw.githubusercontent.com/u/repo/blob/main/script.go",
		},
		{
			name: "unrelated host untouched",
			url:  "https://example.com/script.go",
			want: "https://example.com/script.go",
		},
		{
			name: "github substring elsewhere untouched",
			url:  "https://example.com/github.com/script.go",
			want: "https://example.com/github.com/script.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteGitHub(tt.url); got != tt.want {
				t.Errorf("rewriteGitHub = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawGistURL(t *testing.T) {
	t.Run("finds the raw href", func(t *testing.T) {
		html := `<html>
<a href="/u/abc123">gist</a>
<a href="/u/abc123/raw/def456/script.go">Raw</a>
</html>`

		got, ok := rawGistURL(html)
		if !ok {
			t.Fatal("rawGistURL found nothing")
		}
		want := gistRawHost + "/u/abc123/raw/def456/script.go"
		if got != want {
			t.Errorf("rawGistURL = %q, want %q", got, want)
		}
	})

	t.Run("no raw link", func(t *testing.T) {
		if _, ok := rawGistURL("<html><body>nope</body></html>"); ok {
			t.Error("rawGistURL should find nothing")
		}
	})
}

func TestFetcher_DownloadScript(t *testing.T) {
	t.Run("plain URL passes through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("package main\n"))
		}))
		defer srv.Close()

		f := NewFetcher(5 * time.Second)
		got, err := f.DownloadScript(context.Background(), srv.URL+"/script.go")
		if err != nil {
			t.Fatalf("DownloadScript failed: %v", err)
		}
		if got != "package main\n" {
			t.Errorf("DownloadScript = %q", got)
		}
	})

	t.Run("non-gist body keeps its entry point", func(t *testing.T) {
		source := "package main\n\nfunc main() {\n\tprintln(1)\n}\n"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(source))
		}))
		defer srv.Close()

		f := NewFetcher(5 * time.Second)
		got, err := f.DownloadScript(context.Background(), srv.URL+"/main.go")
		if err != nil {
			t.Fatalf("DownloadScript failed: %v", err)
		}
		if got != source {
			t.Errorf("a complete source file must pass through unmodified; got %q", got)
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		f := NewFetcher(5 * time.Second)
		if _, err := f.DownloadScript(context.Background(), srv.URL); err == nil {
			t.Error("DownloadScript should fail on 404")
		}
	})

	t.Run("non-UTF-8 body is an error, not a panic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte{0xff, 0xfe, 0x00, 0x80})
		}))
		defer srv.Close()

		f := NewFetcher(5 * time.Second)
		_, err := f.DownloadScript(context.Background(), srv.URL)
		if err == nil {
			t.Fatal("DownloadScript should fail on a binary body")
		}
		if !strings.Contains(err.Error(), "UTF-8") {
			t.Errorf("error should mention encoding: %v", err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := NewFetcher(5 * time.Second)
		if _, err := f.DownloadScript(ctx, srv.URL); err == nil {
			t.Error("DownloadScript should fail with a cancelled context")
		}
	})
}
