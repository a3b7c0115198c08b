package mediawiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/ppiankov/wikigraph/internal/model"
)

func testServer(t *testing.T, apiHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api.php", apiHandler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(model.WikiConfig{
		APIURL:    srv.URL + "/api.php",
		UserAgent: "wikigraph-test/0.1",
		Timeout:   5 * time.Second,
		Retries:   1,
	}, 100, 10)
}

func TestFetchPage(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "parse" || q.Get("page") != "Elrond" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("formatversion") != "2" || q.Get("redirects") != "1" {
			t.Errorf("missing api options in query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"parse": {
				"title": "Elrond",
				"pageid": 42,
				"wikitext": "{{Infobox person|name=Elrond}}",
				"links": [
					{"ns": 0, "title": "Rivendell"},
					{"ns": 14, "title": "Category:Elves"},
					{"ns": 0, "title": "Vilya"}
				],
				"externallinks": ["https://en.wikipedia.org/wiki/Elrond"]
			}
		}`))
	})

	page, err := testClient(srv).FetchPage(context.Background(), "Elrond")
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}

	if page.Title != "Elrond" || page.PageID != 42 {
		t.Errorf("page identity = %q/%d", page.Title, page.PageID)
	}
	if page.Wikitext != "{{Infobox person|name=Elrond}}" {
		t.Errorf("wikitext = %q", page.Wikitext)
	}
	// navigation-namespace links are filtered at the source
	if want := []string{"Rivendell", "Vilya"}; !reflect.DeepEqual(page.Links, want) {
		t.Errorf("links = %v, want %v", page.Links, want)
	}
	if want := []string{"https://en.wikipedia.org/wiki/Elrond"}; !reflect.DeepEqual(page.ExternalLinks, want) {
		t.Errorf("external links = %v, want %v", page.ExternalLinks, want)
	}
}

func TestFetchPageAPIError(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": {"code": "missingtitle", "info": "The page you specified doesn't exist."}}`))
	})

	if _, err := testClient(srv).FetchPage(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for api error response")
	}
}

func TestFetchPageEmptyResult(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	if _, err := testClient(srv).FetchPage(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for empty parse result")
	}
}

func TestFetchPageUserAgent(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "wikigraph-test/0.1" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"parse": {"title": "X", "pageid": 1, "wikitext": "x"}}`))
	})

	if _, err := testClient(srv).FetchPage(context.Background(), "X"); err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
}
