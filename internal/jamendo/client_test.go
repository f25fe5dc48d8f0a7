package jamendo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&Config{ClientID: "test-client"})
	c.baseURL = srv.URL
	return c
}

func TestSearchByTags(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"headers": {"status": "success", "code": 0, "results_count": 1},
			"results": [{
				"id": "168",
				"name": "J'm'e FPM",
				"artist_name": "TriFace",
				"album_name": "Premiers Jets",
				"duration": 183,
				"audio": "https://prod-1.storage.jamendo.com/?trackid=168",
				"image": "https://usercontent.jamendo.com?type=album&id=24",
				"license_ccurl": "http://creativecommons.org/licenses/by-nc-sa/2.0/"
			}]
		}`))
	})

	tracks, err := c.SearchByTags(context.Background(), []string{"happy", "pop"}, 5)
	if err != nil {
		t.Fatalf("SearchByTags: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	track := tracks[0]
	if track.ID != "168" || track.ArtistName != "TriFace" || track.Duration != 183 {
		t.Errorf("track = %+v", track)
	}
	if track.LicenseURL == "" {
		t.Error("license URL not decoded")
	}

	if got := gotQuery.Get("tags"); got != "happy,pop" {
		t.Errorf("tags param = %q, want %q", got, "happy,pop")
	}
	if got := gotQuery.Get("limit"); got != "5" {
		t.Errorf("limit param = %q, want %q", got, "5")
	}
	if got := gotQuery.Get("client_id"); got != "test-client" {
		t.Errorf("client_id param = %q", got)
	}
	if got := gotQuery.Get("format"); got != "json" {
		t.Errorf("format param = %q", got)
	}
	if got := gotQuery.Get("order"); got != defaultOrder {
		t.Errorf("order param = %q, want %q", got, defaultOrder)
	}
	if got := gotQuery.Get("audioformat"); got != defaultAudioFormat {
		t.Errorf("audioformat param = %q, want %q", got, defaultAudioFormat)
	}
}

func TestSearchByTagsEmptyResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"headers": {"status": "success", "code": 0, "results_count": 0}, "results": []}`))
	})

	tracks, err := c.SearchByTags(context.Background(), []string{"obscure"}, 10)
	if err != nil {
		t.Fatalf("empty results should not error: %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("got %d tracks, want 0", len(tracks))
	}
}

func TestSearchByTagsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"headers": {"status": "failed", "code": 5, "error_message": "Invalid client_id"}, "results": []}`))
	})

	if _, err := c.SearchByTags(context.Background(), []string{"happy"}, 10); err == nil {
		t.Fatal("expected error for non-zero header code")
	}
}

func TestSearchByTagsHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := c.SearchByTags(context.Background(), []string{"happy"}, 10); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestSearchByKeyword(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"headers": {"code": 0}, "results": [{"id": "7"}]}`))
	})

	tracks, err := c.SearchByKeyword(context.Background(), "sunset drive", 3)
	if err != nil {
		t.Fatalf("SearchByKeyword: %v", err)
	}
	if len(tracks) != 1 || tracks[0].ID != "7" {
		t.Errorf("tracks = %+v", tracks)
	}
	if got := gotQuery.Get("search"); got != "sunset drive" {
		t.Errorf("search param = %q", got)
	}
}

func TestTrackURL(t *testing.T) {
	if got := TrackURL("168"); got != "https://www.jamendo.com/track/168" {
		t.Errorf("TrackURL = %q", got)
	}
}
