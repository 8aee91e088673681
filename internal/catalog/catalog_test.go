package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchActive(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/api/routes/course/active" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": "biz-101", "title": "Business Management", "image": "/img/biz.png"},
			{"id": "web-201", "title": "Full Stack Web Development"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/") // trailing slash must not double up
	offerings, err := client.FetchActive(context.Background())
	if err != nil {
		t.Fatalf("FetchActive: %v", err)
	}

	if len(offerings) != 2 {
		t.Fatalf("got %d offerings, want 2", len(offerings))
	}
	if offerings[0].ID != "biz-101" || offerings[0].Image != "/img/biz.png" {
		t.Errorf("offering 0 = %+v", offerings[0])
	}
	if requests != 1 {
		t.Errorf("made %d requests, want 1", requests)
	}
}

func TestFetchActiveBadStatus(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchActive(context.Background())

	var bad *ErrBadStatus
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want ErrBadStatus", err)
	}
	if bad.Status != http.StatusBadGateway {
		t.Errorf("status = %d", bad.Status)
	}
	if requests != 1 {
		t.Errorf("made %d requests, want 1 (no retry)", requests)
	}
}

func TestFetchActiveMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.FetchActive(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDetailLink(t *testing.T) {
	got := DetailLink("https://api.example.edu/", "web-201")
	want := "https://api.example.edu/courses/web-201"
	if got != want {
		t.Errorf("DetailLink = %q, want %q", got, want)
	}
}

func TestByIDAndTitles(t *testing.T) {
	offerings := []Offering{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
	}

	if got := Titles(offerings); got[0] != "Alpha" || got[1] != "Beta" {
		t.Errorf("Titles = %v", got)
	}
	m := ByID(offerings)
	if m["a"].Title != "Alpha" {
		t.Errorf("ByID[a] = %+v", m["a"])
	}
	if _, ok := m["missing"]; ok {
		t.Error("ByID invented an entry")
	}
}
