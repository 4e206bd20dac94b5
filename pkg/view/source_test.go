package view

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

func TestHTTPSourceSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/components/NE555/symbol" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"partName": "NE555", "pins": [{"number": "1", "name": "GND", "electricalType": "power_in"}]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	rec, err := src.Symbol(context.Background(), "NE555")
	if err != nil {
		t.Fatalf("Symbol() error = %v", err)
	}
	if rec.Part != "NE555" || len(rec.Pins) != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestHTTPSourceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL).Footprint(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestHTTPSourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL).Symbol(context.Background(), "NE555")
	if err == nil {
		t.Fatal("Symbol() on 502, want error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("502 must not map to ErrNotFound")
	}
}

func TestHTTPSourceBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pins": [`))
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL).Symbol(context.Background(), "NE555"); err == nil {
		t.Error("Symbol() on truncated body, want error")
	}
}

func TestHTTPSourceEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"partName": "x", "pads": []}`))
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL).Footprint(context.Background(), "AB/1 2"); err != nil {
		t.Fatalf("Footprint() error = %v", err)
	}
	if want := "/api/components/AB%2F1%202/footprint"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
}

func TestStaticSource(t *testing.T) {
	src := &StaticSource{
		Symbols: map[string]*part.SymbolRecord{"R1": {Part: "R-0603"}},
	}
	rec, err := src.Symbol(context.Background(), "R1")
	if err != nil || rec.Part != "R-0603" {
		t.Errorf("Symbol() = %+v, %v", rec, err)
	}
	if _, err := src.Symbol(context.Background(), "R2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id error = %v, want ErrNotFound", err)
	}
	if _, err := src.Footprint(context.Background(), "R1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing footprint error = %v, want ErrNotFound", err)
	}
}
