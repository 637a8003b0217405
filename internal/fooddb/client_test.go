// ABOUTME: Tests for the OpenFoodFacts client and request supersession.
// ABOUTME: Uses httptest servers; goleak guards the HTTP goroutines.
package fooddb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const searchBody = `{
  "products": [
    {"product_name": "Greek Yogurt", "nutriments": {"energy-kcal_100g": 97.4}},
    {"generic_name": "Oat drink", "nutriments": {"energy_kcal": "46"}},
    {"brands": "Acme", "nutriments": {}},
    {"code": "3017620422003", "nutriments": {"energy-kcal_100g": 539}},
    {"product_name": "", "generic_name": "", "brands": "", "nutriments": {"energy-kcal_100g": 10}}
  ]
}`

func newServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, ts.Client()), ts
}

func TestSearchParsesCandidates(t *testing.T) {
	var gotQuery, gotUA string
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		_, _ = w.Write([]byte(searchBody))
	})

	got := c.Search(context.Background(), "yogurt drink")
	assert.Equal(t, []Candidate{
		{Name: "Greek Yogurt", KcalPer100g: 97},
		{Name: "Oat drink", KcalPer100g: 46},
		{Name: "3017620422003", KcalPer100g: 539},
	}, got)
	assert.Contains(t, gotQuery, "search_terms=yogurt+drink")
	assert.Contains(t, gotQuery, "page_size=20")
	assert.Contains(t, gotUA, "fitdash")
}

func TestSearchFailuresDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"products": [`))
		}},
		{"no products", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newServer(t, tt.handler)
			got := c.Search(context.Background(), "apple")
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSearchNetworkErrorDegradesToEmpty(t *testing.T) {
	c, ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {})
	ts.Close()
	assert.Empty(t, c.Search(context.Background(), "apple"))
}

func TestSearchBlankQuerySkipsRequest(t *testing.T) {
	var hits int32
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})
	assert.Empty(t, c.Search(context.Background(), "   "))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestSearchIsCached(t *testing.T) {
	var hits int32
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(searchBody))
	})

	first := c.Search(context.Background(), "Yogurt")
	second := c.Search(context.Background(), "yogurt")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFailuresAreNotCached(t *testing.T) {
	var hits int32
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(searchBody))
	})

	assert.Empty(t, c.Search(context.Background(), "yogurt"))
	assert.Len(t, c.Search(context.Background(), "yogurt"), 3)
}

func TestBarcode(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/product/123.json":
			_, _ = w.Write([]byte(`{"status": 1, "product": {"product_name": "Choco Spread", "nutriments": {"energy-kcal_100g": 539.2}}}`))
		case "/api/v2/product/456.json":
			_, _ = w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
		case "/api/v2/product/789.json":
			_, _ = w.Write([]byte(`{"status": 1, "product": {"product_name": "Water", "nutriments": {}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	cand, ok := c.Barcode(context.Background(), "123")
	require.True(t, ok)
	assert.Equal(t, Candidate{Name: "Choco Spread", KcalPer100g: 539}, cand)

	item := cand.FoodItem()
	assert.Equal(t, "100 g", item.Serving)
	assert.Equal(t, 539.0, item.Calories)
	assert.NotEmpty(t, item.ID)

	for _, code := range []string{"456", "789", "000", ""} {
		_, ok := c.Barcode(context.Background(), code)
		assert.False(t, ok, "code %q", code)
	}
}

func TestLatestSupersedesOlderRequest(t *testing.T) {
	l := NewLatest()

	ctx1, gen1 := l.Begin(context.Background(), "food")
	ctx2, gen2 := l.Begin(context.Background(), "food")
	_, genOther := l.Begin(context.Background(), "barcode")

	assert.Error(t, ctx1.Err(), "older request should be cancelled")
	assert.NoError(t, ctx2.Err())

	assert.False(t, l.Finish("food", gen1))
	assert.True(t, l.Finish("food", gen2))
	assert.True(t, l.Finish("barcode", genOther))
	assert.Error(t, ctx2.Err(), "finished request releases its context")
	assert.False(t, l.Finish("missing", 1))
}

func TestSearchLatestDropsStaleResults(t *testing.T) {
	release := make(chan struct{})
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search_terms") == "slow" {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		_, _ = w.Write([]byte(searchBody))
	})
	l := NewLatest()

	type result struct {
		got []Candidate
		ok  bool
	}
	slow := make(chan result, 1)
	go func() {
		got, ok := c.SearchLatest(context.Background(), l, "food", "slow")
		slow <- result{got, ok}
	}()

	// Wait until the slow search has registered its generation.
	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		s, ok := l.fields["food"]
		return ok && s.gen == 1
	}, time.Second, 5*time.Millisecond)

	fresh, ok := c.SearchLatest(context.Background(), l, "food", "fast")
	require.True(t, ok)
	assert.Len(t, fresh, 3)

	close(release)
	r := <-slow
	assert.False(t, r.ok)
	assert.Nil(t, r.got)
}
