// ABOUTME: OpenFoodFacts lookup client for text search and barcodes.
// ABOUTME: Failures degrade to empty results; successful bodies are cached.
package fooddb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/harperreed/fitdash/internal/models"
)

// DefaultBaseURL is the public OpenFoodFacts endpoint.
const DefaultBaseURL = "https://world.openfoodfacts.org"

const (
	oneHour     = 60 * 60
	cacheExpire = oneHour
	cacheSize   = 8 * 1024 * 1024
	pageSize    = 20
	userAgent   = "fitdash/1.0 (+https://github.com/harperreed/fitdash)"
)

// Candidate is one lookup hit.
type Candidate struct {
	Name        string  `json:"name"`
	KcalPer100g float64 `json:"kcal_per_100g"`
}

// FoodItem converts the candidate into a library item per 100 g.
func (c Candidate) FoodItem() models.FoodItem {
	return *models.NewFoodItem(c.Name, c.KcalPer100g, "100 g")
}

// Client queries OpenFoodFacts.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	cache      *freecache.Cache
}

// NewClient creates a client. An empty baseURL uses DefaultBaseURL and a
// nil httpClient gets a 12 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	return &Client{
		BaseURL:    base,
		HTTPClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
	}
}

type product struct {
	Code        any            `json:"code"`
	ProductName string         `json:"product_name"`
	GenericName string         `json:"generic_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

type searchResponse struct {
	Products []product `json:"products"`
}

type barcodeResponse struct {
	Status  int      `json:"status"`
	Product *product `json:"product"`
}

// Search runs a text search. Any failure yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) []Candidate {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Candidate{}
	}
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.BaseURL, url.QueryEscape(query), pageSize)

	body, err := c.fetch(ctx, "search::"+strings.ToLower(query), u, func(b []byte) error {
		var r searchResponse
		return json.Unmarshal(b, &r)
	})
	if err != nil {
		log.WithError(err).WithField("query", query).Warn("food search failed")
		return []Candidate{}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.WithError(err).Warn("food search decode failed")
		return []Candidate{}
	}
	out := make([]Candidate, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if cand, ok := p.candidate(); ok {
			out = append(out, cand)
		}
	}
	return out
}

// Barcode looks up one product by exact code.
func (c *Client) Barcode(ctx context.Context, code string) (Candidate, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Candidate{}, false
	}
	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.BaseURL, url.PathEscape(code))

	body, err := c.fetch(ctx, "barcode::"+code, u, func(b []byte) error {
		var r barcodeResponse
		return json.Unmarshal(b, &r)
	})
	if err != nil {
		log.WithError(err).WithField("code", code).Warn("barcode lookup failed")
		return Candidate{}, false
	}

	var parsed barcodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Status != 1 || parsed.Product == nil {
		log.WithField("code", code).Debug("barcode not found")
		return Candidate{}, false
	}
	return parsed.Product.candidate()
}

// fetch GETs u, serving from and filling the cache. Only bodies that
// validate are cached.
func (c *Client) fetch(ctx context.Context, key, u string, validate func([]byte) error) ([]byte, error) {
	if cached, err := c.cache.Get([]byte(key)); err == nil {
		log.WithField("key", key).Debug("food lookup cache hit")
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if err := validate(body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if err := c.cache.Set([]byte(key), body, cacheExpire); err != nil {
		log.WithError(err).Debug("food lookup cache set failed")
	}
	return body, nil
}

func (p product) candidate() (Candidate, bool) {
	name := firstNonEmpty(p.ProductName, p.GenericName, p.Brands, codeString(p.Code))
	kcal, ok := nutrient(p.Nutriments, "energy-kcal_100g")
	if !ok {
		kcal, ok = nutrient(p.Nutriments, "energy_kcal")
	}
	kcal = math.Round(kcal)
	if name == "" || !ok || kcal == 0 {
		return Candidate{}, false
	}
	return Candidate{Name: name, KcalPer100g: kcal}, true
}

func nutrient(m map[string]any, key string) (float64, bool) {
	v, present := m[key]
	if !present || v == nil {
		return 0, false
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func codeString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
