// Package testutil provides testing utilities for the PR Tracker backend.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// MockFailure is an error response the fake Sheets API returns for every
// request until cleared.
type MockFailure struct {
	StatusCode int
	Body       string
}

// MockSheets is a configurable fake Google Sheets API for testing. It
// answers the two calls the source makes: spreadsheet metadata and
// values:batchGet.
type MockSheets struct {
	server *httptest.Server

	mu      sync.RWMutex
	titles  []string
	values  map[string][][]interface{}
	failure *MockFailure
	delay   time.Duration

	// Tracking
	RequestCount  int
	MetadataCount int
	ValuesCount   int
}

// NewMockSheets creates a fake Sheets API serving the given sheets.
func NewMockSheets(titles []string, values map[string][][]interface{}) *MockSheets {
	mock := &MockSheets{
		titles: titles,
		values: values,
	}
	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// URL returns the fake server's base URL, for option.WithEndpoint.
func (m *MockSheets) URL() string {
	return m.server.URL
}

// Close shuts down the fake server.
func (m *MockSheets) Close() {
	m.server.Close()
}

// SetFailure makes every subsequent request fail with the given response.
func (m *MockSheets) SetFailure(f MockFailure) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = &f
}

// ClearFailure restores normal responses.
func (m *MockSheets) ClearFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = nil
}

// SetDelay makes every subsequent request stall before responding.
func (m *MockSheets) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// SetValues replaces one sheet's cell grid.
func (m *MockSheets) SetValues(title string, grid [][]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[title] = grid
}

// GetRequestCount returns the number of requests served.
func (m *MockSheets) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

func (m *MockSheets) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.RequestCount++
	failure := m.failure
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if failure != nil {
		w.WriteHeader(failure.StatusCode)
		fmt.Fprint(w, failure.Body)
		return
	}

	if strings.Contains(r.URL.Path, "/values:batchGet") {
		m.handleValues(w, r)
		return
	}
	m.handleMetadata(w)
}

func (m *MockSheets) handleMetadata(w http.ResponseWriter) {
	m.mu.Lock()
	m.MetadataCount++
	titles := append([]string(nil), m.titles...)
	m.mu.Unlock()

	sheets := make([]map[string]interface{}, len(titles))
	for i, title := range titles {
		sheets[i] = map[string]interface{}{
			"properties": map[string]interface{}{"title": title},
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"spreadsheetId": "mock-spreadsheet",
		"sheets":        sheets,
	})
}

func (m *MockSheets) handleValues(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.ValuesCount++
	m.mu.Unlock()

	ranges := r.URL.Query()["ranges"]
	valueRanges := make([]map[string]interface{}, 0, len(ranges))
	for _, rng := range ranges {
		title := strings.Trim(rng, "'")
		m.mu.RLock()
		grid := m.values[title]
		m.mu.RUnlock()
		valueRanges = append(valueRanges, map[string]interface{}{
			"range":          rng,
			"majorDimension": "ROWS",
			"values":         grid,
		})
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"spreadsheetId": "mock-spreadsheet",
		"valueRanges":   valueRanges,
	})
}

// NewQuotaFailure builds the Sheets API quota-exceeded error response.
func NewQuotaFailure() MockFailure {
	return MockFailure{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"error": {"code": 429, "message": "Quota exceeded for quota metric 'Read requests' and limit 'Read requests per minute' of service 'sheets.googleapis.com'", "status": "RESOURCE_EXHAUSTED"}}`,
	}
}

// NewServerFailure builds a generic Sheets API server error response.
func NewServerFailure() MockFailure {
	return MockFailure{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": {"code": 500, "message": "Internal error encountered.", "status": "INTERNAL"}}`,
	}
}
