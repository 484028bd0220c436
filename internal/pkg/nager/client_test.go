package nager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicHolidays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PublicHolidays/2026/RS", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2026-01-01","localName":"Nova godina","name":"New Year's Day","countryCode":"RS","global":true},
			{"date":"2026-01-07","localName":"Božić","name":"Orthodox Christmas","countryCode":"RS","global":true}
		]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	holidays, err := client.PublicHolidays(context.Background(), 2026, "RS")
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "New Year's Day", holidays[0].Name)
	assert.Equal(t, "Nova godina", holidays[0].LocalName)
	assert.Equal(t, "2026-01-07", holidays[1].Date)
}

func TestPublicHolidaysUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.PublicHolidays(context.Background(), 2026, "RS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
