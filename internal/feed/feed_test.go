package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Show</title>
    <link>https://example.com</link>
    <description>A test feed</description>
    <image>
      <url>https://example.com/cover.jpg</url>
      <title>Test Show</title>
      <link>https://example.com</link>
    </image>
    <item>
      <title>Episode One</title>
      <description>The first episode</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
      <enclosure url="https://example.com/audio/one.m4a?sig=abc" length="1234" type="audio/mp4"/>
    </item>
    <item>
      <title>Episode Two</title>
      <description>No audio here</description>
      <pubDate>Tue, 03 Jan 2006 15:04:05 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Test Show", f.Title)
	assert.Equal(t, "https://example.com/cover.jpg", f.ImageURL)
	require.Len(t, f.Items, 2)

	one := f.Items[0]
	assert.Equal(t, "Episode One", one.Title)
	assert.Equal(t, "The first episode", one.Description)
	require.Len(t, one.Enclosures, 1)
	assert.Equal(t, "https://example.com/audio/one.m4a?sig=abc", one.Enclosures[0].URL)
	assert.Equal(t, "1234", one.Enclosures[0].Length)
	require.NotNil(t, one.Published)
	assert.Equal(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC), one.Published.UTC())
	require.NotNil(t, one.Created)

	assert.Empty(t, f.Items[1].Enclosures)
}

func TestFetchToleratesNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Test Show", f.Title)
	assert.Len(t, f.Items, 2)
}

func TestFetchReportsUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse feed")
}

func TestFetchReportsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := Fetch(context.Background(), http.DefaultClient, srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch feed")
}
