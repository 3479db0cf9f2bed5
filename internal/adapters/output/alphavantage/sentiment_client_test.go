package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stocksentry/configs"
	"stocksentry/internal/domain"
)

func feedItem(title, label string) map[string]interface{} {
	return map[string]interface{}{
		"title":   title,
		"summary": "summary of " + title,
		"url":     "https://example.com/" + title,
		"source":  "Example Wire",
		"ticker_sentiment": []map[string]interface{}{
			{"ticker": "TSLA", "ticker_sentiment_label": label},
		},
	}
}

func newFeedServer(t *testing.T, items []map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("function") != "NEWS_SENTIMENT" {
			t.Errorf("expected NEWS_SENTIMENT function, got %s", r.URL.Query().Get("function"))
		}
		if r.URL.Query().Get("tickers") != "TSLA" {
			t.Errorf("expected tickers=TSLA, got %s", r.URL.Query().Get("tickers"))
		}
		if r.URL.Query().Get("apikey") != "test-av-key" {
			t.Errorf("expected apikey to be forwarded, got %s", r.URL.Query().Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"feed": items})
	}))
}

func newTestClient(baseURL string) *SentimentClientAdapter {
	return NewSentimentClientAdapter(configs.AlphaVantage{
		BaseURL: baseURL,
		APIKey:  "test-av-key",
	})
}

// TestFetchSentimentDominantLabel tests label counting and dominance
func TestFetchSentimentDominantLabel(t *testing.T) {
	server := newFeedServer(t, []map[string]interface{}{
		feedItem("a", "Bullish"),
		feedItem("b", "Bullish"),
		feedItem("c", "Bearish"),
		feedItem("d", "Neutral"),
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.FetchSentiment(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Dominant != "Bullish" {
		t.Errorf("expected dominant Bullish, got %s", result.Dominant)
	}

	if result.Counts["Bullish"] != 2 || result.Counts["Bearish"] != 1 || result.Counts["Neutral"] != 1 {
		t.Errorf("unexpected counts: %v", result.Counts)
	}
}

// TestFetchSentimentAllNeutralFallsBack tests the documented policy: an
// all-Neutral feed yields Neutral instead of failing
func TestFetchSentimentAllNeutralFallsBack(t *testing.T) {
	server := newFeedServer(t, []map[string]interface{}{
		feedItem("a", "Neutral"),
		feedItem("b", "Neutral"),
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.FetchSentiment(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Dominant != domain.SentimentNeutral {
		t.Errorf("expected Neutral fallback, got %s", result.Dominant)
	}
}

// TestFetchSentimentNoFeed tests the missing-feed error
func TestFetchSentimentNoFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Information": "API call frequency exceeded",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchSentiment(context.Background(), "TSLA")
	if !errors.Is(err, domain.ErrNoSentimentData) {
		t.Fatalf("expected ErrNoSentimentData, got %v", err)
	}
}

// TestFetchSentimentCapsNewsItems tests the five-item cap on returned news
func TestFetchSentimentCapsNewsItems(t *testing.T) {
	items := make([]map[string]interface{}, 0, 8)
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		items = append(items, feedItem(title, "Bullish"))
	}
	server := newFeedServer(t, items)
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.FetchSentiment(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.News) != 5 {
		t.Errorf("expected 5 news items, got %d", len(result.News))
	}

	if result.Counts["Bullish"] != 8 {
		t.Errorf("expected all 8 articles counted, got %d", result.Counts["Bullish"])
	}
}

// TestFetchSentimentSkipsUnlabeledArticles tests that articles without a
// ticker_sentiment entry don't contribute to the counts
func TestFetchSentimentSkipsUnlabeledArticles(t *testing.T) {
	unlabeled := map[string]interface{}{
		"title":            "no label here",
		"summary":          "plain article",
		"url":              "https://example.com/none",
		"source":           "Example Wire",
		"ticker_sentiment": []map[string]interface{}{},
	}
	server := newFeedServer(t, []map[string]interface{}{
		feedItem("a", "Bearish"),
		unlabeled,
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.FetchSentiment(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Counts) != 1 || result.Counts["Bearish"] != 1 {
		t.Errorf("unexpected counts: %v", result.Counts)
	}

	if result.Dominant != "Bearish" {
		t.Errorf("expected dominant Bearish, got %s", result.Dominant)
	}
}

// TestFetchSentimentTransportError tests that connection failures are wrapped
func TestFetchSentimentTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	client := newTestClient(server.URL)

	_, err := client.FetchSentiment(context.Background(), "TSLA")
	if err == nil {
		t.Fatal("expected transport error")
	}

	if errors.Is(err, domain.ErrNoSentimentData) {
		t.Error("transport failures must not masquerade as missing data")
	}
}
