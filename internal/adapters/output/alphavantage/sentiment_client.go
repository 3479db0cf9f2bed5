package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stocksentry/configs"
	"stocksentry/internal/domain"
	"stocksentry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure SentimentClientAdapter implements SentimentClient interface
var _ output.SentimentClient = (*SentimentClientAdapter)(nil)

const (
	defaultBaseURL = "https://www.alphavantage.co"
	maxNewsItems   = 5
	clientTimeout  = 10 * time.Second
)

// SentimentClientAdapter struct - Output adapter for the Alpha Vantage
// NEWS_SENTIMENT endpoint
type SentimentClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewSentimentClientAdapter func - Creates new Alpha Vantage client adapter
func NewSentimentClientAdapter(config configs.AlphaVantage) *SentimentClientAdapter {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SentimentClientAdapter{
		httpClient: &http.Client{Timeout: clientTimeout},
		baseURL:    baseURL,
		apiKey:     config.APIKey,
	}
}

// FetchSentiment retrieves the news feed for the ticker and aggregates the
// per-article sentiment labels. Each article contributes the label of its
// first ticker_sentiment entry. The dominant label is the non-Neutral one
// with the highest count; when every article is Neutral (or carries no
// label at all) the dominant label falls back to Neutral. Not retried.
func (a *SentimentClientAdapter) FetchSentiment(ctx context.Context, ticker string) (*domain.SentimentResult, error) {
	reqURL := fmt.Sprintf("%s/query?function=NEWS_SENTIMENT&tickers=%s&apikey=%s",
		a.baseURL, url.QueryEscape(ticker), url.QueryEscape(a.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentiment request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock sentiment: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode sentiment response: %w", err)
	}

	if len(raw.Feed) == 0 {
		return nil, domain.ErrNoSentimentData
	}

	counts := make(map[string]int)
	for _, item := range raw.Feed {
		if len(item.TickerSentiment) == 0 {
			continue
		}
		label := item.TickerSentiment[0].TickerSentimentLabel
		if label == "" {
			continue
		}
		counts[label]++
	}

	dominant := dominantLabel(counts)

	news := make([]domain.NewsItem, 0, maxNewsItems)
	for _, item := range raw.Feed {
		if len(news) == maxNewsItems {
			break
		}
		label := ""
		if len(item.TickerSentiment) > 0 {
			label = item.TickerSentiment[0].TickerSentimentLabel
		}
		news = append(news, domain.NewsItem{
			Title:   item.Title,
			Summary: item.Summary,
			URL:     item.URL,
			Source:  item.Source,
			Label:   label,
		})
	}

	logrus.Infof("Fetched sentiment for %s: dominant=%s, articles=%d", ticker, dominant, len(raw.Feed))

	return &domain.SentimentResult{
		Dominant: dominant,
		Counts:   counts,
		News:     news,
	}, nil
}

// dominantLabel picks the non-Neutral label with the highest count.
// Ties resolve to whichever label the iteration reaches last with a strictly
// higher count, matching the provider-returned max semantics; an empty
// filtered set yields Neutral.
func dominantLabel(counts map[string]int) string {
	dominant := ""
	best := 0
	for label, count := range counts {
		if label == domain.SentimentNeutral {
			continue
		}
		if count > best {
			dominant = label
			best = count
		}
	}
	if dominant == "" {
		return domain.SentimentNeutral
	}
	return dominant
}

// avResponse mirrors the NEWS_SENTIMENT payload shape

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title           string              `json:"title"`
	Summary         string              `json:"summary"`
	URL             string              `json:"url"`
	Source          string              `json:"source"`
	TickerSentiment []avTickerSentiment `json:"ticker_sentiment"`
}

type avTickerSentiment struct {
	Ticker               string `json:"ticker"`
	TickerSentimentLabel string `json:"ticker_sentiment_label"`
}
