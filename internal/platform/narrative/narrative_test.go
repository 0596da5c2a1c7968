package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pulse/internal/domain/stats"
)

func sampleResult() stats.Result {
	return stats.Result{
		Lowest3:  []stats.RankedArea{{Area: "Komunikacja", Average: 2.1, Range: stats.ScaleRange}},
		Highest3: []stats.RankedArea{{Area: "Rozwój i szkolenia", Average: 4.2, Range: stats.ScaleRange}},
	}
}

func TestStaticInsights(t *testing.T) {
	insights, err := NewStatic().Insights(context.Background(), sampleResult())
	if err != nil {
		t.Fatalf("static generator must not fail: %v", err)
	}
	if !strings.Contains(insights.LowestInsight, "Komunikacja") {
		t.Fatalf("lowest insight should name the area: %q", insights.LowestInsight)
	}
	if !strings.Contains(insights.HighestInsight, "Rozwój i szkolenia") {
		t.Fatalf("highest insight should name the area: %q", insights.HighestInsight)
	}
}

func TestStaticInsightsEmptyResult(t *testing.T) {
	insights, err := NewStatic().Insights(context.Background(), stats.Result{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insights.LowestInsight != "" || insights.HighestInsight != "" {
		t.Fatalf("expected empty insights for empty stats: %+v", insights)
	}
}

func TestHTTPGeneratorInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		content, _ := json.Marshal(Insights{LowestInsight: "niski", HighestInsight: "wysoki"})
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": string(content)}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, "test-key", "gpt-4o", 5*time.Second)
	insights, err := gen.Insights(context.Background(), sampleResult())
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if insights.LowestInsight != "niski" || insights.HighestInsight != "wysoki" {
		t.Fatalf("unexpected insights: %+v", insights)
	}
}

func TestHTTPGeneratorErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, "", "gpt-4o", 5*time.Second)
	if _, err := gen.Insights(context.Background(), sampleResult()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
