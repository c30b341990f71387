package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"podfeed/internal/probe"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", path, err)
	}
}

func makePlaylistDir(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	return dir
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	dir := makePlaylistDir(t, root, "My Show")

	writeFile(t, filepath.Join(dir, "001 - First.info.json"),
		`{"title": "First & Best", "description": "The opener.", "upload_date": "20230615", "thumbnail": "https://i.ytimg.com/vi/abc/max.jpg"}`)
	writeFile(t, filepath.Join(dir, "001 - First.mp3"), "abc")
	writeFile(t, filepath.Join(dir, "002 - Gone.info.json"), `{"title": "Gone"}`)
	writeFile(t, filepath.Join(dir, "003 - Broken.info.json"), `{"title": `)
	writeFile(t, filepath.Join(dir, "003 - Broken.mp3"), "xyz")

	r := &Resolver{
		Root:    root,
		BaseURL: "https://cdn.example.com/pod",
		Prober:  &probe.Fake{Durations: map[string]float64{"001 - First.mp3": 200}},
		Workers: 2,
	}

	sidecars := []string{
		filepath.Join(dir, "001 - First.info.json"),
		filepath.Join(dir, "002 - Gone.info.json"),
		filepath.Join(dir, "003 - Broken.info.json"),
	}
	results := r.Resolve(context.Background(), sidecars)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	first := results[0]
	if first.Status != StatusResolved {
		t.Fatalf("results[0].Status = %v, want resolved (reason %q)", first.Status, first.Reason)
	}
	wantURL := "https://cdn.example.com/pod/My%20Show/001%20-%20First.mp3"
	if first.Item.Enclosure.URL != wantURL {
		t.Errorf("enclosure URL = %q, want %q", first.Item.Enclosure.URL, wantURL)
	}
	if first.Item.GUID != wantURL {
		t.Errorf("GUID = %q, want the enclosure URL", first.Item.GUID)
	}
	if first.Item.Title != "First & Best" {
		t.Errorf("title = %q, want %q", first.Item.Title, "First & Best")
	}
	if first.Item.Description != "The opener." {
		t.Errorf("description = %q, want %q", first.Item.Description, "The opener.")
	}
	if first.Item.Enclosure.Length != 3 {
		t.Errorf("enclosure length = %d, want 3", first.Item.Enclosure.Length)
	}
	if first.Item.Enclosure.Type != "audio/mpeg" {
		t.Errorf("enclosure type = %q, want audio/mpeg", first.Item.Enclosure.Type)
	}
	if first.Item.Duration != "3:20" {
		t.Errorf("duration = %q, want 3:20", first.Item.Duration)
	}
	if first.Item.PubDate != "Thu, 15 Jun 2023 00:00:00 +0000" {
		t.Errorf("pubDate = %q, want explicit upload date", first.Item.PubDate)
	}
	if first.MetaThumbnail != "https://i.ytimg.com/vi/abc/max.jpg" {
		t.Errorf("MetaThumbnail = %q, want the sidecar thumbnail", first.MetaThumbnail)
	}

	if results[1].Status != StatusSkipped {
		t.Errorf("results[1].Status = %v, want skipped", results[1].Status)
	}
	if results[2].Status != StatusFailed {
		t.Errorf("results[2].Status = %v, want failed", results[2].Status)
	}
	if results[2].Reason == "" {
		t.Error("failed result has no reason")
	}
}

func TestResolveSkipBeforeParse(t *testing.T) {
	// A sidecar without media is a skip even when its content would not
	// parse; the pairing check runs first.
	root := t.TempDir()
	dir := makePlaylistDir(t, root, "Show")
	sc := filepath.Join(dir, "001 - Ep.info.json")
	writeFile(t, sc, "not json at all")

	r := &Resolver{Root: root, BaseURL: "https://b", Prober: &probe.Fake{}, Workers: 1}
	results := r.Resolve(context.Background(), []string{sc})

	if results[0].Status != StatusSkipped {
		t.Errorf("Status = %v, want skipped (reason %q)", results[0].Status, results[0].Reason)
	}
}

func TestResolveDefaults(t *testing.T) {
	root := t.TempDir()
	dir := makePlaylistDir(t, root, "Show")
	sc := filepath.Join(dir, "001 - Ep.info.json")
	writeFile(t, sc, `{"description": "no title here"}`)
	writeFile(t, filepath.Join(dir, "001 - Ep.mp3"), "x")

	when := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if err := os.Chtimes(sc, when, when); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	r := &Resolver{Root: root, BaseURL: "https://b", Prober: &probe.Fake{}, Workers: 1}
	results := r.Resolve(context.Background(), []string{sc})

	item := results[0].Item
	if results[0].Status != StatusResolved {
		t.Fatalf("Status = %v, want resolved (reason %q)", results[0].Status, results[0].Reason)
	}
	if item.Title != "Untitled" {
		t.Errorf("title = %q, want the placeholder", item.Title)
	}
	if item.PubDate != "Fri, 01 Mar 2024 10:30:00 +0000" {
		t.Errorf("pubDate = %q, want the sidecar mtime", item.PubDate)
	}
	if item.Duration != "" {
		t.Errorf("duration = %q, want empty when the probe fails", item.Duration)
	}
}

func TestResolveCollatesInInputOrder(t *testing.T) {
	root := t.TempDir()
	dir := makePlaylistDir(t, root, "Show")

	durations := make(map[string]float64)
	var sidecars []string
	for i := 1; i <= 8; i++ {
		stem := fmt.Sprintf("%03d - Ep", i)
		writeFile(t, filepath.Join(dir, stem+".info.json"), fmt.Sprintf(`{"title": "Ep %d"}`, i))
		writeFile(t, filepath.Join(dir, stem+".mp3"), "x")
		durations[stem+".mp3"] = float64(60 * i)
		sidecars = append(sidecars, filepath.Join(dir, stem+".info.json"))
	}

	r := &Resolver{
		Root:    root,
		BaseURL: "https://cdn.example.com",
		Prober:  &probe.Fake{Durations: durations},
		Workers: 4,
	}
	results := r.Resolve(context.Background(), sidecars)

	for i, res := range results {
		if res.Status != StatusResolved {
			t.Fatalf("results[%d].Status = %v, want resolved (reason %q)", i, res.Status, res.Reason)
		}
		wantTitle := fmt.Sprintf("Ep %d", i+1)
		if res.Item.Title != wantTitle {
			t.Errorf("results[%d] title = %q, want %q", i, res.Item.Title, wantTitle)
		}
		wantDuration := fmt.Sprintf("%d:00", i+1)
		if res.Item.Duration != wantDuration {
			t.Errorf("results[%d] duration = %q, want %q", i, res.Item.Duration, wantDuration)
		}
	}
}

func TestResolveCanceledContext(t *testing.T) {
	root := t.TempDir()
	dir := makePlaylistDir(t, root, "Show")
	sc := filepath.Join(dir, "001 - Ep.info.json")
	writeFile(t, sc, `{"title": "Ep"}`)
	writeFile(t, filepath.Join(dir, "001 - Ep.mp3"), "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Resolver{Root: root, BaseURL: "https://b", Prober: &probe.Fake{}, Workers: 1}
	results := r.Resolve(ctx, []string{sc})

	if results[0].Status != StatusFailed {
		t.Errorf("Status = %v, want failed after cancellation", results[0].Status)
	}
	if results[0].Reason != "canceled" {
		t.Errorf("Reason = %q, want %q", results[0].Reason, "canceled")
	}
}

// cancelingProber cancels the resolve context from inside its first
// probe call.
type cancelingProber struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (p *cancelingProber) Probe(context.Context, string) (float64, bool) {
	p.once.Do(p.cancel)
	return 0, false
}

func TestResolveCanceledMidRun(t *testing.T) {
	root := t.TempDir()
	dir := makePlaylistDir(t, root, "Show")

	var sidecars []string
	for i := 1; i <= 3; i++ {
		stem := fmt.Sprintf("%03d - Ep", i)
		writeFile(t, filepath.Join(dir, stem+".info.json"), fmt.Sprintf(`{"title": "Ep %d"}`, i))
		writeFile(t, filepath.Join(dir, stem+".mp3"), "x")
		sidecars = append(sidecars, filepath.Join(dir, stem+".info.json"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &Resolver{
		Root:    root,
		BaseURL: "https://b",
		Prober:  &cancelingProber{cancel: cancel},
		Workers: 1,
	}
	results := r.Resolve(ctx, sidecars)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// The in-flight item finishes; the queued ones are marked canceled.
	if results[0].Status != StatusResolved {
		t.Errorf("results[0].Status = %v, want resolved (reason %q)",
			results[0].Status, results[0].Reason)
	}
	for i := 1; i < 3; i++ {
		if results[i].Status != StatusFailed || results[i].Reason != "canceled" {
			t.Errorf("results[%d] = %v %q, want failed with reason canceled",
				i, results[i].Status, results[i].Reason)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	r := &Resolver{Root: t.TempDir(), BaseURL: "https://b", Prober: &probe.Fake{}}
	results := r.Resolve(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results for no sidecars, want 0", len(results))
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusResolved, "resolved"},
		{StatusSkipped, "skipped"},
		{StatusFailed, "failed"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
