package cache

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func useTestStore(t *testing.T) {
	t.Helper()
	if err := NewStore(); err != nil {
		t.Fatalf("unable to set up cache store: %v", err)
	}
}

func TestRenderedPageRoundTrip(t *testing.T) {
	useTestStore(t)

	content := []byte("<html>rendered index</html>")
	SetRenderedPage("page:index#1", content)
	R.Wait()

	got, ok := GetRenderedPage("page:index#1")
	if !ok {
		t.Fatal("cached page not found")
	}
	if !bytes.Equal(got, content) {
		t.Errorf("cached page content differs: %q", got)
	}

	if _, ok := GetRenderedPage("page:index#2"); ok {
		t.Error("unexpected hit for a key never set")
	}
}

func TestRenderedPageStaysStaleUntilFlush(t *testing.T) {
	useTestStore(t)

	// The cache does not watch writes: whatever was rendered stays until
	// the TTL runs out or it is flushed, byte for byte.
	stale := []byte("<html>no new post here</html>")
	SetRenderedPage("page:index#1", stale)
	R.Wait()

	got, ok := GetRenderedPage("page:index#1")
	if !ok || !bytes.Equal(got, stale) {
		t.Fatal("cached page should be served unchanged before a flush")
	}

	if err := FlushRenderedPages(); err != nil {
		t.Fatalf("unable to flush rendered pages: %v", err)
	}
	R.Wait()

	if _, ok := GetRenderedPage("page:index#1"); ok {
		t.Error("cached page survived an explicit flush")
	}
}

func TestRenderedPageExpires(t *testing.T) {
	useTestStore(t)

	viper.Set("cache.index_ttl", 50*time.Millisecond)
	defer viper.Set("cache.index_ttl", 0)

	SetRenderedPage("page:index#1", []byte("short lived"))
	R.Wait()

	if _, ok := GetRenderedPage("page:index#1"); !ok {
		t.Fatal("cached page missing before the TTL ran out")
	}

	time.Sleep(120 * time.Millisecond)

	if _, ok := GetRenderedPage("page:index#1"); ok {
		t.Error("cached page survived past its TTL")
	}
}

func TestRenderedPageTTLDefault(t *testing.T) {
	viper.Set("cache.index_ttl", 0)
	if got := RenderedPageTTL(); got != 20*time.Second {
		t.Errorf("default TTL = %v, want 20s", got)
	}
}
