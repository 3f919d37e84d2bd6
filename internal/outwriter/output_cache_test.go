package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/oreops/haulstat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCacheStatusTable(t *testing.T) {
	status := schema.CacheStatus{
		HasDataset:         true,
		Valid:              false,
		CachedFingerprint:  "aaaabbbbccccdddd",
		CurrentFingerprint: "eeeeffff00001111",
		LoadedAt:           time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Records:            1200,
		Sources:            4,
	}

	var buf bytes.Buffer
	cfg := testConfig()
	require.NoError(t, writeCacheStatusTable(status, cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "stale")
	assert.Contains(t, out, "aaaabbbbcccc") // abbreviated fingerprint
	assert.NotContains(t, out, "aaaabbbbccccdddd")
	assert.Contains(t, out, "1200")
}

func TestWriteCacheStatusTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	require.NoError(t, writeCacheStatusTable(schema.CacheStatus{CurrentFingerprint: "abc"}, cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "empty")
	// No cached fingerprint or load time to show.
	assert.Contains(t, out, "-")
}

func TestShortFingerprint(t *testing.T) {
	assert.Equal(t, "-", shortFingerprint(""))
	assert.Equal(t, "abc", shortFingerprint("abc"))
	assert.Equal(t, "0123456789ab", shortFingerprint("0123456789abcdef"))
}
