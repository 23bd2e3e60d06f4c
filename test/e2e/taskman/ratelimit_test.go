package taskman_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/tasknest/tasknest/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestWriteRateLimit runs against the PRODUCTION default limits, unlike the
// other suites which relax them. It hammers a write endpoint until the
// token bucket runs dry.
func TestWriteRateLimit(t *testing.T) {
	client, cleanup := setupContainer(t, map[string]string{
		// Tight write budget so the test trips it quickly
		"RATELIMIT_WRITE_REQUESTS":   "5",
		"RATELIMIT_WRITE_WINDOW_SEC": "60",
		"RATELIMIT_WRITE_BURST":      "5",
		// Reads stay relaxed so setup and assertions are unaffected
		"RATELIMIT_READ_REQUESTS": "10000",
		"RATELIMIT_READ_BURST":    "10000",
	})
	defer cleanup()

	ctx := context.Background()

	var limited bool
	for i := 0; i < 20; i++ {
		_, err := client.CreateUser(ctx, tasksdk.CreateUserRequest{
			Username:  fmt.Sprintf("burst-%d", i),
			FirstName: "Burst",
			LastName:  "Tester",
		})
		if err == nil {
			continue
		}
		if apiErr, ok := err.(*tasksdk.APIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
		t.Fatalf("unexpected error before rate limit hit: %v", err)
	}
	require.True(t, limited, "expected a 429 from the write endpoint within 20 requests")
}
