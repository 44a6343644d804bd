//go:build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

// restartListings bounces the listings container; the catalog it serves
// afterwards is regenerated from scratch.
func restartListings(t *testing.T, ctx context.Context) {
	t.Helper()

	cmd := exec.CommandContext(ctx, "docker", "compose", "restart", "listings")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart listings failed: %v\n%s", err, string(out))
	}
}
