package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/pkg/element"
)

// SampleTree builds the canonical fixture tree used across packages:
// a catalog category with two resources, a nested pricing category, a
// layout route, a hidden route, and a bare login route.
func SampleTree() []*element.Element {
	return []*element.Element{
		element.Category("Catalog",
			element.Resource("products").WithLabel("Products").WithIcon("box"),
			element.Resource("reviews").WithLabel("Reviews"),
			element.Category("Pricing",
				element.Resource("discounts").WithLabel("Discounts"),
			),
		),
		element.Route("settings").WithLabel("Settings").WithIcon("gear"),
		element.Route("audit").WithLabel("Audit log").HideFromMenu(),
		element.Route("login").Bare(),
	}
}

// WriteManifest writes content into a temp file and returns its path.
// It fails the test immediately on error.
func WriteManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "atrium.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write manifest fixture")
	return path
}
