package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/testutils"
	"github.com/atriumhq/atrium/pkg/classify"
	"github.com/atriumhq/atrium/pkg/element"
	"github.com/atriumhq/atrium/pkg/menu"
)

func TestPrintClassification_PlainOutput(t *testing.T) {
	res := classify.Classify(testutils.SampleTree(), nil)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintClassification(res)
	out := buf.String()

	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "products (Catalog)")
	assert.Contains(t, out, "discounts (Catalog / Pricing)")
	assert.Contains(t, out, "settings")
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must be unstyled")
}

func TestPrintMenu_IndentsByPath(t *testing.T) {
	reg := menu.NewRegistry()
	reg.Add(menu.Record{Key: "dashboard", Label: "Dashboard"}, nil)
	reg.Add(menu.Record{Key: "products", Label: "Products"},
		element.Path{}.Child(element.Segment{Label: "Catalog"}))

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMenu(reg.Tree())
	out := buf.String()

	require.Contains(t, out, "Dashboard [dashboard]")
	assert.Contains(t, out, "Catalog\n")
	assert.Contains(t, out, "  Products [products]")
}

func TestPrintMenu_FallsBackToKeyWithoutLabel(t *testing.T) {
	reg := menu.NewRegistry()
	reg.Add(menu.Record{Key: "users"}, nil)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMenu(reg.Tree())

	assert.Contains(t, buf.String(), "users [users]")
}
