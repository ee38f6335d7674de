package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/atriumhq/atrium/pkg/classify"
	"github.com/atriumhq/atrium/pkg/menu"
)

// Printer renders classification buckets and menu trees for the terminal.
type Printer struct {
	out io.Writer

	header lipgloss.Style
	key    lipgloss.Style
	dim    lipgloss.Style
}

// NewPrinter creates a printer writing to out. Styling is applied only when
// out is a real terminal with color support.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{out: out}
	if styledOutput(out) {
		p.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8"))
		p.key = lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399"))
		p.dim = lipgloss.NewStyle().Faint(true)
	} else {
		p.header = lipgloss.NewStyle()
		p.key = lipgloss.NewStyle()
		p.dim = lipgloss.NewStyle()
	}
	return p
}

// styledOutput reports whether out is an interactive terminal that supports
// color at all.
func styledOutput(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// PrintClassification writes the four buckets and the derived status.
func (p *Printer) PrintClassification(res *classify.Result) {
	fmt.Fprintln(p.out, p.header.Render("Status"))
	fmt.Fprintf(p.out, "  %s\n\n", string(res.Status()))

	fmt.Fprintln(p.out, p.header.Render("Resources"))
	for _, entry := range res.Resources {
		p.printEntry(entry.Element.Name, entry.Path.String())
	}
	if len(res.Resources) == 0 {
		fmt.Fprintln(p.out, p.dim.Render("  (none)"))
	}

	fmt.Fprintln(p.out, p.header.Render("\nRoutes (layout)"))
	for _, entry := range res.LayoutRoutes {
		p.printEntry(entry.Element.Name, entry.Path.String())
	}
	if len(res.LayoutRoutes) == 0 {
		fmt.Fprintln(p.out, p.dim.Render("  (none)"))
	}

	fmt.Fprintln(p.out, p.header.Render("\nRoutes (bare)"))
	for _, el := range res.BareRoutes {
		p.printEntry(el.Name, "")
	}
	if len(res.BareRoutes) == 0 {
		fmt.Fprintln(p.out, p.dim.Render("  (none)"))
	}

	fmt.Fprintf(p.out, "\n%s %d elements pass through\n", p.dim.Render("total:"), len(res.Children))
}

func (p *Printer) printEntry(name, path string) {
	if path == "" {
		fmt.Fprintf(p.out, "  %s\n", p.key.Render(name))
		return
	}
	fmt.Fprintf(p.out, "  %s %s\n", p.key.Render(name), p.dim.Render("("+path+")"))
}

// PrintMenu writes the hierarchical menu tree.
func (p *Printer) PrintMenu(root *menu.Node) {
	p.printNode(root, 0)
}

func (p *Printer) printNode(node *menu.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if node.Segment.Label != "" {
		fmt.Fprintf(p.out, "%s%s\n", indent, p.header.Render(node.Segment.Label))
		indent += "  "
	}
	for _, rec := range node.Records {
		label := rec.Label
		if label == "" {
			label = rec.Key
		}
		fmt.Fprintf(p.out, "%s%s %s\n", indent, p.key.Render(label), p.dim.Render("["+rec.Key+"]"))
	}
	for _, child := range node.Children {
		p.printNode(child, depth+1)
	}
}
