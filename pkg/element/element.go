package element

// Kind discriminates the element variants.
type Kind string

const (
	// KindFragment is a transparent wrapper: no identity, no path segment.
	KindFragment Kind = "fragment"
	// KindCategory groups children and contributes one path segment.
	KindCategory Kind = "category"
	// KindResource is an entity with standard list/detail screens.
	KindResource Kind = "resource"
	// KindRoute is a standalone application route.
	KindRoute Kind = "route"
	// KindRaw is unrecognized content, rendered pass-through only.
	KindRaw Kind = "raw"
	// KindDeferred produces its children lazily via Resolve.
	KindDeferred Kind = "deferred"
)

// Element is one node of the declarative admin tree.
// The zero value is not usable; build elements with the constructors below.
type Element struct {
	Kind     Kind
	Name     string
	Label    string
	Icon     string
	Metadata map[string]string

	// NoLayout opts a route out of the surrounding layout chrome.
	NoLayout bool
	// NoMenu opts a route out of menu registration.
	NoMenu bool

	// Content is the opaque screen payload handed to the router. The core
	// never inspects it.
	Content any

	Children []*Element

	// Resolve is set on deferred elements only. A nil return means the
	// children are not resolvable yet.
	Resolve func() []*Element
}

// Fragment wraps children without contributing identity or a path segment.
func Fragment(children ...*Element) *Element {
	return &Element{Kind: KindFragment, Children: children}
}

// Category groups children under a labeled breadcrumb segment.
func Category(label string, children ...*Element) *Element {
	return &Element{Kind: KindCategory, Label: label, Children: children}
}

// Resource declares an entity surfaced with standard screens and an
// automatic menu entry keyed by name.
func Resource(name string) *Element {
	return &Element{Kind: KindResource, Name: name}
}

// Route declares an application route not tied to a resource.
func Route(name string) *Element {
	return &Element{Kind: KindRoute, Name: name}
}

// Raw wraps opaque content that matches no marker; it only participates in
// pass-through rendering.
func Raw(content any) *Element {
	return &Element{Kind: KindRaw, Content: content}
}

// Deferred declares children produced lazily. The thunk is re-invoked on
// every classification; returning nil signals "not resolvable yet".
func Deferred(resolve func() []*Element) *Element {
	return &Element{Kind: KindDeferred, Resolve: resolve}
}

// WithLabel sets the display label.
func (e *Element) WithLabel(label string) *Element {
	e.Label = label
	return e
}

// WithIcon sets the display icon.
func (e *Element) WithIcon(icon string) *Element {
	e.Icon = icon
	return e
}

// WithMeta attaches an identifying metadata pair.
func (e *Element) WithMeta(key, value string) *Element {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// WithContent sets the opaque screen payload.
func (e *Element) WithContent(content any) *Element {
	e.Content = content
	return e
}

// Bare opts a route out of the surrounding layout; the classifier then
// records the raw element without a path.
func (e *Element) Bare() *Element {
	e.NoLayout = true
	return e
}

// HideFromMenu opts a route out of menu registration.
func (e *Element) HideFromMenu() *Element {
	e.NoMenu = true
	return e
}

// Segment builds the path segment a category contributes: its own props,
// never its children.
func (e *Element) Segment() Segment {
	return Segment{Label: e.Label, Icon: e.Icon, Metadata: e.Metadata}
}
