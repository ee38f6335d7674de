package menu

import "github.com/atriumhq/atrium/pkg/classify"

// Entries builds the registrar's observed list from a classification
// result: resources first, then layout-wrapped routes, each keyed by the
// element's declared name. Layout-free routes render outside the chrome and
// never participate in menu registration.
func Entries(res *classify.Result) []Entry {
	if res == nil {
		return nil
	}
	entries := make([]Entry, 0, len(res.Resources)+len(res.LayoutRoutes))
	for _, r := range res.Resources {
		entries = append(entries, Entry{
			Key:    r.Element.Name,
			Record: Record{Key: r.Element.Name, Label: r.Element.Label, Icon: r.Element.Icon},
			Path:   r.Path,
		})
	}
	for _, r := range res.LayoutRoutes {
		entries = append(entries, Entry{
			Key:    r.Element.Name,
			Record: Record{Key: r.Element.Name, Label: r.Element.Label, Icon: r.Element.Icon},
			Path:   r.Path,
			Hidden: r.Element.NoMenu,
		})
	}
	return entries
}
