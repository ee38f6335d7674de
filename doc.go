/*
Package atrium is the composition core of a declarative admin-panel
framework.

Consumers declare their admin UI as a nested tree of elements (categories,
resources, custom routes, opaque content) and mount it on an Admin. Atrium
classifies the tree into the four buckets a router consumes, keeps a shared
navigation menu registry synchronized with the classified resources and
routes, and derives a loading/empty/ready status for the render decision.

	admin := atrium.New()
	defer admin.Close()

	admin.Mount(
		element.Category("Catalog",
			element.Resource("products").WithLabel("Products").WithIcon("box"),
			element.Resource("reviews"),
		),
		element.Route("settings").WithLabel("Settings"),
		element.Route("login").Bare(),
	)

	menuTree := admin.Menu().Tree()
	status := admin.Status()

The actual screen rendering is the router's business; pkg/adapters/http
offers a chi-based adapter that mounts the classified buckets as an
http.Handler.
*/
package atrium
