package ui

import (
	"backoffice/internal/ui/navigation"
	"backoffice/internal/ui/views"
)

// crumbsFor builds the page title and crumb trail for a route
func crumbsFor(r navigation.Route, feature string) (string, []views.Crumb) {
	home := views.Crumb{Title: "Dashboard", Href: navigation.Root}
	if r.IsDashboard() {
		home.Href = ""
		return "Dashboard", []views.Crumb{home}
	}

	list := navigation.Route{Feature: r.Feature}
	crumbs := []views.Crumb{home, {Title: feature, Href: list.Path()}}
	switch {
	case r.New:
		crumbs = append(crumbs, views.Crumb{Title: "New"})
		return "New " + feature, crumbs
	case r.Edit:
		detail := navigation.Route{Feature: r.Feature, ID: r.ID}
		crumbs = append(crumbs,
			views.Crumb{Title: shortID(r.ID), Href: detail.Path()},
			views.Crumb{Title: "Edit"},
		)
		return "Edit " + feature, crumbs
	case r.ID != "":
		crumbs = append(crumbs, views.Crumb{Title: shortID(r.ID)})
		return feature, crumbs
	}
	crumbs[1].Href = ""
	return feature, crumbs
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
