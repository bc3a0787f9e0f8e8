package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// Root is the dashboard path
const Root = "/dashboard"

var ErrBadPath = errors.New("invalid path")

// Route identifies one screen
type Route struct {
	Feature string // empty on the dashboard
	ID      string
	New     bool
	Edit    bool
}

// Path renders the route as /dashboard[/feature[/id[/edit]|/new]]
func (r Route) Path() string {
	if r.Feature == "" {
		return Root
	}
	p := Root + "/" + r.Feature
	switch {
	case r.New:
		return p + "/new"
	case r.ID != "" && r.Edit:
		return p + "/" + r.ID + "/edit"
	case r.ID != "":
		return p + "/" + r.ID
	}
	return p
}

// IsDashboard reports whether the route is the feature menu
func (r Route) IsDashboard() bool {
	return r.Feature == ""
}

// IsList reports whether the route is a feature's table
func (r Route) IsList() bool {
	return r.Feature != "" && r.ID == "" && !r.New
}

// IsForm reports whether the route is the create or edit form
func (r Route) IsForm() bool {
	return r.New || r.Edit
}

// Parse reads a path produced by Route.Path
func Parse(path string) (Route, error) {
	rest, ok := strings.CutPrefix(strings.TrimRight(path, "/"), Root)
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrBadPath, path)
	}
	if rest == "" {
		return Route{}, nil
	}
	if !strings.HasPrefix(rest, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrBadPath, path)
	}
	parts := strings.Split(rest[1:], "/")
	for _, part := range parts {
		if part == "" {
			return Route{}, fmt.Errorf("%w: %q", ErrBadPath, path)
		}
	}

	r := Route{Feature: parts[0]}
	switch len(parts) {
	case 1:
	case 2:
		if parts[1] == "new" {
			r.New = true
		} else {
			r.ID = parts[1]
		}
	case 3:
		if parts[2] != "edit" {
			return Route{}, fmt.Errorf("%w: %q", ErrBadPath, path)
		}
		r.ID, r.Edit = parts[1], true
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrBadPath, path)
	}
	return r, nil
}
