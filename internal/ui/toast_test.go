package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/eventbus"
	"backoffice/internal/features"
	"backoffice/internal/ui/navigation"
	"backoffice/internal/ui/state"
	"backoffice/internal/ui/views"
)

func TestToastFor(t *testing.T) {
	tests := []struct {
		name  string
		event eventbus.DomainEvent
		text  string
		level state.ToastLevel
		ok    bool
	}{
		{"single delete", eventbus.RecordDeletedEvent{Feature: "orders", ID: "a"}, "Record deleted", state.ToastSuccess, true},
		{"one of many", eventbus.RecordsDeletedEvent{IDs: []string{"a"}}, "1 record deleted", state.ToastSuccess, true},
		{"bulk delete", eventbus.RecordsDeletedEvent{IDs: []string{"a", "b", "c"}}, "3 records deleted", state.ToastSuccess, true},
		{"created", eventbus.RecordSavedEvent{Created: true}, "Record created", state.ToastSuccess, true},
		{"updated", eventbus.RecordSavedEvent{}, "Record updated", state.ToastSuccess, true},
		{"error", eventbus.ErrorEvent{Message: "Could not save", Err: errors.New("boom")}, "Could not save: boom", state.ToastError, true},
		{"bare error", eventbus.ErrorEvent{Message: "Nope"}, "Nope", state.ToastError, true},
		{"loaded is silent", eventbus.RecordsLoadedEvent{Feature: "orders", Count: 3}, "", state.ToastInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, level, ok := ToastFor(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestCrumbsFor(t *testing.T) {
	title, crumbs := crumbsFor(navigation.Route{}, "")
	assert.Equal(t, "Dashboard", title)
	assert.Equal(t, []views.Crumb{{Title: "Dashboard"}}, crumbs)

	title, crumbs = crumbsFor(navigation.Route{Feature: "orders"}, "Orders")
	assert.Equal(t, "Orders", title)
	assert.Equal(t, []views.Crumb{
		{Title: "Dashboard", Href: "/dashboard"},
		{Title: "Orders"},
	}, crumbs)

	id := "0123456789abcdef"
	title, crumbs = crumbsFor(navigation.Route{Feature: "orders", ID: id, Edit: true}, "Orders")
	assert.Equal(t, "Edit Orders", title)
	assert.Equal(t, []views.Crumb{
		{Title: "Dashboard", Href: "/dashboard"},
		{Title: "Orders", Href: "/dashboard/orders"},
		{Title: "01234567", Href: "/dashboard/orders/" + id},
		{Title: "Edit"},
	}, crumbs)

	title, crumbs = crumbsFor(navigation.Route{Feature: "orders", New: true}, "Orders")
	assert.Equal(t, "New Orders", title)
	assert.Equal(t, "New", crumbs[len(crumbs)-1].Title)
}

func TestRenderDetailContent(t *testing.T) {
	out := RenderDetailContent("Orders", []features.Detail{
		{Label: "Customer", Value: "Ada"},
		{Label: "Total", Value: "$12.00"},
	})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Orders", lines[0])
	assert.Equal(t, "======", lines[1])
	assert.Contains(t, out, "Customer  Ada")
	assert.Contains(t, out, "Total     $12.00")
}

func TestHelpContentListsBindings(t *testing.T) {
	out := NewHelpRenderer(newKeyMap()).RenderHelpContent()
	for _, s := range []string{"Navigation", "Selection & filters", "Rows", "Other", "Filters popup", "delete selected"} {
		assert.Contains(t, out, s)
	}
}

func TestPagerWithoutProgram(t *testing.T) {
	err := NewPagerOps().Show("text")
	assert.ErrorIs(t, err, errNoProgram)
}
