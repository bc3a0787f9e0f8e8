package mock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderIsDeterministic(t *testing.T) {
	a := NewProvider(7).Orders(10)
	b := NewProvider(7).Orders(10)
	assert.Equal(t, a, b)

	c := NewProvider(8).Orders(10)
	assert.NotEqual(t, a[0].ID, c[0].ID)
}

func TestIDsAreUniqueUUIDs(t *testing.T) {
	p := NewProvider(1)
	seen := map[string]bool{}
	for _, e := range p.Employees(50) {
		_, err := uuid.Parse(e.ID)
		require.NoError(t, err)
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestGeneratorsHonourCount(t *testing.T) {
	p := NewProvider(3)
	assert.Len(t, p.Inventory(4), 4)
	assert.Len(t, p.Suppliers(4), 4)
	assert.Len(t, p.Customers(4), 4)
	assert.Len(t, p.Invoices(4), 4)
	assert.Len(t, p.Attendance(4), 4)
	assert.Len(t, p.LeaveRequests(4), 4)
	assert.Len(t, p.PerformanceReviews(4), 4)
	assert.Len(t, p.PurchaseOrders(4), 4)
	assert.Len(t, p.SalesReports(4), 4)
	assert.Len(t, p.Products(4), 4)
	assert.Len(t, p.Foods(4), 4)
	assert.Len(t, p.Categories(100), len(categories), "categories are capped by the name list")
	assert.Empty(t, p.Orders(0))
}

func TestGeneratedValuesAreConsistent(t *testing.T) {
	p := NewProvider(11)

	for _, inv := range p.Invoices(20) {
		assert.True(t, inv.DueAt.After(inv.IssuedAt))
		assert.Equal(t, int32(-2), inv.Amount.Exponent())
	}
	for _, a := range p.Attendance(20) {
		if a.Status == "absent" {
			assert.Empty(t, a.CheckIn)
			assert.Zero(t, a.Hours)
		} else {
			assert.Greater(t, a.Hours, 0.0)
		}
	}
	for _, l := range p.LeaveRequests(20) {
		assert.GreaterOrEqual(t, l.Days(), 1)
	}
}

func TestFetchFoods(t *testing.T) {
	p := NewProvider(5)
	items, err := p.FetchFoods(context.Background(), 6, time.Millisecond)
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestFetchFoodsCancelled(t *testing.T) {
	p := NewProvider(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := p.FetchFoods(ctx, 6, time.Hour)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, items)
}
