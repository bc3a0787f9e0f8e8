package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used to show and parse calendar dates
const DateLayout = "2006-01-02"

// Order represents a customer order
type Order struct {
	ID        string
	Number    string // human readable order number, e.g. "#1042"
	Customer  string
	Email     string
	Status    string // pending, completed, cancelled, refunded
	Items     int
	Total     decimal.Decimal
	CreatedAt time.Time
}

// InventoryItem represents stock held for a product
type InventoryItem struct {
	ID        string
	SKU       string
	Name      string
	Category  string
	Quantity  int
	Reorder   int // level at or below which the item counts as low stock
	UnitPrice decimal.Decimal
	UpdatedAt time.Time
}

// StockStatus derives the stock label from quantity and reorder level
func (i InventoryItem) StockStatus() string {
	switch {
	case i.Quantity <= 0:
		return "out of stock"
	case i.Quantity <= i.Reorder:
		return "low stock"
	default:
		return "in stock"
	}
}

// Employee represents a member of staff
type Employee struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Department string
	Role       string
	Status     string // active, on leave, terminated
	Salary     decimal.Decimal
	HiredAt    time.Time
}

// Supplier represents a vendor goods are purchased from
type Supplier struct {
	ID       string
	Name     string
	Contact  string
	Email    string
	Phone    string
	Category string
	Country  string
	Rating   int // 1-5
}

// Customer represents a buyer
type Customer struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Country  string
	Status   string // active, inactive, banned
	Orders   int
	Spent    decimal.Decimal
	JoinedAt time.Time
}

// Invoice represents an amount billed to a customer
type Invoice struct {
	ID       string
	Number   string
	Customer string
	Status   string // paid, pending, overdue, draft
	Amount   decimal.Decimal
	IssuedAt time.Time
	DueAt    time.Time
}

// Attendance represents one employee's presence on one day
type Attendance struct {
	ID       string
	Employee string
	Date     time.Time
	Status   string // present, absent, late, remote
	CheckIn  string
	CheckOut string
	Hours    float64
}

// Day returns the attendance date as used by the date filter
func (a Attendance) Day() string {
	return a.Date.Format(DateLayout)
}

// LeaveRequest represents a request for time off
type LeaveRequest struct {
	ID        string
	Employee  string
	LeaveType string // annual, sick, unpaid, parental
	Status    string // pending, approved, rejected
	Start     time.Time
	End       time.Time
	Reason    string
}

// Days returns the inclusive number of calendar days requested
func (l LeaveRequest) Days() int {
	if l.End.Before(l.Start) {
		return 0
	}
	return int(l.End.Sub(l.Start).Hours()/24) + 1
}

// PerformanceReview represents a periodic employee evaluation
type PerformanceReview struct {
	ID       string
	Employee string
	Reviewer string
	Period   string // e.g. "2024-H1"
	Rating   string // exceeds, meets, below
	Score    int    // 0-100
	Comments string
}

// PurchaseOrder represents goods ordered from a supplier
type PurchaseOrder struct {
	ID         string
	Number     string
	Supplier   string
	Status     string // draft, ordered, received, cancelled
	Items      int
	Total      decimal.Decimal
	OrderedAt  time.Time
	ExpectedAt time.Time
}

// SalesReport represents revenue for a region, channel and quarter
type SalesReport struct {
	ID      string
	Region  string
	Channel string
	Quarter string // e.g. "2024-Q3"
	Units   int
	Revenue decimal.Decimal
	Growth  float64 // percent versus previous quarter
}

// Category represents a product category
type Category struct {
	ID          string
	Name        string
	Description string
	Status      string // active, hidden
	Products    int
	CreatedAt   time.Time
}

// Product represents an item in the catalog
type Product struct {
	ID        string
	SKU       string
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Published bool
	CreatedAt time.Time
}

// PublishState returns the publish label used by the product filter
func (p Product) PublishState() string {
	if p.Published {
		return "published"
	}
	return "draft"
}

// Food represents a menu item
type Food struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Calories  int
	Available bool
}

// Availability returns the label used by the availability filter
func (f Food) Availability() string {
	if f.Available {
		return "available"
	}
	return "sold out"
}
