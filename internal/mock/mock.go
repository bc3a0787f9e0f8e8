package mock

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/logutil"
)

// epoch anchors generated dates so fixtures do not drift with the clock
var epoch = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

var (
	firstNames = []string{"Ava", "Liam", "Mia", "Noah", "Zoe", "Omar", "Ines", "Kenji", "Sara", "Tomas", "Priya", "Lucas"}
	lastNames  = []string{"Garcia", "Nguyen", "Smith", "Kowalski", "Okafor", "Rossi", "Tanaka", "Müller", "Silva", "Haddad"}
	countries  = []string{"US", "DE", "FR", "JP", "BR", "NG", "IN", "CA"}
	categories = []string{"Electronics", "Furniture", "Apparel", "Grocery", "Office", "Toys"}
	products   = []string{"Desk Lamp", "Ergo Chair", "USB-C Hub", "Notebook", "Water Bottle", "Headphones", "Monitor Arm", "Backpack", "Coffee Beans", "Puzzle Set"}
	regions    = []string{"North", "South", "East", "West"}
	channels   = []string{"online", "retail", "wholesale"}
	foods      = []string{"Margherita", "Caesar Salad", "Ramen", "Falafel Wrap", "Pad Thai", "Burrito", "Sushi Roll", "Pho", "Tiramisu", "Club Sandwich"}
	foodKinds  = []string{"main", "starter", "dessert", "drink"}
	companies  = []string{"Acme Supply", "Globex", "Initech", "Umbrella Parts", "Stark Goods", "Wayne Traders", "Soylent Foods", "Hooli Hardware"}
	reviewers  = []string{"M. Chen", "R. Patel", "J. Alvarez", "K. Schmidt"}
)

// Provider generates deterministic fixtures for every feature.
// Generators share one seeded source and may be called from any goroutine.
type Provider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewProvider creates a provider seeded with seed
func NewProvider(seed int64) *Provider {
	return &Provider{rng: rand.New(rand.NewSource(seed))}
}

// ID returns a random UUID drawn from the seeded source
func (p *Provider) ID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.id()
}

func (p *Provider) id() string {
	id, err := uuid.NewRandomFromReader(p.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (p *Provider) pick(options []string) string {
	return options[p.rng.Intn(len(options))]
}

func (p *Provider) name() string {
	return p.pick(firstNames) + " " + p.pick(lastNames)
}

func (p *Provider) email(name string) string {
	user := []rune{}
	for _, r := range name {
		switch {
		case r == ' ':
			user = append(user, '.')
		case r >= 'A' && r <= 'Z':
			user = append(user, r+('a'-'A'))
		case r < 128:
			user = append(user, r)
		}
	}
	return fmt.Sprintf("%s%d@example.com", string(user), p.rng.Intn(90)+10)
}

func (p *Provider) phone() string {
	return fmt.Sprintf("+1 555 %03d %04d", p.rng.Intn(1000), p.rng.Intn(10000))
}

// money returns an amount between lo and hi with two decimal places
func (p *Provider) money(lo, hi int) decimal.Decimal {
	cents := int64(lo*100 + p.rng.Intn((hi-lo)*100+1))
	return decimal.New(cents, -2)
}

func (p *Provider) daysAgo(days int) time.Time {
	return epoch.AddDate(0, 0, -p.rng.Intn(days+1))
}

// Orders generates n customer orders
func (p *Provider) Orders(n int) []domain.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	statuses := []string{"pending", "completed", "cancelled", "refunded"}
	out := make([]domain.Order, n)
	for i := range out {
		name := p.name()
		out[i] = domain.Order{
			ID:        p.id(),
			Number:    fmt.Sprintf("#%d", 1000+i),
			Customer:  name,
			Email:     p.email(name),
			Status:    p.pick(statuses),
			Items:     p.rng.Intn(8) + 1,
			Total:     p.money(10, 900),
			CreatedAt: p.daysAgo(90).Add(time.Duration(p.rng.Intn(600)) * time.Minute),
		}
	}
	return out
}

// Inventory generates n stock items
func (p *Provider) Inventory(n int) []domain.InventoryItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.InventoryItem, n)
	for i := range out {
		out[i] = domain.InventoryItem{
			ID:        p.id(),
			SKU:       fmt.Sprintf("SKU-%05d", p.rng.Intn(100000)),
			Name:      p.pick(products),
			Category:  p.pick(categories),
			Quantity:  p.rng.Intn(60),
			Reorder:   10,
			UnitPrice: p.money(2, 400),
			UpdatedAt: p.daysAgo(30),
		}
	}
	return out
}

// Employees generates n staff members
func (p *Provider) Employees(n int) []domain.Employee {
	p.mu.Lock()
	defer p.mu.Unlock()
	departments := []string{"Sales", "Finance", "Engineering", "Support", "Operations"}
	roles := []string{"Associate", "Specialist", "Lead", "Manager"}
	statuses := []string{"active", "active", "active", "on leave", "terminated"}
	out := make([]domain.Employee, n)
	for i := range out {
		name := p.name()
		out[i] = domain.Employee{
			ID:         p.id(),
			Name:       name,
			Email:      p.email(name),
			Phone:      p.phone(),
			Department: p.pick(departments),
			Role:       p.pick(roles),
			Status:     p.pick(statuses),
			Salary:     p.money(32000, 140000).Round(0),
			HiredAt:    p.daysAgo(3000),
		}
	}
	return out
}

// Suppliers generates n vendors
func (p *Provider) Suppliers(n int) []domain.Supplier {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Supplier, n)
	for i := range out {
		contact := p.name()
		out[i] = domain.Supplier{
			ID:       p.id(),
			Name:     p.pick(companies),
			Contact:  contact,
			Email:    p.email(contact),
			Phone:    p.phone(),
			Category: p.pick(categories),
			Country:  p.pick(countries),
			Rating:   p.rng.Intn(5) + 1,
		}
	}
	return out
}

// Customers generates n buyers
func (p *Provider) Customers(n int) []domain.Customer {
	p.mu.Lock()
	defer p.mu.Unlock()
	statuses := []string{"active", "active", "inactive", "banned"}
	out := make([]domain.Customer, n)
	for i := range out {
		name := p.name()
		out[i] = domain.Customer{
			ID:       p.id(),
			Name:     name,
			Email:    p.email(name),
			Phone:    p.phone(),
			Country:  p.pick(countries),
			Status:   p.pick(statuses),
			Orders:   p.rng.Intn(40),
			Spent:    p.money(0, 12000),
			JoinedAt: p.daysAgo(1500),
		}
	}
	return out
}

// Invoices generates n invoices
func (p *Provider) Invoices(n int) []domain.Invoice {
	p.mu.Lock()
	defer p.mu.Unlock()
	statuses := []string{"paid", "pending", "overdue", "draft"}
	out := make([]domain.Invoice, n)
	for i := range out {
		issued := p.daysAgo(120)
		out[i] = domain.Invoice{
			ID:       p.id(),
			Number:   fmt.Sprintf("INV-%04d", 2000+i),
			Customer: p.name(),
			Status:   p.pick(statuses),
			Amount:   p.money(50, 8000),
			IssuedAt: issued,
			DueAt:    issued.AddDate(0, 0, 30),
		}
	}
	return out
}

// Attendance generates n attendance entries spread over the last week
func (p *Provider) Attendance(n int) []domain.Attendance {
	p.mu.Lock()
	defer p.mu.Unlock()
	statuses := []string{"present", "present", "present", "late", "absent", "remote"}
	out := make([]domain.Attendance, n)
	for i := range out {
		status := p.pick(statuses)
		entry := domain.Attendance{
			ID:       p.id(),
			Employee: p.name(),
			Date:     p.daysAgo(6),
			Status:   status,
		}
		if status != "absent" {
			in := 8*60 + p.rng.Intn(90)
			worked := 6*60 + p.rng.Intn(180)
			entry.CheckIn = clock(in)
			entry.CheckOut = clock(in + worked)
			entry.Hours = float64(worked) / 60
		}
		out[i] = entry
	}
	return out
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// LeaveRequests generates n time-off requests
func (p *Provider) LeaveRequests(n int) []domain.LeaveRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := []string{"annual", "sick", "unpaid", "parental"}
	statuses := []string{"pending", "approved", "rejected"}
	reasons := []string{"Family trip", "Medical appointment", "Moving house", "Personal matters", "Conference"}
	out := make([]domain.LeaveRequest, n)
	for i := range out {
		start := epoch.AddDate(0, 0, p.rng.Intn(60)-20)
		out[i] = domain.LeaveRequest{
			ID:        p.id(),
			Employee:  p.name(),
			LeaveType: p.pick(types),
			Status:    p.pick(statuses),
			Start:     start,
			End:       start.AddDate(0, 0, p.rng.Intn(10)),
			Reason:    p.pick(reasons),
		}
	}
	return out
}

// PerformanceReviews generates n reviews
func (p *Provider) PerformanceReviews(n int) []domain.PerformanceReview {
	p.mu.Lock()
	defer p.mu.Unlock()
	periods := []string{"2023-H2", "2024-H1", "2024-H2"}
	comments := []string{"Consistent delivery", "Great mentor", "Needs focus on deadlines", "Strong customer feedback"}
	out := make([]domain.PerformanceReview, n)
	for i := range out {
		score := 40 + p.rng.Intn(61)
		rating := "meets"
		switch {
		case score >= 85:
			rating = "exceeds"
		case score < 60:
			rating = "below"
		}
		out[i] = domain.PerformanceReview{
			ID:       p.id(),
			Employee: p.name(),
			Reviewer: p.pick(reviewers),
			Period:   p.pick(periods),
			Rating:   rating,
			Score:    score,
			Comments: p.pick(comments),
		}
	}
	return out
}

// PurchaseOrders generates n supplier orders
func (p *Provider) PurchaseOrders(n int) []domain.PurchaseOrder {
	p.mu.Lock()
	defer p.mu.Unlock()
	statuses := []string{"draft", "ordered", "received", "cancelled"}
	out := make([]domain.PurchaseOrder, n)
	for i := range out {
		ordered := p.daysAgo(60)
		out[i] = domain.PurchaseOrder{
			ID:         p.id(),
			Number:     fmt.Sprintf("PO-%04d", 500+i),
			Supplier:   p.pick(companies),
			Status:     p.pick(statuses),
			Items:      p.rng.Intn(200) + 1,
			Total:      p.money(200, 25000),
			OrderedAt:  ordered,
			ExpectedAt: ordered.AddDate(0, 0, 7+p.rng.Intn(21)),
		}
	}
	return out
}

// SalesReports generates n regional revenue rows
func (p *Provider) SalesReports(n int) []domain.SalesReport {
	p.mu.Lock()
	defer p.mu.Unlock()
	quarters := []string{"2023-Q4", "2024-Q1", "2024-Q2", "2024-Q3"}
	out := make([]domain.SalesReport, n)
	for i := range out {
		out[i] = domain.SalesReport{
			ID:      p.id(),
			Region:  p.pick(regions),
			Channel: p.pick(channels),
			Quarter: p.pick(quarters),
			Units:   p.rng.Intn(5000),
			Revenue: p.money(5000, 250000),
			Growth:  float64(p.rng.Intn(600)-200) / 10,
		}
	}
	return out
}

// Categories generates one category per known name, up to n
func (p *Provider) Categories(n int) []domain.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	n = min(n, len(categories))
	out := make([]domain.Category, n)
	for i := range out {
		status := "active"
		if p.rng.Intn(4) == 0 {
			status = "hidden"
		}
		out[i] = domain.Category{
			ID:          p.id(),
			Name:        categories[i],
			Description: fmt.Sprintf("All %s products", categories[i]),
			Status:      status,
			Products:    p.rng.Intn(120),
			CreatedAt:   p.daysAgo(700),
		}
	}
	return out
}

// Products generates n catalog items
func (p *Provider) Products(n int) []domain.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{
			ID:        p.id(),
			SKU:       fmt.Sprintf("PRD-%05d", p.rng.Intn(100000)),
			Name:      p.pick(products),
			Category:  p.pick(categories),
			Price:     p.money(3, 1500),
			Stock:     p.rng.Intn(300),
			Published: p.rng.Intn(3) != 0,
			CreatedAt: p.daysAgo(365),
		}
	}
	return out
}

// Foods generates n menu items
func (p *Provider) Foods(n int) []domain.Food {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Food, n)
	for i := range out {
		out[i] = domain.Food{
			ID:        p.id(),
			Name:      p.pick(foods),
			Category:  p.pick(foodKinds),
			Price:     p.money(3, 35),
			Calories:  100 + p.rng.Intn(900),
			Available: p.rng.Intn(5) != 0,
		}
	}
	return out
}

// FetchFoods simulates a slow menu service. The list is generated up front and
// handed back after latency, or ctx's error if it ends first.
func (p *Provider) FetchFoods(ctx context.Context, n int, latency time.Duration) ([]domain.Food, error) {
	items := p.Foods(n)

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		logutil.L().Debug("food fetch cancelled", zap.Error(ctx.Err()))
		return nil, fmt.Errorf("failed to fetch foods: %w", ctx.Err())
	case <-timer.C:
		logutil.L().Debug("food fetch completed", zap.Int("count", len(items)))
		return items, nil
	}
}
