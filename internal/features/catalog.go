package features

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain"
	"backoffice/internal/mock"
	"backoffice/internal/table"
)

var inventory = Define(Definition[domain.InventoryItem]{
	Title:      "Inventory",
	Slug:       "inventory",
	SearchHint: "Search product or SKU...",
	Schema: table.Schema[domain.InventoryItem]{
		ID: func(i domain.InventoryItem) string { return i.ID },
		Matcher: table.Matcher[domain.InventoryItem]{
			Text: func(i domain.InventoryItem) []string { return []string{i.Name, i.SKU} },
			Categories: []table.Category[domain.InventoryItem]{
				{Name: "category", Get: func(i domain.InventoryItem) string { return i.Category }},
				{Name: "stock", Get: domain.InventoryItem.StockStatus},
			},
		},
		Fields: []table.Field[domain.InventoryItem]{
			table.Ordered("sku", func(i domain.InventoryItem) string { return i.SKU }),
			table.Ordered("name", func(i domain.InventoryItem) string { return i.Name }),
			table.Ordered("category", func(i domain.InventoryItem) string { return i.Category }),
			table.Ordered("quantity", func(i domain.InventoryItem) int { return i.Quantity }),
			table.Decimal("price", func(i domain.InventoryItem) decimal.Decimal { return i.UnitPrice }),
			table.Time("updated", func(i domain.InventoryItem) time.Time { return i.UpdatedAt }),
		},
	},
	Columns: []ColumnDef[domain.InventoryItem]{
		{Title: "SKU", Width: 9, Field: "sku", Cell: func(i domain.InventoryItem) string { return i.SKU }},
		{Title: "Product", Width: 14, Field: "name", Cell: func(i domain.InventoryItem) string { return i.Name }},
		{Title: "Category", Width: 11, Field: "category", Cell: func(i domain.InventoryItem) string { return i.Category }},
		{Title: "Qty", Width: 4, Field: "quantity", Cell: func(i domain.InventoryItem) string { return strconv.Itoa(i.Quantity) }},
		{Title: "Price", Width: 9, Field: "price", Cell: func(i domain.InventoryItem) string { return money(i.UnitPrice) }},
		{Title: "Stock", Width: 12, Cell: domain.InventoryItem.StockStatus},
	},
	DefaultSort:  "name",
	DefaultOrder: table.Asc,
	Fetch:        generated((*mock.Provider).Inventory),
})

var suppliers = Define(Definition[domain.Supplier]{
	Title:      "Suppliers",
	Slug:       "suppliers",
	SearchHint: "Search name or contact...",
	Schema: table.Schema[domain.Supplier]{
		ID: func(s domain.Supplier) string { return s.ID },
		Matcher: table.Matcher[domain.Supplier]{
			Text: func(s domain.Supplier) []string { return []string{s.Name, s.Contact} },
			Categories: []table.Category[domain.Supplier]{
				{Name: "category", Get: func(s domain.Supplier) string { return s.Category }},
				{Name: "country", Get: func(s domain.Supplier) string { return s.Country }},
			},
		},
		Fields: []table.Field[domain.Supplier]{
			table.Ordered("name", func(s domain.Supplier) string { return s.Name }),
			table.Ordered("contact", func(s domain.Supplier) string { return s.Contact }),
			table.Ordered("category", func(s domain.Supplier) string { return s.Category }),
			table.Ordered("country", func(s domain.Supplier) string { return s.Country }),
			table.Ordered("rating", func(s domain.Supplier) int { return s.Rating }),
		},
	},
	Columns: []ColumnDef[domain.Supplier]{
		{Title: "Name", Width: 15, Field: "name", Cell: func(s domain.Supplier) string { return s.Name }},
		{Title: "Contact", Width: 18, Field: "contact", Cell: func(s domain.Supplier) string { return s.Contact }},
		{Title: "Category", Width: 11, Field: "category", Cell: func(s domain.Supplier) string { return s.Category }},
		{Title: "Country", Width: 7, Field: "country", Cell: func(s domain.Supplier) string { return s.Country }},
		{Title: "Rating", Width: 6, Field: "rating", Cell: func(s domain.Supplier) string { return stars(s.Rating) }},
	},
	DefaultSort:  "name",
	DefaultOrder: table.Asc,
	Form: &FormDef[domain.Supplier]{
		New: func(id string) domain.Supplier { return domain.Supplier{ID: id, Rating: 3} },
		Fields: []FieldDef[domain.Supplier]{
			{Key: "name", Label: "Name", Required: true,
				Get: func(s domain.Supplier) string { return s.Name },
				Set: text(func(s *domain.Supplier, v string) { s.Name = v })},
			{Key: "contact", Label: "Contact", Required: true,
				Get: func(s domain.Supplier) string { return s.Contact },
				Set: text(func(s *domain.Supplier, v string) { s.Contact = v })},
			{Key: "email", Label: "Email",
				Get: func(s domain.Supplier) string { return s.Email },
				Set: text(func(s *domain.Supplier, v string) { s.Email = v })},
			{Key: "category", Label: "Category", Required: true,
				Get: func(s domain.Supplier) string { return s.Category },
				Set: text(func(s *domain.Supplier, v string) { s.Category = v })},
			{Key: "country", Label: "Country", Required: true,
				Get: func(s domain.Supplier) string { return s.Country },
				Set: text(func(s *domain.Supplier, v string) { s.Country = v })},
			{Key: "rating", Label: "Rating", Hint: "1-5",
				Get: func(s domain.Supplier) string { return strconv.Itoa(s.Rating) },
				Set: intField(func(s *domain.Supplier, n int) { s.Rating = n }, between(1, 5))},
		},
	},
	Fetch: generated((*mock.Provider).Suppliers),
})

var purchaseOrders = Define(Definition[domain.PurchaseOrder]{
	Title:      "Purchase orders",
	Slug:       "purchase-orders",
	SearchHint: "Search supplier or PO number...",
	Schema: table.Schema[domain.PurchaseOrder]{
		ID: func(p domain.PurchaseOrder) string { return p.ID },
		Matcher: table.Matcher[domain.PurchaseOrder]{
			Text: func(p domain.PurchaseOrder) []string { return []string{p.Supplier, p.Number} },
			Categories: []table.Category[domain.PurchaseOrder]{
				{Name: "status", Get: func(p domain.PurchaseOrder) string { return p.Status }},
			},
		},
		Fields: []table.Field[domain.PurchaseOrder]{
			table.Ordered("number", func(p domain.PurchaseOrder) string { return p.Number }),
			table.Ordered("supplier", func(p domain.PurchaseOrder) string { return p.Supplier }),
			table.Time("ordered", func(p domain.PurchaseOrder) time.Time { return p.OrderedAt }),
			table.Time("expected", func(p domain.PurchaseOrder) time.Time { return p.ExpectedAt }),
			table.Decimal("total", func(p domain.PurchaseOrder) decimal.Decimal { return p.Total }),
			table.Ordered("status", func(p domain.PurchaseOrder) string { return p.Status }),
		},
	},
	Columns: []ColumnDef[domain.PurchaseOrder]{
		{Title: "PO", Width: 7, Field: "number", Cell: func(p domain.PurchaseOrder) string { return p.Number }},
		{Title: "Supplier", Width: 15, Field: "supplier", Cell: func(p domain.PurchaseOrder) string { return p.Supplier }},
		{Title: "Ordered", Width: 10, Field: "ordered", Cell: func(p domain.PurchaseOrder) string { return date(p.OrderedAt) }},
		{Title: "Expected", Width: 10, Field: "expected", Cell: func(p domain.PurchaseOrder) string { return date(p.ExpectedAt) }},
		{Title: "Total", Width: 11, Field: "total", Cell: func(p domain.PurchaseOrder) string { return money(p.Total) }},
		{Title: "Status", Width: 9, Field: "status", Cell: func(p domain.PurchaseOrder) string { return p.Status }},
	},
	DefaultSort:  "ordered",
	DefaultOrder: table.Desc,
	Fetch:        generated((*mock.Provider).PurchaseOrders),
})

var categoryList = Define(Definition[domain.Category]{
	Title:      "Categories",
	Slug:       "categories",
	SearchHint: "Search name...",
	Schema: table.Schema[domain.Category]{
		ID: func(c domain.Category) string { return c.ID },
		Matcher: table.Matcher[domain.Category]{
			Text: func(c domain.Category) []string { return []string{c.Name} },
			Categories: []table.Category[domain.Category]{
				{Name: "status", Get: func(c domain.Category) string { return c.Status }},
			},
		},
		Fields: []table.Field[domain.Category]{
			table.Ordered("name", func(c domain.Category) string { return c.Name }),
			table.Ordered("products", func(c domain.Category) int { return c.Products }),
			table.Time("created", func(c domain.Category) time.Time { return c.CreatedAt }),
		},
	},
	Columns: []ColumnDef[domain.Category]{
		{Title: "Name", Width: 12, Field: "name", Cell: func(c domain.Category) string { return c.Name }},
		{Title: "Description", Width: 26, Cell: func(c domain.Category) string { return c.Description }},
		{Title: "Products", Width: 8, Field: "products", Cell: func(c domain.Category) string { return strconv.Itoa(c.Products) }},
		{Title: "Created", Width: 10, Field: "created", Cell: func(c domain.Category) string { return date(c.CreatedAt) }},
		{Title: "Status", Width: 7, Cell: func(c domain.Category) string { return c.Status }},
	},
	DefaultSort:  "name",
	DefaultOrder: table.Asc,
	Form: &FormDef[domain.Category]{
		New: func(id string) domain.Category {
			return domain.Category{ID: id, Status: "active", CreatedAt: time.Now().UTC()}
		},
		Fields: []FieldDef[domain.Category]{
			{Key: "name", Label: "Name", Required: true,
				Get: func(c domain.Category) string { return c.Name },
				Set: text(func(c *domain.Category, s string) { c.Name = s })},
			{Key: "description", Label: "Description",
				Get: func(c domain.Category) string { return c.Description },
				Set: text(func(c *domain.Category, s string) { c.Description = s })},
			{Key: "status", Label: "Status", Hint: "active, hidden",
				Get: func(c domain.Category) string { return c.Status },
				Set: choice(func(c *domain.Category, s string) { c.Status = s }, "active", "hidden")},
		},
	},
	Fetch: generated((*mock.Provider).Categories),
})

var productList = Define(Definition[domain.Product]{
	Title:      "Products",
	Slug:       "products",
	SearchHint: "Search name or SKU...",
	Schema: table.Schema[domain.Product]{
		ID: func(p domain.Product) string { return p.ID },
		Matcher: table.Matcher[domain.Product]{
			Text: func(p domain.Product) []string { return []string{p.Name, p.SKU} },
			Categories: []table.Category[domain.Product]{
				{Name: "category", Get: func(p domain.Product) string { return p.Category }},
				{Name: "publish", Get: domain.Product.PublishState},
			},
		},
		Fields: []table.Field[domain.Product]{
			table.Ordered("name", func(p domain.Product) string { return p.Name }),
			table.Ordered("category", func(p domain.Product) string { return p.Category }),
			table.Decimal("price", func(p domain.Product) decimal.Decimal { return p.Price }),
			table.Ordered("stock", func(p domain.Product) int { return p.Stock }),
			table.Bool("published", func(p domain.Product) bool { return p.Published }),
			table.Time("created", func(p domain.Product) time.Time { return p.CreatedAt }),
		},
	},
	Columns: []ColumnDef[domain.Product]{
		{Title: "Product", Width: 14, Field: "name", Cell: func(p domain.Product) string { return p.Name }},
		{Title: "SKU", Width: 9, Cell: func(p domain.Product) string { return p.SKU }},
		{Title: "Category", Width: 11, Field: "category", Cell: func(p domain.Product) string { return p.Category }},
		{Title: "Price", Width: 10, Field: "price", Cell: func(p domain.Product) string { return money(p.Price) }},
		{Title: "Stock", Width: 5, Field: "stock", Cell: func(p domain.Product) string { return strconv.Itoa(p.Stock) }},
		{Title: "Publish", Width: 9, Field: "published", Cell: domain.Product.PublishState},
		{Title: "Created", Width: 10, Field: "created", Cell: func(p domain.Product) string { return date(p.CreatedAt) }},
	},
	DefaultSort:  "created",
	DefaultOrder: table.Desc,
	Form: &FormDef[domain.Product]{
		New: func(id string) domain.Product {
			return domain.Product{ID: id, SKU: "PRD-" + id[:5], CreatedAt: time.Now().UTC()}
		},
		Fields: []FieldDef[domain.Product]{
			{Key: "name", Label: "Name", Required: true,
				Get: func(p domain.Product) string { return p.Name },
				Set: text(func(p *domain.Product, s string) { p.Name = s })},
			{Key: "category", Label: "Category", Required: true,
				Get: func(p domain.Product) string { return p.Category },
				Set: text(func(p *domain.Product, s string) { p.Category = s })},
			{Key: "price", Label: "Price", Required: true,
				Get: func(p domain.Product) string { return p.Price.StringFixed(2) },
				Set: moneyField(func(p *domain.Product, d decimal.Decimal) { p.Price = d })},
			{Key: "stock", Label: "Stock", Required: true,
				Get: func(p domain.Product) string { return strconv.Itoa(p.Stock) },
				Set: intField(func(p *domain.Product, n int) { p.Stock = n })},
			{Key: "published", Label: "Published", Hint: "yes or no",
				Get: func(p domain.Product) string { return yesNo(p.Published) },
				Set: boolField(func(p *domain.Product, b bool) { p.Published = b })},
		},
	},
	Fetch: generated((*mock.Provider).Products),
})

var foodList = Define(Definition[domain.Food]{
	Title:      "Foods",
	Slug:       "foods",
	SearchHint: "Search dish...",
	Schema: table.Schema[domain.Food]{
		ID: func(f domain.Food) string { return f.ID },
		Matcher: table.Matcher[domain.Food]{
			Text: func(f domain.Food) []string { return []string{f.Name} },
			Categories: []table.Category[domain.Food]{
				{Name: "category", Get: func(f domain.Food) string { return f.Category }},
				{Name: "available", Get: domain.Food.Availability},
			},
		},
		Fields: []table.Field[domain.Food]{
			table.Ordered("name", func(f domain.Food) string { return f.Name }),
			table.Ordered("category", func(f domain.Food) string { return f.Category }),
			table.Decimal("price", func(f domain.Food) decimal.Decimal { return f.Price }),
			table.Ordered("calories", func(f domain.Food) int { return f.Calories }),
		},
	},
	Columns: []ColumnDef[domain.Food]{
		{Title: "Dish", Width: 14, Field: "name", Cell: func(f domain.Food) string { return f.Name }},
		{Title: "Category", Width: 8, Field: "category", Cell: func(f domain.Food) string { return f.Category }},
		{Title: "Price", Width: 7, Field: "price", Cell: func(f domain.Food) string { return money(f.Price) }},
		{Title: "Kcal", Width: 5, Field: "calories", Cell: func(f domain.Food) string { return strconv.Itoa(f.Calories) }},
		{Title: "Available", Width: 9, Cell: domain.Food.Availability},
	},
	DefaultSort:  "name",
	DefaultOrder: table.Asc,
	// The menu comes from a slow service
	Fetch: func(ctx context.Context, src Source) ([]domain.Food, error) {
		if src.Provider == nil {
			return nil, errNoProvider
		}
		return src.Provider.FetchFoods(ctx, src.Count, src.FoodLatency)
	},
})

func stars(n int) string {
	out := ""
	for i := 0; i < 5; i++ {
		if i < n {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}
