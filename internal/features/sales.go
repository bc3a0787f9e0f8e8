package features

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain"
	"backoffice/internal/mock"
	"backoffice/internal/table"
)

var errNoProvider = errors.New("no data provider")

// generated adapts a synchronous generator to a Fetch func
func generated[R any](gen func(p *mock.Provider, n int) []R) func(context.Context, Source) ([]R, error) {
	return func(ctx context.Context, src Source) ([]R, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if src.Provider == nil {
			return nil, errNoProvider
		}
		return gen(src.Provider, src.Count), nil
	}
}

var orders = Define(Definition[domain.Order]{
	Title:      "Orders",
	Slug:       "orders",
	SearchHint: "Search customer or order number...",
	Schema: table.Schema[domain.Order]{
		ID: func(o domain.Order) string { return o.ID },
		Matcher: table.Matcher[domain.Order]{
			Text: func(o domain.Order) []string { return []string{o.Customer, o.Number} },
			Categories: []table.Category[domain.Order]{
				{Name: "status", Get: func(o domain.Order) string { return o.Status }},
			},
		},
		Fields: []table.Field[domain.Order]{
			table.Ordered("number", func(o domain.Order) string { return o.Number }),
			table.Ordered("customer", func(o domain.Order) string { return o.Customer }),
			table.Ordered("items", func(o domain.Order) int { return o.Items }),
			table.Decimal("total", func(o domain.Order) decimal.Decimal { return o.Total }),
			table.Ordered("status", func(o domain.Order) string { return o.Status }),
			table.Time("created", func(o domain.Order) time.Time { return o.CreatedAt }),
		},
	},
	Columns: []ColumnDef[domain.Order]{
		{Title: "Order", Width: 8, Field: "number", Cell: func(o domain.Order) string { return o.Number }},
		{Title: "Customer", Width: 20, Field: "customer", Cell: func(o domain.Order) string { return o.Customer }},
		{Title: "Date", Width: 16, Field: "created", Cell: func(o domain.Order) string { return dateTime(o.CreatedAt) }},
		{Title: "Items", Width: 6, Field: "items", Cell: func(o domain.Order) string { return strconv.Itoa(o.Items) }},
		{Title: "Total", Width: 11, Field: "total", Cell: func(o domain.Order) string { return money(o.Total) }},
		{Title: "Status", Width: 10, Field: "status", Cell: func(o domain.Order) string { return o.Status }},
	},
	DefaultSort:  "created",
	DefaultOrder: table.Desc,
	Detail: func(o domain.Order) []Detail {
		return []Detail{
			{"Order", o.Number},
			{"Customer", o.Customer},
			{"Email", o.Email},
			{"Created", dateTime(o.CreatedAt)},
			{"Items", strconv.Itoa(o.Items)},
			{"Total", money(o.Total)},
			{"Status", o.Status},
		}
	},
	Form: &FormDef[domain.Order]{
		New: func(id string) domain.Order {
			return domain.Order{ID: id, Status: "pending", Number: "#" + id[:4], CreatedAt: time.Now().UTC()}
		},
		Fields: []FieldDef[domain.Order]{
			{Key: "customer", Label: "Customer", Required: true,
				Get: func(o domain.Order) string { return o.Customer },
				Set: text(func(o *domain.Order, s string) { o.Customer = s })},
			{Key: "email", Label: "Email", Required: true,
				Get: func(o domain.Order) string { return o.Email },
				Set: text(func(o *domain.Order, s string) { o.Email = s })},
			{Key: "items", Label: "Items", Required: true,
				Get: func(o domain.Order) string { return strconv.Itoa(o.Items) },
				Set: intField(func(o *domain.Order, n int) { o.Items = n })},
			{Key: "total", Label: "Total", Required: true, Hint: "e.g. 129.90",
				Get: func(o domain.Order) string { return o.Total.StringFixed(2) },
				Set: moneyField(func(o *domain.Order, d decimal.Decimal) { o.Total = d })},
			{Key: "status", Label: "Status", Hint: "pending, completed, cancelled, refunded",
				Get: func(o domain.Order) string { return o.Status },
				Set: choice(func(o *domain.Order, s string) { o.Status = s }, "pending", "completed", "cancelled", "refunded")},
		},
	},
	Fetch: generated((*mock.Provider).Orders),
})

var invoices = Define(Definition[domain.Invoice]{
	Title:      "Invoices",
	Slug:       "invoices",
	SearchHint: "Search customer or invoice number...",
	Schema: table.Schema[domain.Invoice]{
		ID: func(i domain.Invoice) string { return i.ID },
		Matcher: table.Matcher[domain.Invoice]{
			Text: func(i domain.Invoice) []string { return []string{i.Customer, i.Number} },
			Categories: []table.Category[domain.Invoice]{
				{Name: "status", Get: func(i domain.Invoice) string { return i.Status }},
			},
		},
		Fields: []table.Field[domain.Invoice]{
			table.Ordered("number", func(i domain.Invoice) string { return i.Number }),
			table.Ordered("customer", func(i domain.Invoice) string { return i.Customer }),
			table.Time("issued", func(i domain.Invoice) time.Time { return i.IssuedAt }),
			table.Time("due", func(i domain.Invoice) time.Time { return i.DueAt }),
			table.Decimal("amount", func(i domain.Invoice) decimal.Decimal { return i.Amount }),
			table.Ordered("status", func(i domain.Invoice) string { return i.Status }),
		},
	},
	Columns: []ColumnDef[domain.Invoice]{
		{Title: "Invoice", Width: 10, Field: "number", Cell: func(i domain.Invoice) string { return i.Number }},
		{Title: "Customer", Width: 20, Field: "customer", Cell: func(i domain.Invoice) string { return i.Customer }},
		{Title: "Issued", Width: 10, Field: "issued", Cell: func(i domain.Invoice) string { return date(i.IssuedAt) }},
		{Title: "Due", Width: 10, Field: "due", Cell: func(i domain.Invoice) string { return date(i.DueAt) }},
		{Title: "Amount", Width: 11, Field: "amount", Cell: func(i domain.Invoice) string { return money(i.Amount) }},
		{Title: "Status", Width: 8, Field: "status", Cell: func(i domain.Invoice) string { return i.Status }},
	},
	DefaultSort:  "due",
	DefaultOrder: table.Desc,
	Fetch:        generated((*mock.Provider).Invoices),
})

var customers = Define(Definition[domain.Customer]{
	Title:      "Customers",
	Slug:       "customers",
	SearchHint: "Search name or email...",
	Schema: table.Schema[domain.Customer]{
		ID: func(c domain.Customer) string { return c.ID },
		Matcher: table.Matcher[domain.Customer]{
			Text: func(c domain.Customer) []string { return []string{c.Name, c.Email} },
			Categories: []table.Category[domain.Customer]{
				{Name: "status", Get: func(c domain.Customer) string { return c.Status }},
				{Name: "country", Get: func(c domain.Customer) string { return c.Country }},
			},
		},
		Fields: []table.Field[domain.Customer]{
			table.Ordered("name", func(c domain.Customer) string { return c.Name }),
			table.Ordered("email", func(c domain.Customer) string { return c.Email }),
			table.Ordered("country", func(c domain.Customer) string { return c.Country }),
			table.Ordered("orders", func(c domain.Customer) int { return c.Orders }),
			table.Decimal("spent", func(c domain.Customer) decimal.Decimal { return c.Spent }),
			table.Ordered("status", func(c domain.Customer) string { return c.Status }),
		},
	},
	Columns: []ColumnDef[domain.Customer]{
		{Title: "Name", Width: 18, Field: "name", Cell: func(c domain.Customer) string { return c.Name }},
		{Title: "Email", Width: 26, Field: "email", Cell: func(c domain.Customer) string { return c.Email }},
		{Title: "Country", Width: 7, Field: "country", Cell: func(c domain.Customer) string { return c.Country }},
		{Title: "Orders", Width: 6, Field: "orders", Cell: func(c domain.Customer) string { return strconv.Itoa(c.Orders) }},
		{Title: "Spent", Width: 11, Field: "spent", Cell: func(c domain.Customer) string { return money(c.Spent) }},
		{Title: "Status", Width: 8, Field: "status", Cell: func(c domain.Customer) string { return c.Status }},
	},
	DefaultSort:  "name",
	DefaultOrder: table.Asc,
	Detail: func(c domain.Customer) []Detail {
		return []Detail{
			{"Name", c.Name},
			{"Email", c.Email},
			{"Phone", c.Phone},
			{"Country", c.Country},
			{"Status", c.Status},
			{"Orders", strconv.Itoa(c.Orders)},
			{"Spent", money(c.Spent)},
			{"Joined", date(c.JoinedAt)},
		}
	},
	Form: &FormDef[domain.Customer]{
		New: func(id string) domain.Customer {
			return domain.Customer{ID: id, Status: "active", JoinedAt: time.Now().UTC()}
		},
		Fields: []FieldDef[domain.Customer]{
			{Key: "name", Label: "Name", Required: true,
				Get: func(c domain.Customer) string { return c.Name },
				Set: text(func(c *domain.Customer, s string) { c.Name = s })},
			{Key: "email", Label: "Email", Required: true,
				Get: func(c domain.Customer) string { return c.Email },
				Set: text(func(c *domain.Customer, s string) { c.Email = s })},
			{Key: "phone", Label: "Phone",
				Get: func(c domain.Customer) string { return c.Phone },
				Set: text(func(c *domain.Customer, s string) { c.Phone = s })},
			{Key: "country", Label: "Country", Required: true, Hint: "two letter code",
				Get: func(c domain.Customer) string { return c.Country },
				Set: text(func(c *domain.Customer, s string) { c.Country = s })},
			{Key: "status", Label: "Status", Hint: "active, inactive, banned",
				Get: func(c domain.Customer) string { return c.Status },
				Set: choice(func(c *domain.Customer, s string) { c.Status = s }, "active", "inactive", "banned")},
		},
	},
	Fetch: generated((*mock.Provider).Customers),
})

var salesReports = Define(Definition[domain.SalesReport]{
	Title:      "Sales reports",
	Slug:       "sales-reports",
	SearchHint: "Search region or channel...",
	Schema: table.Schema[domain.SalesReport]{
		ID: func(r domain.SalesReport) string { return r.ID },
		Matcher: table.Matcher[domain.SalesReport]{
			Text: func(r domain.SalesReport) []string { return []string{r.Region, r.Channel} },
			Categories: []table.Category[domain.SalesReport]{
				{Name: "quarter", Get: func(r domain.SalesReport) string { return r.Quarter }},
				{Name: "region", Get: func(r domain.SalesReport) string { return r.Region }},
			},
		},
		Fields: []table.Field[domain.SalesReport]{
			table.Ordered("region", func(r domain.SalesReport) string { return r.Region }),
			table.Ordered("channel", func(r domain.SalesReport) string { return r.Channel }),
			table.Ordered("quarter", func(r domain.SalesReport) string { return r.Quarter }),
			table.Ordered("units", func(r domain.SalesReport) int { return r.Units }),
			table.Decimal("revenue", func(r domain.SalesReport) decimal.Decimal { return r.Revenue }),
			table.Ordered("growth", func(r domain.SalesReport) float64 { return r.Growth }),
		},
	},
	Columns: []ColumnDef[domain.SalesReport]{
		{Title: "Quarter", Width: 8, Field: "quarter", Cell: func(r domain.SalesReport) string { return r.Quarter }},
		{Title: "Region", Width: 7, Field: "region", Cell: func(r domain.SalesReport) string { return r.Region }},
		{Title: "Channel", Width: 10, Field: "channel", Cell: func(r domain.SalesReport) string { return r.Channel }},
		{Title: "Units", Width: 6, Field: "units", Cell: func(r domain.SalesReport) string { return strconv.Itoa(r.Units) }},
		{Title: "Revenue", Width: 12, Field: "revenue", Cell: func(r domain.SalesReport) string { return money(r.Revenue) }},
		{Title: "Growth", Width: 7, Field: "growth", Cell: func(r domain.SalesReport) string { return fmt.Sprintf("%+.1f%%", r.Growth) }},
	},
	DefaultSort:  "revenue",
	DefaultOrder: table.Desc,
	Fetch:        generated((*mock.Provider).SalesReports),
})
