package features

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain"
	"backoffice/internal/mock"
	"backoffice/internal/table"
)

var employees = Define(Definition[domain.Employee]{
	Title:      "Employees",
	Slug:       "employees",
	SearchHint: "Search name or email...",
	Schema: table.Schema[domain.Employee]{
		ID: func(e domain.Employee) string { return e.ID },
		Matcher: table.Matcher[domain.Employee]{
			Text: func(e domain.Employee) []string { return []string{e.Name, e.Email} },
			Categories: []table.Category[domain.Employee]{
				{Name: "department", Get: func(e domain.Employee) string { return e.Department }},
				{Name: "status", Get: func(e domain.Employee) string { return e.Status }},
			},
		},
		Fields: []table.Field[domain.Employee]{
			table.Ordered("name", func(e domain.Employee) string { return e.Name }),
			table.Ordered("department", func(e domain.Employee) string { return e.Department }),
			table.Ordered("role", func(e domain.Employee) string { return e.Role }),
			table.Decimal("salary", func(e domain.Employee) decimal.Decimal { return e.Salary }),
			table.Time("hired", func(e domain.Employee) time.Time { return e.HiredAt }),
			table.Ordered("status", func(e domain.Employee) string { return e.Status }),
		},
	},
	Columns: []ColumnDef[domain.Employee]{
		{Title: "Name", Width: 18, Field: "name", Cell: func(e domain.Employee) string { return e.Name }},
		{Title: "Department", Width: 12, Field: "department", Cell: func(e domain.Employee) string { return e.Department }},
		{Title: "Role", Width: 10, Field: "role", Cell: func(e domain.Employee) string { return e.Role }},
		{Title: "Salary", Width: 12, Field: "salary", Cell: func(e domain.Employee) string { return money(e.Salary) }},
		{Title: "Hired", Width: 10, Field: "hired", Cell: func(e domain.Employee) string { return date(e.HiredAt) }},
		{Title: "Status", Width: 10, Field: "status", Cell: func(e domain.Employee) string { return e.Status }},
	},
	DefaultSort:  "name",
	DefaultOrder: table.Asc,
	Detail: func(e domain.Employee) []Detail {
		return []Detail{
			{"Name", e.Name},
			{"Email", e.Email},
			{"Phone", e.Phone},
			{"Department", e.Department},
			{"Role", e.Role},
			{"Status", e.Status},
			{"Salary", money(e.Salary)},
			{"Hired", date(e.HiredAt)},
		}
	},
	Form: &FormDef[domain.Employee]{
		New: func(id string) domain.Employee {
			return domain.Employee{ID: id, Status: "active", HiredAt: time.Now().UTC().Truncate(24 * time.Hour)}
		},
		Fields: []FieldDef[domain.Employee]{
			{Key: "name", Label: "Name", Required: true,
				Get: func(e domain.Employee) string { return e.Name },
				Set: text(func(e *domain.Employee, s string) { e.Name = s })},
			{Key: "email", Label: "Email", Required: true,
				Get: func(e domain.Employee) string { return e.Email },
				Set: text(func(e *domain.Employee, s string) { e.Email = s })},
			{Key: "department", Label: "Department", Required: true,
				Get: func(e domain.Employee) string { return e.Department },
				Set: text(func(e *domain.Employee, s string) { e.Department = s })},
			{Key: "role", Label: "Role",
				Get: func(e domain.Employee) string { return e.Role },
				Set: text(func(e *domain.Employee, s string) { e.Role = s })},
			{Key: "salary", Label: "Salary", Required: true,
				Get: func(e domain.Employee) string { return e.Salary.StringFixed(2) },
				Set: moneyField(func(e *domain.Employee, d decimal.Decimal) { e.Salary = d })},
			{Key: "hired", Label: "Hired", Hint: "YYYY-MM-DD",
				Get: func(e domain.Employee) string { return date(e.HiredAt) },
				Set: dateField(func(e *domain.Employee, t time.Time) { e.HiredAt = t })},
			{Key: "status", Label: "Status", Hint: "active, on leave, terminated",
				Get: func(e domain.Employee) string { return e.Status },
				Set: choice(func(e *domain.Employee, s string) { e.Status = s }, "active", "on leave", "terminated")},
		},
	},
	Fetch: generated((*mock.Provider).Employees),
})

var attendance = Define(Definition[domain.Attendance]{
	Title:      "Attendance",
	Slug:       "attendance",
	SearchHint: "Search employee...",
	Schema: table.Schema[domain.Attendance]{
		ID: func(a domain.Attendance) string { return a.ID },
		Matcher: table.Matcher[domain.Attendance]{
			Text: func(a domain.Attendance) []string { return []string{a.Employee} },
			Categories: []table.Category[domain.Attendance]{
				{Name: "date", Get: domain.Attendance.Day},
				{Name: "status", Get: func(a domain.Attendance) string { return a.Status }},
			},
		},
		Fields: []table.Field[domain.Attendance]{
			table.Ordered("employee", func(a domain.Attendance) string { return a.Employee }),
			table.Time("date", func(a domain.Attendance) time.Time { return a.Date }),
			table.Ordered("check_in", func(a domain.Attendance) string { return a.CheckIn }),
			table.Ordered("hours", func(a domain.Attendance) float64 { return a.Hours }),
			table.Ordered("status", func(a domain.Attendance) string { return a.Status }),
		},
	},
	Columns: []ColumnDef[domain.Attendance]{
		{Title: "Employee", Width: 18, Field: "employee", Cell: func(a domain.Attendance) string { return a.Employee }},
		{Title: "Date", Width: 10, Field: "date", Cell: func(a domain.Attendance) string { return a.Day() }},
		{Title: "In", Width: 5, Field: "check_in", Cell: func(a domain.Attendance) string { return dash(a.CheckIn) }},
		{Title: "Out", Width: 5, Cell: func(a domain.Attendance) string { return dash(a.CheckOut) }},
		{Title: "Hours", Width: 5, Field: "hours", Cell: func(a domain.Attendance) string { return fmt.Sprintf("%.1f", a.Hours) }},
		{Title: "Status", Width: 8, Field: "status", Cell: func(a domain.Attendance) string { return a.Status }},
	},
	DefaultSort:  "date",
	DefaultOrder: table.Desc,
	Fetch:        generated((*mock.Provider).Attendance),
})

var leaveRequests = Define(Definition[domain.LeaveRequest]{
	Title:      "Leave requests",
	Slug:       "leave-requests",
	SearchHint: "Search employee...",
	Schema: table.Schema[domain.LeaveRequest]{
		ID: func(l domain.LeaveRequest) string { return l.ID },
		Matcher: table.Matcher[domain.LeaveRequest]{
			Text: func(l domain.LeaveRequest) []string { return []string{l.Employee} },
			Categories: []table.Category[domain.LeaveRequest]{
				{Name: "leave_type", Get: func(l domain.LeaveRequest) string { return l.LeaveType }},
				{Name: "status", Get: func(l domain.LeaveRequest) string { return l.Status }},
			},
		},
		Fields: []table.Field[domain.LeaveRequest]{
			table.Ordered("employee", func(l domain.LeaveRequest) string { return l.Employee }),
			table.Ordered("leave_type", func(l domain.LeaveRequest) string { return l.LeaveType }),
			table.Time("start", func(l domain.LeaveRequest) time.Time { return l.Start }),
			table.Ordered("days", domain.LeaveRequest.Days),
			table.Ordered("status", func(l domain.LeaveRequest) string { return l.Status }),
		},
	},
	Columns: []ColumnDef[domain.LeaveRequest]{
		{Title: "Employee", Width: 18, Field: "employee", Cell: func(l domain.LeaveRequest) string { return l.Employee }},
		{Title: "Type", Width: 9, Field: "leave_type", Cell: func(l domain.LeaveRequest) string { return l.LeaveType }},
		{Title: "Start", Width: 10, Field: "start", Cell: func(l domain.LeaveRequest) string { return date(l.Start) }},
		{Title: "End", Width: 10, Cell: func(l domain.LeaveRequest) string { return date(l.End) }},
		{Title: "Days", Width: 4, Field: "days", Cell: func(l domain.LeaveRequest) string { return strconv.Itoa(l.Days()) }},
		{Title: "Status", Width: 9, Field: "status", Cell: func(l domain.LeaveRequest) string { return l.Status }},
	},
	DefaultSort:  "start",
	DefaultOrder: table.Desc,
	Detail: func(l domain.LeaveRequest) []Detail {
		return []Detail{
			{"Employee", l.Employee},
			{"Type", l.LeaveType},
			{"From", date(l.Start)},
			{"To", date(l.End)},
			{"Days", strconv.Itoa(l.Days())},
			{"Status", l.Status},
			{"Reason", l.Reason},
		}
	},
	Fetch: generated((*mock.Provider).LeaveRequests),
})

var performanceReviews = Define(Definition[domain.PerformanceReview]{
	Title:      "Performance reviews",
	Slug:       "performance-reviews",
	SearchHint: "Search employee or reviewer...",
	Schema: table.Schema[domain.PerformanceReview]{
		ID: func(r domain.PerformanceReview) string { return r.ID },
		Matcher: table.Matcher[domain.PerformanceReview]{
			Text: func(r domain.PerformanceReview) []string { return []string{r.Employee, r.Reviewer} },
			Categories: []table.Category[domain.PerformanceReview]{
				{Name: "rating", Get: func(r domain.PerformanceReview) string { return r.Rating }},
				{Name: "period", Get: func(r domain.PerformanceReview) string { return r.Period }},
			},
		},
		Fields: []table.Field[domain.PerformanceReview]{
			table.Ordered("employee", func(r domain.PerformanceReview) string { return r.Employee }),
			table.Ordered("reviewer", func(r domain.PerformanceReview) string { return r.Reviewer }),
			table.Ordered("period", func(r domain.PerformanceReview) string { return r.Period }),
			table.Ordered("score", func(r domain.PerformanceReview) int { return r.Score }),
		},
	},
	Columns: []ColumnDef[domain.PerformanceReview]{
		{Title: "Employee", Width: 18, Field: "employee", Cell: func(r domain.PerformanceReview) string { return r.Employee }},
		{Title: "Reviewer", Width: 12, Field: "reviewer", Cell: func(r domain.PerformanceReview) string { return r.Reviewer }},
		{Title: "Period", Width: 8, Field: "period", Cell: func(r domain.PerformanceReview) string { return r.Period }},
		{Title: "Score", Width: 5, Field: "score", Cell: func(r domain.PerformanceReview) string { return strconv.Itoa(r.Score) }},
		{Title: "Rating", Width: 8, Cell: func(r domain.PerformanceReview) string { return r.Rating }},
	},
	DefaultSort:  "period",
	DefaultOrder: table.Desc,
	Detail: func(r domain.PerformanceReview) []Detail {
		return []Detail{
			{"Employee", r.Employee},
			{"Reviewer", r.Reviewer},
			{"Period", r.Period},
			{"Score", strconv.Itoa(r.Score)},
			{"Rating", r.Rating},
			{"Comments", r.Comments},
		}
	},
	Fetch: generated((*mock.Provider).PerformanceReviews),
})

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
