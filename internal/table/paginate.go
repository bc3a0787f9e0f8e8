package table

// RowsPerPageOptions lists the page sizes a screen can switch between
var RowsPerPageOptions = []int{5, 10, 25}

// DefaultRowsPerPage is used when no valid size is configured
const DefaultRowsPerPage = 5

// ValidRowsPerPage reports whether n is a selectable page size
func ValidRowsPerPage(n int) bool {
	for _, opt := range RowsPerPageOptions {
		if opt == n {
			return true
		}
	}
	return false
}

// NextRowsPerPage cycles to the next page size option
func NextRowsPerPage(n int) int {
	for i, opt := range RowsPerPageOptions {
		if opt == n {
			return RowsPerPageOptions[(i+1)%len(RowsPerPageOptions)]
		}
	}
	return DefaultRowsPerPage
}

// Paginate returns the page window [page*rowsPerPage, page*rowsPerPage+rowsPerPage)
// clamped to the list bounds
func Paginate[R any](records []R, page, rowsPerPage int) []R {
	if rowsPerPage <= 0 || page < 0 {
		return nil
	}
	start := page * rowsPerPage
	if start >= len(records) {
		return []R{}
	}
	end := start + rowsPerPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// EmptyRows returns the number of blank rows that keep the last page at full
// height. Page 0 never gets padding.
func EmptyRows(page, rowsPerPage, total int) int {
	if page <= 0 {
		return 0
	}
	return max(0, (page+1)*rowsPerPage-total)
}

// PageCount returns the number of pages needed for total rows (at least 1)
func PageCount(total, rowsPerPage int) int {
	if rowsPerPage <= 0 || total <= 0 {
		return 1
	}
	return (total + rowsPerPage - 1) / rowsPerPage
}
