package table

// PageAfterDeleteRow returns the page to show after deleting one row.
// If the row was the only one on its page, step back one page (never below 0).
func PageAfterDeleteRow(page, totalRowsInPage int) int {
	if page > 0 && totalRowsInPage == 1 {
		return page - 1
	}
	return page
}

// PageAfterDeleteRows returns the page to show after deleting the selection.
// When the whole visible page was selected, jump to the last page that still
// exists after the delete; otherwise stay.
func PageAfterDeleteRows(page, rowsPerPage, totalRows, totalRowsInPage, totalSelected int) int {
	if totalRowsInPage != totalSelected || rowsPerPage <= 0 {
		return page
	}
	remaining := totalRows - totalSelected
	lastPage := (remaining+rowsPerPage-1)/rowsPerPage - 1
	return max(0, lastPage)
}

// ClampPage pulls page back onto the last page that holds rows
func ClampPage(page, rowsPerPage, total int) int {
	last := PageCount(total, rowsPerPage) - 1
	if page > last {
		return last
	}
	return max(0, page)
}
