package view

import "strconv"

// Gap is the ellipsis placeholder between non-adjacent page numbers in the
// pagination widget.
const Gap = "..."

// Pagination returns the page labels the listing widget displays for the
// current page out of totalPages. Seven or fewer pages are shown in full;
// otherwise the first and last pages stay visible with a gap around the
// current page's neighborhood.
func Pagination(current, totalPages int) []string {
	if totalPages <= 7 {
		pages := make([]string, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, strconv.Itoa(p))
		}
		return pages
	}

	if current <= 3 {
		return []string{"1", "2", "3", Gap, strconv.Itoa(totalPages - 1), strconv.Itoa(totalPages)}
	}

	if current >= totalPages-2 {
		return []string{"1", "2", Gap, strconv.Itoa(totalPages - 2), strconv.Itoa(totalPages - 1), strconv.Itoa(totalPages)}
	}

	return []string{
		"1",
		Gap,
		strconv.Itoa(current - 1),
		strconv.Itoa(current),
		strconv.Itoa(current + 1),
		Gap,
		strconv.Itoa(totalPages),
	}
}
