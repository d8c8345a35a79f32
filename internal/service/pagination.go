package service

// PageSize 提供方每页固定返回的条数
const PageSize = 10

// WindowSize 分页控件最多展示的页码数
const WindowSize = 5

// TotalPages 总页数
func TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + PageSize - 1) / PageSize
}

// PageWindow 以当前页为中心的连续页码，越界时整体平移；总页数不超过 1 时不展示
func PageWindow(currentPage, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	start := max(1, currentPage-WindowSize/2)
	end := min(totalPages, start+WindowSize-1)
	if end-start+1 < WindowSize {
		start = max(1, end-WindowSize+1)
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// HasPrevPage 是否有上一页
func HasPrevPage(currentPage int) bool {
	return currentPage > 1
}

// HasNextPage 是否有下一页
func HasNextPage(currentPage, totalPages int) bool {
	return currentPage < totalPages
}
