package query

type Pagination struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Page is the listing envelope returned to clients as-is.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewPage[T any](items []T, p Params, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Data: items,
		Pagination: Pagination{
			Page:          p.Page,
			Size:          p.Size,
			TotalElements: total,
			TotalPages:    TotalPages(total, p.Size),
		},
	}
}

// TotalPages is ceil(total/size).
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
