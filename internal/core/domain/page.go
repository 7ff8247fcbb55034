package domain

// TodoPage is one page of the filtered listing.
type TodoPage struct {
	Todos      []Todo
	Status     StatusFilter
	Page       int
	TotalPages int
	TotalCount int64
}

func (p *TodoPage) HasPrev() bool {
	return p.Page > 1
}

func (p *TodoPage) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p *TodoPage) PrevPage() int {
	return p.Page - 1
}

func (p *TodoPage) NextPage() int {
	return p.Page + 1
}
