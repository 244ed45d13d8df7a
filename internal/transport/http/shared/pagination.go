package shared

import (
	"net/http"
	"strconv"
)

type Page struct {
	Number  int
	Size    int
	Offset  int
	Total   int
	HasPrev bool
	HasNext bool
}

// ParsePage reads ?page= (1-based) and clamps it to the available rows.
func ParsePage(r *http.Request, size, total int) Page {
	if size <= 0 {
		size = 10
	}
	number := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			number = v
		}
	}
	last := (total + size - 1) / size
	if last < 1 {
		last = 1
	}
	if number > last {
		number = last
	}
	return Page{
		Number:  number,
		Size:    size,
		Offset:  (number - 1) * size,
		Total:   total,
		HasPrev: number > 1,
		HasNext: number < last,
	}
}

func (p Page) Bounds() (start, end int) {
	start = p.Offset
	end = start + p.Size
	if end > p.Total {
		end = p.Total
	}
	return start, end
}
