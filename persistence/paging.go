package persistence

// PagingParams selects a window of a filtered collection.
// Nil Skip means no skip, nil Take means the configured max page size.
type PagingParams struct {
	Skip  *int64 `json:"skip,omitempty"`
	Take  *int64 `json:"take,omitempty"`
	Total bool   `json:"total"`
}

func NewPagingParams(skip, take int64, total bool) *PagingParams {
	return &PagingParams{
		Skip:  &skip,
		Take:  &take,
		Total: total,
	}
}

// GetSkip returns the skip value or minSkip when unset or lower.
func (p *PagingParams) GetSkip(minSkip int64) int64 {
	if p == nil || p.Skip == nil {
		return minSkip
	}
	if *p.Skip < minSkip {
		return minSkip
	}
	return *p.Skip
}

// GetTake returns the take value bounded by maxTake.
func (p *PagingParams) GetTake(maxTake int64) int64 {
	if p == nil || p.Take == nil {
		return maxTake
	}
	if *p.Take < 0 {
		return 0
	}
	if *p.Take > maxTake {
		return maxTake
	}
	return *p.Take
}

func (p *PagingParams) HasTotal() bool {
	return p != nil && p.Total
}

// DataPage is a bounded result. Total is only set when it was requested.
type DataPage[T any] struct {
	Data  []T    `json:"data"`
	Total *int64 `json:"total,omitempty"`
}

// MapPage projects every record of a page keeping its total.
func MapPage[T, S any](page *DataPage[T], selector func(T) S) *DataPage[S] {
	return &DataPage[S]{
		Data:  MapList(page.Data, selector),
		Total: page.Total,
	}
}

func MapList[T, S any](items []T, selector func(T) S) []S {
	result := make([]S, 0, len(items))
	for _, item := range items {
		result = append(result, selector(item))
	}
	return result
}
