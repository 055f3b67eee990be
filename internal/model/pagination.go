package model

import (
	"github.com/guregu/null/v6"
)

// PaginationParams represents the pagination parameters
type PaginationParams struct {
	Page  null.Int32 `validate:"omitnil,gt=0"`
	Limit int32      `validate:"omitempty,gt=0,lte=1000"`
}

func (p *PaginationParams) Offset() int32 {
	if p.Limit <= 0 {
		p.Limit = 10 // default limit
	}

	if !p.Page.Valid {
		return 0
	}
	if p.Page.Int32 <= 0 {
		p.Page.SetValid(1)
	}

	offset := (p.Page.Int32 - 1) * p.Limit
	if offset < 0 {
		return 0
	}
	return offset
}

func (p *PaginationParams) GetPage() int32 {
	if p.Page.Int32 <= 0 {
		p.Page.SetValid(1)
	}
	return p.Page.Int32
}

func (p *PaginationParams) GetLimit() int32 {
	if p.Limit <= 0 {
		p.Limit = 10 // default limit
	}
	return p.Limit
}

// PaginateResult represents a paginated result set
type PaginateResult[T any] struct {
	PageParams PaginationParams
	Data       []T
	Total      null.Int64
}

func (p PaginateResult[T]) NextPage() null.Int32 {
	if p.Total.Valid {
		if int64(p.PageParams.GetPage())*int64(p.PageParams.GetLimit()) < p.Total.Int64 {
			return null.Int32From(p.PageParams.Page.Int32 + 1)
		}
	}
	return null.Int32{}
}

// Paginate slices an in-memory result set. Listings come back from the API
// in one piece, so paging happens on the caller's side.
func Paginate[T any](items []T, params PaginationParams) PaginateResult[T] {
	offset := int(params.Offset())
	limit := int(params.GetLimit())
	params.Page = null.Int32From(params.GetPage())

	start := min(offset, len(items))
	end := min(start+limit, len(items))

	return PaginateResult[T]{
		PageParams: params,
		Data:       items[start:end],
		Total:      null.IntFrom(int64(len(items))),
	}
}
