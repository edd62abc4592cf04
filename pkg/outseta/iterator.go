package outseta

import (
	"context"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// PageFetcher fetches one page of T for a page request. Endpoint clients'
// list methods have this shape once bound to their arguments.
type PageFetcher[T any] func(ctx context.Context, req *PageRequest) (*ItemPage[T], error)

// IteratorOptions tunes multi-page traversal.
type IteratorOptions struct {
	// PageSize is used when the starting request carries no page size.
	PageSize int
	// MaxPages caps the number of pages fetched. Zero means DefaultMaxPages.
	MaxPages int
}

func (o *IteratorOptions) maxPages() int {
	if o == nil || o.MaxPages <= 0 {
		return constants.DefaultMaxPages
	}

	return o.MaxPages
}

// startRequest applies the option page size to req when req has none.
func startRequest(req *PageRequest, opts *IteratorOptions) (*PageRequest, error) {
	builder := req.ToBuilder()

	if _, ok := req.PageSize(); !ok && opts != nil && opts.PageSize > 0 {
		builder.WithPageSize(opts.PageSize)
	}

	if _, ok := req.PageNum(); !ok {
		builder.WithPageNum(0)
	}

	return builder.Build()
}

// PageIterator walks the items of a paged list one at a time, fetching
// pages on demand.
type PageIterator[T any] struct {
	ctx      context.Context
	fetch    PageFetcher[T]
	next     *PageRequest
	opts     *IteratorOptions
	buffer   []T
	position int
	metadata Metadata
	seen     int
	pages    int
	done     bool
	err      error
}

// NewPageIterator creates an iterator that starts at req. A nil req starts
// at the first page with the server's default page size.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T], req *PageRequest, opts *IteratorOptions) *PageIterator[T] {
	iterator := &PageIterator[T]{ctx: ctx, fetch: fetch, opts: opts}

	iterator.next, iterator.err = startRequest(req, opts)

	return iterator
}

// HasNext reports whether Next will return an item or an error.
func (it *PageIterator[T]) HasNext() bool {
	for it.position >= len(it.buffer) {
		if it.err != nil {
			return true
		}

		if it.done {
			return false
		}

		it.fetchPage()
	}

	return true
}

// Next returns the next item. Items already fetched are served before a
// pending error.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, constants.ErrNoMoreItems
	}

	if it.position >= len(it.buffer) && it.err != nil {
		err := it.err
		it.err = nil
		it.done = true
		it.buffer = nil

		return zero, err
	}

	item := it.buffer[it.position]
	it.position++

	return item, nil
}

// Page returns the metadata of the most recently fetched page.
func (it *PageIterator[T]) Page() Metadata {
	return it.metadata
}

// All drains the iterator.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	err := it.ForEach(func(item T) error {
		items = append(items, item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PageIterator[T]) fetchPage() {
	if it.pages >= it.opts.maxPages() {
		it.done = true

		return
	}

	if err := it.ctx.Err(); err != nil {
		it.err = &Error{Kind: KindConnectivity, Op: "fetch page", Err: err}

		return
	}

	page, err := it.fetch(it.ctx, it.next)
	if err != nil {
		it.err = err

		return
	}

	it.pages++
	it.metadata = page.Metadata
	it.buffer = page.Items
	it.position = 0
	it.seen += len(page.Items)

	if isLastPage(page, it.next, it.seen) {
		it.done = true

		return
	}

	it.next, it.err = it.next.NextPageRequest()
}

// isLastPage decides whether a list is exhausted after page: it is when the
// page is empty, when the metadata total has been reached, or, for lists
// without a total, when the page came back short.
func isLastPage[T any](page *ItemPage[T], req *PageRequest, seen int) bool {
	if page.IsEmpty() {
		return true
	}

	if page.Metadata.Total > 0 {
		return seen >= page.Metadata.Total
	}

	limit := page.Metadata.Limit
	if size, ok := req.PageSize(); ok {
		limit = size
	}

	return limit <= 0 || page.Len() < limit
}

// FetchAllPages collects every item of a paged list.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], req *PageRequest, opts *IteratorOptions) ([]T, error) {
	items, err := NewPageIterator(ctx, fetch, req, opts).All()
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}
