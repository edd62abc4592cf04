package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/internal/filter"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// listOptions are the paging and filtering flags shared by list commands.
type listOptions struct {
	page     int
	pageSize int
	all      bool
	maxPages int
	orderBy  string
	desc     bool
	where    string
}

func (o *listOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&o.pageSize, "page-size", constants.DefaultPageSize, "results per page")
	cmd.Flags().BoolVar(&o.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&o.maxPages, "max-pages", 0, "stop after this many pages with --all (0 for no limit)")
	cmd.Flags().StringVar(&o.orderBy, "order-by", "", "field to order by")
	cmd.Flags().BoolVar(&o.desc, "desc", false, "order descending")
	cmd.Flags().StringVar(&o.where, "where", "", "client-side filter expression, e.g. 'lower(Name) contains \"acme\"'")
}

// pageRequest builds the first request. configure adds resource filters.
func (o *listOptions) pageRequest(configure func(*outseta.PageRequestBuilder)) (*outseta.PageRequest, error) {
	builder := outseta.NewPageRequest().
		WithPageNum(o.page).
		WithPageSize(o.pageSize)

	if o.orderBy != "" {
		builder.WithOrderBy(o.orderBy)
	}

	if o.desc {
		builder.WithOrderDirection(outseta.OrderDesc)
	}

	if configure != nil {
		configure(builder)
	}

	return builder.Build()
}

// listResult is what list commands print in JSON and YAML.
type listResult[T any] struct {
	Metadata *outseta.Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Items    []T               `json:"items"              yaml:"items"`
}

// runList fetches one page, or every page with --all, applies --where and
// renders the items.
func runList[T any](
	cmd *cobra.Command,
	opts *listOptions,
	fetch outseta.PageFetcher[T],
	configure func(*outseta.PageRequestBuilder),
	fill func(table *Table, items []T),
) error {
	match, err := compileFilter(opts.where)
	if err != nil {
		return err
	}

	req, err := opts.pageRequest(configure)
	if err != nil {
		return err
	}

	result, err := fetchList(commandContext(cmd), opts, fetch, req)
	if err != nil {
		return err
	}

	result.Items, err = filter.Apply(match, result.Items)
	if err != nil {
		return err
	}

	return render(cmd, result, func(table *Table) {
		fill(table, result.Items)

		if result.Metadata != nil && result.Metadata.Total > 0 {
			table.Footer(fmt.Sprintf("Page %d: %d of %d", result.Metadata.Offset, len(result.Items), result.Metadata.Total))
		}
	})
}

func fetchList[T any](ctx context.Context, opts *listOptions, fetch outseta.PageFetcher[T], req *outseta.PageRequest) (*listResult[T], error) {
	if opts.all {
		items, err := outseta.FetchAllPages(ctx, fetch, req, &outseta.IteratorOptions{MaxPages: opts.maxPages})
		if err != nil {
			return nil, err
		}

		return &listResult[T]{Items: items}, nil
	}

	page, err := fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}

	return &listResult[T]{Metadata: &page.Metadata, Items: items}, nil
}

func compileFilter(expression string) (*filter.Filter, error) {
	if expression == "" {
		return nil, nil
	}

	return filter.Compile(expression)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
