package outseta

import (
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// MaxPageSize is the largest page size a PageRequest accepts.
const MaxPageSize = constants.MaxPageSize

// OrderDirection is the sort direction of a list request.
type OrderDirection int

const (
	// OrderAsc sorts ascending. It is the default.
	OrderAsc OrderDirection = iota
	// OrderDesc sorts descending.
	OrderDesc
)

// String implements fmt.Stringer.
func (d OrderDirection) String() string {
	if d == OrderDesc {
		return "DESC"
	}

	return "ASC"
}

// PageRequest describes which page of a list to fetch. It is immutable;
// create one with NewPageRequest and derive the next one with
// NextPageRequest.
type PageRequest struct {
	pageNum        *int
	pageSize       *int
	orderBy        string
	orderDirection OrderDirection
	filters        []Filter
	customParams   map[string]string
}

// PageRequestBuilder accumulates PageRequest fields. Build validates them.
type PageRequestBuilder struct {
	req PageRequest
}

// NewPageRequest starts a new page request with no fields set.
func NewPageRequest() *PageRequestBuilder {
	return &PageRequestBuilder{}
}

// ToBuilder returns a builder preloaded with r's fields.
func (r *PageRequest) ToBuilder() *PageRequestBuilder {
	if r == nil {
		return NewPageRequest()
	}

	return &PageRequestBuilder{req: r.clone()}
}

// WithPageNum sets the zero-based page number.
func (b *PageRequestBuilder) WithPageNum(pageNum int) *PageRequestBuilder {
	b.req.pageNum = &pageNum

	return b
}

// WithPageSize sets the number of items per page.
func (b *PageRequestBuilder) WithPageSize(pageSize int) *PageRequestBuilder {
	b.req.pageSize = &pageSize

	return b
}

// WithOrderBy sets the field to order by.
func (b *PageRequestBuilder) WithOrderBy(field string) *PageRequestBuilder {
	b.req.orderBy = field

	return b
}

// WithOrderDirection sets the order direction.
func (b *PageRequestBuilder) WithOrderDirection(direction OrderDirection) *PageRequestBuilder {
	b.req.orderDirection = direction

	return b
}

// WithFilter sets a typed filter, replacing any filter of the same name.
func (b *PageRequestBuilder) WithFilter(filter Filter) *PageRequestBuilder {
	if filter == nil {
		return b
	}

	for i, existing := range b.req.filters {
		if existing.FilterName() == filter.FilterName() {
			b.req.filters[i] = filter

			return b
		}
	}

	b.req.filters = append(b.req.filters, filter)

	return b
}

// WithAccountStage filters accounts by stage.
func (b *PageRequestBuilder) WithAccountStage(stage AccountStage) *PageRequestBuilder {
	return b.WithFilter(stage)
}

// WithActivityType filters activities by type.
func (b *PageRequestBuilder) WithActivityType(activityType ActivityType) *PageRequestBuilder {
	return b.WithFilter(activityType)
}

// WithEntityType filters activities by entity type.
func (b *PageRequestBuilder) WithEntityType(entityType EntityType) *PageRequestBuilder {
	return b.WithFilter(entityType)
}

// WithBillingTransactionType filters billing transactions by type.
func (b *PageRequestBuilder) WithBillingTransactionType(transactionType BillingTransactionType) *PageRequestBuilder {
	return b.WithFilter(transactionType)
}

// WithCustomParam adds a raw query parameter. Custom parameters override
// derived ones with the same name.
func (b *PageRequestBuilder) WithCustomParam(name, value string) *PageRequestBuilder {
	if b.req.customParams == nil {
		b.req.customParams = make(map[string]string)
	}

	b.req.customParams[name] = value

	return b
}

// Build validates the accumulated fields and returns the request.
func (b *PageRequestBuilder) Build() (*PageRequest, error) {
	req := b.req.clone()

	err := req.validate()
	if err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *PageRequest) validate() error {
	if r.pageNum != nil && *r.pageNum < 0 {
		return &Error{
			Kind:  KindPageBuild,
			Op:    "build page request",
			Field: "pageNum",
			Err:   fmt.Errorf("%w: %d", constants.ErrPageNumNegative, *r.pageNum),
		}
	}

	if r.pageSize != nil && (*r.pageSize <= 0 || *r.pageSize > MaxPageSize) {
		return &Error{
			Kind:  KindPageBuild,
			Op:    "build page request",
			Field: "pageSize",
			Err:   fmt.Errorf("%w: %d not in (0, %d]", constants.ErrPageSizeOutOfRange, *r.pageSize, MaxPageSize),
		}
	}

	if r.orderDirection == OrderDesc && r.orderBy == "" {
		return &Error{Kind: KindPageBuild, Op: "build page request", Field: "orderBy", Err: constants.ErrOrderByRequired}
	}

	for name := range r.customParams {
		if strings.TrimSpace(name) == "" {
			return &Error{Kind: KindPageBuild, Op: "build page request", Field: "customParams", Err: constants.ErrCustomParamNameBlank}
		}
	}

	return nil
}

func (r *PageRequest) clone() PageRequest {
	out := PageRequest{
		orderBy:        r.orderBy,
		orderDirection: r.orderDirection,
	}

	if r.pageNum != nil {
		pageNum := *r.pageNum
		out.pageNum = &pageNum
	}

	if r.pageSize != nil {
		pageSize := *r.pageSize
		out.pageSize = &pageSize
	}

	if len(r.filters) > 0 {
		out.filters = append([]Filter(nil), r.filters...)
	}

	if len(r.customParams) > 0 {
		out.customParams = maps.Clone(r.customParams)
	}

	return out
}

// NextPageRequest returns a copy of r for the following page.
func (r *PageRequest) NextPageRequest() (*PageRequest, error) {
	next := PageRequest{}
	if r != nil {
		next = r.clone()
	}

	pageNum := 0
	if next.pageNum != nil {
		pageNum = *next.pageNum
	}

	pageNum++
	next.pageNum = &pageNum

	err := next.validate()
	if err != nil {
		return nil, err
	}

	return &next, nil
}

// PageNum returns the page number and whether it is set.
func (r *PageRequest) PageNum() (int, bool) {
	if r == nil || r.pageNum == nil {
		return 0, false
	}

	return *r.pageNum, true
}

// PageSize returns the page size and whether it is set.
func (r *PageRequest) PageSize() (int, bool) {
	if r == nil || r.pageSize == nil {
		return 0, false
	}

	return *r.pageSize, true
}

// OrderBy returns the ordering field, empty when unset.
func (r *PageRequest) OrderBy() string {
	if r == nil {
		return ""
	}

	return r.orderBy
}

// OrderDirection returns the ordering direction.
func (r *PageRequest) OrderDirection() OrderDirection {
	if r == nil {
		return OrderAsc
	}

	return r.orderDirection
}

// Filters returns the typed filters in the order they were first set.
func (r *PageRequest) Filters() []Filter {
	if r == nil {
		return nil
	}

	return append([]Filter(nil), r.filters...)
}

// CustomParams returns a copy of the custom parameters.
func (r *PageRequest) CustomParams() map[string]string {
	if r == nil {
		return map[string]string{}
	}

	return maps.Clone(r.customParams)
}

// BuildParams encodes r into query parameters. Unset fields are omitted,
// so a request with nothing set encodes to an empty map.
func (r *PageRequest) BuildParams() map[string]string {
	params := make(map[string]string)
	if r == nil {
		return params
	}

	if r.pageNum != nil {
		params[constants.ParamOffset] = strconv.Itoa(*r.pageNum)
	}

	if r.pageSize != nil {
		params[constants.ParamLimit] = strconv.Itoa(*r.pageSize)
	}

	if r.orderBy != "" {
		orderBy := r.orderBy
		if r.orderDirection == OrderDesc {
			orderBy += constants.OrderDescSuffix
		}

		params[constants.ParamOrderBy] = orderBy
	}

	for _, filter := range r.filters {
		params[filter.FilterName()] = filter.WireValue()
	}

	maps.Copy(params, r.customParams)

	return params
}

// Values returns BuildParams as url.Values.
func (r *PageRequest) Values() url.Values {
	values := url.Values{}
	for key, value := range r.BuildParams() {
		values.Set(key, value)
	}

	return values
}

// Encode returns the parameters as a query string with keys sorted.
func (r *PageRequest) Encode() string {
	return r.Values().Encode()
}
