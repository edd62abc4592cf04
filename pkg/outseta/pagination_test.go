package outseta_test

import (
	"testing"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_BuildParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		builder  *outseta.PageRequestBuilder
		expected map[string]string
	}{
		{
			name:     "nothing set",
			builder:  outseta.NewPageRequest(),
			expected: map[string]string{},
		},
		{
			name:     "page number and size",
			builder:  outseta.NewPageRequest().WithPageNum(2).WithPageSize(25),
			expected: map[string]string{"offset": "2", "limit": "25"},
		},
		{
			name:     "ascending order",
			builder:  outseta.NewPageRequest().WithOrderBy("Name"),
			expected: map[string]string{"orderby": "Name"},
		},
		{
			name:     "descending order",
			builder:  outseta.NewPageRequest().WithOrderBy("Created").WithOrderDirection(outseta.OrderDesc),
			expected: map[string]string{"orderby": "Created desc"},
		},
		{
			name:     "typed filters",
			builder:  outseta.NewPageRequest().WithAccountStage(outseta.AccountStageSubscribing).WithBillingTransactionType(outseta.BillingTransactionInvoice),
			expected: map[string]string{"AccountStage": "3", "BillingTransactionType": "Invoice"},
		},
		{
			name:     "custom param overrides derived one",
			builder:  outseta.NewPageRequest().WithPageSize(10).WithCustomParam("limit", "7").WithCustomParam("fields", "*"),
			expected: map[string]string{"limit": "7", "fields": "*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := tt.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.BuildParams())
		})
	}
}

func TestPageRequest_BuildValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *outseta.PageRequestBuilder
		field   string
		cause   error
	}{
		{"negative page number", outseta.NewPageRequest().WithPageNum(-1), "pageNum", constants.ErrPageNumNegative},
		{"zero page size", outseta.NewPageRequest().WithPageSize(0), "pageSize", constants.ErrPageSizeOutOfRange},
		{"page size above maximum", outseta.NewPageRequest().WithPageSize(outseta.MaxPageSize + 1), "pageSize", constants.ErrPageSizeOutOfRange},
		{"descending without field", outseta.NewPageRequest().WithOrderDirection(outseta.OrderDesc), "orderBy", constants.ErrOrderByRequired},
		{"blank custom param", outseta.NewPageRequest().WithCustomParam(" ", "x"), "customParams", constants.ErrCustomParamNameBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := tt.builder.Build()
			require.Error(t, err)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, outseta.ErrPageBuild)
			assert.ErrorIs(t, err, tt.cause)

			var sdkErr *outseta.Error
			require.ErrorAs(t, err, &sdkErr)
			assert.Equal(t, tt.field, sdkErr.Field)
		})
	}
}

func TestPageRequest_MaxPageSizeAccepted(t *testing.T) {
	t.Parallel()

	req, err := outseta.NewPageRequest().WithPageSize(outseta.MaxPageSize).Build()
	require.NoError(t, err)

	size, ok := req.PageSize()
	assert.True(t, ok)
	assert.Equal(t, outseta.MaxPageSize, size)
}

func TestPageRequest_NextPageRequest(t *testing.T) {
	t.Parallel()

	req, err := outseta.NewPageRequest().
		WithPageNum(3).
		WithPageSize(20).
		WithOrderBy("Name").
		WithActivityType(outseta.ActivityTypeEmailSent).
		Build()
	require.NoError(t, err)

	next, err := req.NextPageRequest()
	require.NoError(t, err)

	pageNum, ok := next.PageNum()
	assert.True(t, ok)
	assert.Equal(t, 4, pageNum)

	// The original is unchanged.
	pageNum, _ = req.PageNum()
	assert.Equal(t, 3, pageNum)

	params := next.BuildParams()
	assert.Equal(t, "4", params["offset"])
	assert.Equal(t, "20", params["limit"])
	assert.Equal(t, "Name", params["orderby"])
	assert.Equal(t, "7", params["ActivityType"])
}

func TestPageRequest_NextPageRequestWithoutPageNum(t *testing.T) {
	t.Parallel()

	req, err := outseta.NewPageRequest().Build()
	require.NoError(t, err)

	next, err := req.NextPageRequest()
	require.NoError(t, err)

	pageNum, ok := next.PageNum()
	assert.True(t, ok)
	assert.Equal(t, 1, pageNum)
}

func TestPageRequest_WithFilterReplacesSameName(t *testing.T) {
	t.Parallel()

	req, err := outseta.NewPageRequest().
		WithAccountStage(outseta.AccountStageDemo).
		WithEntityType(outseta.EntityTypePerson).
		WithAccountStage(outseta.AccountStageExpired).
		WithFilter(nil).
		Build()
	require.NoError(t, err)

	filters := req.Filters()
	require.Len(t, filters, 2)
	assert.Equal(t, outseta.AccountStageExpired, filters[0])
	assert.Equal(t, outseta.EntityTypePerson, filters[1])
}

func TestPageRequest_ToBuilderIsIndependent(t *testing.T) {
	t.Parallel()

	req, err := outseta.NewPageRequest().WithPageSize(10).WithCustomParam("a", "1").Build()
	require.NoError(t, err)

	derived, err := req.ToBuilder().WithPageSize(50).WithCustomParam("a", "2").Build()
	require.NoError(t, err)

	size, _ := req.PageSize()
	assert.Equal(t, 10, size)
	assert.Equal(t, map[string]string{"a": "1"}, req.CustomParams())

	size, _ = derived.PageSize()
	assert.Equal(t, 50, size)
	assert.Equal(t, map[string]string{"a": "2"}, derived.CustomParams())
}

func TestPageRequest_Encode(t *testing.T) {
	t.Parallel()

	req, err := outseta.NewPageRequest().
		WithPageNum(0).
		WithPageSize(5).
		WithOrderBy("Created").
		WithOrderDirection(outseta.OrderDesc).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "limit=5&offset=0&orderby=Created+desc", req.Encode())
}

func TestPageRequest_NilAccessors(t *testing.T) {
	t.Parallel()

	var req *outseta.PageRequest

	_, ok := req.PageNum()
	assert.False(t, ok)
	_, ok = req.PageSize()
	assert.False(t, ok)
	assert.Empty(t, req.OrderBy())
	assert.Equal(t, outseta.OrderAsc, req.OrderDirection())
	assert.Empty(t, req.Filters())
	assert.Empty(t, req.BuildParams())
	assert.Empty(t, req.Encode())
}

func TestOrderDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ASC", outseta.OrderAsc.String())
	assert.Equal(t, "DESC", outseta.OrderDesc.String())
}
