package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20", "sort_by": "number", "sort_dir": "asc"},
			expected:    dto.QueryParams{Page: 2, Limit: 20, SortBy: "number", SortDir: "ASC"},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid", "limit": "-1"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with invalid sort direction",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			assert.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			assert.NoError(t, err)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Value: "Free", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.status = :status",
			wantArgs:  map[string]any{"status": "Free"},
		},
		{
			name:      "like uses lower",
			filter:    dto.Filter{Field: "company_name", Value: "acme", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(company_name) LIKE LOWER(:company_name)",
			wantArgs:  map[string]any{"company_name": "%acme%"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "status", Value: []string{"Occupied", "Ocupied"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "Occupied", "status_1": "Ocupied"},
		},
		{
			name:      "less with arg name",
			filter:    dto.Filter{ArgName: "end_date", Field: "guest1_checkin_date", Value: "2025-02-01", Operator: dto.FilterOperatorLess},
			wantWhere: "guest1_checkin_date < :end_date",
			wantArgs:  map[string]any{"end_date": "2025-02-01"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "checkout_date", Operator: dto.FilterIsNull},
			wantWhere: "checkout_date IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	group.Add(
		dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{ArgName: "guest1", Field: "guest1_name", Value: "ana", Operator: dto.FilterOperatorLike},
				dto.Filter{ArgName: "guest2", Field: "guest2_name", Value: "ana", Operator: dto.FilterOperatorLike},
			},
		},
		dto.Filter{Field: "ignored"},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND (LOWER(guest1_name) LIKE LOWER(:guest1) OR LOWER(guest2_name) LIKE LOWER(:guest2)))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}

func TestSortDirectionConstants(t *testing.T) {
	assert.Equal(t, "ASC", dto.SortDirAsc)
	assert.Equal(t, "DESC", dto.SortDirDesc)
}
