package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernia/console-backend/internal/model"
)

type row struct {
	Name  string
	Email string
}

func rowFields(r row) []string { return []string{r.Name, r.Email} }

func TestFilterCaseInsensitiveContains(t *testing.T) {
	rows := []row{
		{Name: "Math 101", Email: "math@school.test"},
		{Name: "History", Email: "history@school.test"},
		{Name: "Advanced Mathematics", Email: "adv@school.test"},
	}

	got := Filter(rows, "math", rowFields)
	require.Len(t, got, 2)
	assert.Equal(t, "Math 101", got[0].Name)
	assert.Equal(t, "Advanced Mathematics", got[1].Name)

	// Matching against any field, not just the first.
	got = Filter(rows, "HISTORY@", rowFields)
	require.Len(t, got, 1)
	assert.Equal(t, "History", got[0].Name)
}

func TestFilterBlankTermKeepsEverything(t *testing.T) {
	rows := []row{{Name: "a"}, {Name: "b"}}
	assert.Len(t, Filter(rows, "", rowFields), 2)
	assert.Len(t, Filter(rows, "   ", rowFields), 2)
}

func TestFilterNeverReturnsNil(t *testing.T) {
	got := Filter(nil, "anything", rowFields)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScreenLoad(t *testing.T) {
	screen := NewScreen("rows",
		func(ctx context.Context, page, limit int, search string) ([]row, model.Pagination, error) {
			return []row{{Name: "Math 101"}, {Name: "History"}},
				model.Pagination{Page: page, Limit: limit, Total: 2, TotalPages: 1}, nil
		},
		rowFields,
	)

	result, err := screen.Load(context.Background(), 1, 10, "math")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Math 101", result.Items[0].Name)
	assert.Equal(t, 1, result.Pagination.Page)
}

func TestScreenLoadSynthesizesPagination(t *testing.T) {
	screen := NewScreen("rows",
		func(ctx context.Context, page, limit int, search string) ([]row, model.Pagination, error) {
			return []row{{Name: "only"}}, model.Pagination{}, nil
		},
		rowFields,
	)

	result, err := screen.Load(context.Background(), 2, 25, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 25, result.Pagination.Limit)
	assert.Equal(t, 1, result.Pagination.Total)
}

func TestScreenLoadPropagatesErrors(t *testing.T) {
	boom := errors.New("platform down")
	screen := NewScreen("rows",
		func(ctx context.Context, page, limit int, search string) ([]row, model.Pagination, error) {
			return nil, model.Pagination{}, boom
		},
		rowFields,
	)

	_, err := screen.Load(context.Background(), 1, 10, "")
	assert.ErrorIs(t, err, boom)
}
