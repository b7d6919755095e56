// AngelaMos | 2026
// repository_test.go

package sample

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeSancho/GeospartialLib/internal/core"
)

var propertyRowColumns = []string{
	"property_id", "sample_id", "property_name", "property_value",
	"units", "property_category", "notes", "created_at",
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func insertedRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"property_id", "created_at"}).AddRow(id, time.Now())
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	units := "mm"

	mock.ExpectQuery("INSERT INTO sample_properties").
		WithArgs(int64(7), "grain_size", "0.5", units, nil, nil).
		WillReturnRows(insertedRow(31))

	p := &Property{
		SampleID:      7,
		PropertyName:  "grain_size",
		PropertyValue: TextValue("0.5"),
		Units:         &units,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(31), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateUnknownSample(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO sample_properties").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &Property{SampleID: 999, PropertyName: "ph"})
	assert.ErrorIs(t, err, ErrUnknownSample)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestRepositoryCreateBatchCommits(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sample_properties").
		WithArgs(int64(7), "grain_size", "0.5", nil, nil, nil).
		WillReturnRows(insertedRow(1))
	mock.ExpectQuery("INSERT INTO sample_properties").
		WithArgs(int64(7), "color", "yellow", nil, nil, nil).
		WillReturnRows(insertedRow(2))
	mock.ExpectCommit()

	props := []*Property{
		{SampleID: 7, PropertyName: "grain_size", PropertyValue: TextValue("0.5")},
		{SampleID: 7, PropertyName: "color", PropertyValue: TextValue("yellow")},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), props))

	assert.Equal(t, int64(1), props[0].ID)
	assert.Equal(t, int64(2), props[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateBatchRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sample_properties").WillReturnRows(insertedRow(1))
	mock.ExpectQuery("INSERT INTO sample_properties").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	props := []*Property{
		{SampleID: 7, PropertyName: "grain_size"},
		{SampleID: 7, PropertyName: "color"},
		{SampleID: 7, PropertyName: "never_sent"},
	}
	err := repo.CreateBatch(context.Background(), props)

	assert.ErrorIs(t, err, ErrUnknownSample)
	assert.ErrorContains(t, err, "item 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListFilters(t *testing.T) {
	now := time.Now()

	t.Run("by sample", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := int64(7)

		mock.ExpectQuery(`WHERE sample_id = \$1\s+ORDER BY property_category, property_name`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(propertyRowColumns).
				AddRow(int64(2), id, "color", "yellow", nil, "physical", nil, now).
				AddRow(int64(1), id, "ph", nil, nil, "chemical", nil, now))

		props, err := repo.List(context.Background(), Filter{SampleID: &id})
		require.NoError(t, err)
		require.Len(t, props, 2)
		assert.False(t, props[1].PropertyValue.Valid)
	})

	t.Run("by category", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		category := "chemical"

		mock.ExpectQuery(`WHERE property_category = \$1\s+ORDER BY sample_id`).
			WithArgs(category).
			WillReturnRows(sqlmock.NewRows(propertyRowColumns))

		props, err := repo.List(context.Background(), Filter{Category: &category})
		require.NoError(t, err)
		assert.Empty(t, props)
	})

	t.Run("all with sample code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`LEFT JOIN samples s ON sp.sample_id = s.sample_id`).
			WillReturnRows(sqlmock.NewRows(append(propertyRowColumns, "sample_code")).
				AddRow(int64(1), int64(7), "ph", "7.1", nil, nil, nil, now, "AU-001").
				AddRow(int64(2), int64(8), "ph", "6.9", nil, nil, nil, now, nil))

		props, err := repo.List(context.Background(), Filter{})
		require.NoError(t, err)
		require.Len(t, props, 2)
		require.NotNil(t, props[0].SampleCode)
		assert.Equal(t, "AU-001", *props[0].SampleCode)
		assert.Nil(t, props[1].SampleCode)
	})
}

func TestRepositoryUpdateCoalesce(t *testing.T) {
	repo, mock := newMockRepo(t)
	value := TextValue("8.0")

	mock.ExpectQuery("UPDATE sample_properties").
		WithArgs(int64(1), nil, nil, "8.0", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns).
			AddRow(int64(1), int64(7), "ph", "8.0", nil, "chemical", "lab", time.Now()))

	p, err := repo.Update(context.Background(), 1, Changes{PropertyValue: &value})
	require.NoError(t, err)
	assert.Equal(t, "ph", p.PropertyName)
	assert.Equal(t, "lab", *p.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("DELETE FROM sample_properties").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns))

	_, err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
