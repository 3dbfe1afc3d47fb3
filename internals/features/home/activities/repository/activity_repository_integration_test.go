package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"koperasi_backend/internals/databases/dbtest"
	"koperasi_backend/internals/features/home/activities/model"
)

func TestActivityRepository_CRUD(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	older := &model.ActivityModel{
		Title:       "Rapat Anggota",
		Description: "RAT tahunan",
		Date:        datatypes.Date(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		Images:      pq.StringArray{},
	}
	newer := &model.ActivityModel{
		Title:       "Pelatihan",
		Description: "Pelatihan pembukuan",
		Date:        datatypes.Date(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)),
		Images:      pq.StringArray{"https://blob.test/a.webp", "https://blob.test/b.webp"},
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pelatihan", rows[0].Title)
	assert.Equal(t, pq.StringArray{"https://blob.test/a.webp", "https://blob.test/b.webp"}, rows[0].Images)

	newer.Images = pq.StringArray{"https://blob.test/b.webp"}
	newer.Title = "Pelatihan Akuntansi"
	require.NoError(t, repo.Update(ctx, newer))
	got, err := repo.GetByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pelatihan Akuntansi", got.Title)
	assert.Equal(t, pq.StringArray{"https://blob.test/b.webp"}, got.Images)

	require.NoError(t, repo.Delete(ctx, older.ID))
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), gorm.ErrRecordNotFound)
	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
