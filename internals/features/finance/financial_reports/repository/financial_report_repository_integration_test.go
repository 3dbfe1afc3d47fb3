package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"koperasi_backend/internals/databases/dbtest"
	"koperasi_backend/internals/features/finance/financial_reports/model"
)

func newReport(month, url string) *model.FinancialReportModel {
	return &model.FinancialReportModel{
		Month:      month,
		FileName:   "laporan-" + month + ".pdf",
		BlobURL:    url,
		FileType:   model.FileTypePDF,
		UploadedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func countMonth(t *testing.T, db *gorm.DB, month string) int64 {
	var n int64
	require.NoError(t, db.Model(&model.FinancialReportModel{}).Where("month = ?", month).Count(&n).Error)
	return n
}

func TestFinancialReportRepository_ReplaceForMonth(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewFinancialReportRepository(db)
	ctx := context.Background()

	prev, err := repo.ReplaceForMonth(ctx, newReport("2024-05", "https://blob.test/mei-v1.pdf"))
	require.NoError(t, err)
	assert.Nil(t, prev)

	_, err = repo.ReplaceForMonth(ctx, newReport("2024-04", "https://blob.test/april.pdf"))
	require.NoError(t, err)

	second := newReport("2024-05", "https://blob.test/mei-v2.pdf")
	prev, err = repo.ReplaceForMonth(ctx, second)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "https://blob.test/mei-v1.pdf", prev.BlobURL)
	assert.NotEqual(t, uuid.Nil, second.ID)

	assert.EqualValues(t, 1, countMonth(t, db, "2024-05"))
	assert.EqualValues(t, 1, countMonth(t, db, "2024-04"))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05", rows[0].Month)
	assert.Equal(t, "https://blob.test/mei-v2.pdf", rows[0].BlobURL)
	assert.Equal(t, "2024-04", rows[1].Month)
}

func TestFinancialReportRepository_ReplaceForMonth_Concurrent(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewFinancialReportRepository(db)

	const n = 6
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		errs  []error
		prevs int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prev, err := repo.ReplaceForMonth(context.Background(), newReport("2024-07", fmt.Sprintf("https://blob.test/juli-%d.pdf", i)))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
			if prev != nil {
				prevs++
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, errs)
	assert.EqualValues(t, 1, countMonth(t, db, "2024-07"))
	assert.Equal(t, n-1, prevs)
}

func TestFinancialReportRepository_MissingID(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewFinancialReportRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), gorm.ErrRecordNotFound)

	m := newReport("2024-03", "https://blob.test/maret.pdf")
	_, err = repo.ReplaceForMonth(ctx, m)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, m.ID))
	assert.EqualValues(t, 0, countMonth(t, db, "2024-03"))
}
