package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koperasi_backend/internals/databases/dbtest"
	"koperasi_backend/internals/features/lembaga/cooperative/model"
)

func coop(name string) *model.CooperativeInfoModel {
	return &model.CooperativeInfoModel{
		Name:    name,
		Address: "Jl. Merdeka No. 1",
		Phone:   "0812-0000-0000",
		Email:   "info@koperasi.test",
	}
}

func TestCooperativeRepository_Replace(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewCooperativeRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Replace(ctx, coop("Koperasi Lama")))
	require.NoError(t, repo.Replace(ctx, coop("Koperasi Baru")))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Koperasi Baru", got.Name)

	var n int64
	require.NoError(t, db.Model(&model.CooperativeInfoModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCooperativeRepository_Replace_Concurrent(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewCooperativeRepository(db)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Replace(context.Background(), coop(fmt.Sprintf("Koperasi %d", i)))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var n int64
	require.NoError(t, db.Model(&model.CooperativeInfoModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
