package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-manager/internal/clean"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

func TestRun(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }

	seed := []models.Product{
		{Name: "Cheap", Quantity: 4, Price: 100, UpdatedAt: day(10)},
		{Name: "Dear", Quantity: 1, Price: 500, UpdatedAt: day(1)},
		{Name: "Mid", Quantity: 9, Price: 300, UpdatedAt: day(20)},
	}
	for _, p := range seed {
		_, err := store.Create(p)
		require.NoError(t, err)
	}

	rep, err := Run(store)
	require.NoError(t, err)

	require.Equal(t, 3, rep.TotalProducts)
	require.Equal(t, "Dear", rep.MostExpensive.Name)
	require.Equal(t, "Cheap", rep.LeastExpensive.Name)
	require.Equal(t, "Dear", rep.Oldest.Name)
	require.Equal(t, "Mid", rep.Newest.Name)
	require.Equal(t, "Mid", rep.HighestQuantity.Name)
	require.Equal(t, "Dear", rep.LowestQuantity.Name)

	require.InDelta(t, 300.0, rep.AveragePrice, 1e-9)
	require.Equal(t, "$3.00", clean.HumanPriceFloat(rep.AveragePrice))
}

func TestRunAveragePriceKeepsFraction(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	for i, price := range []int{100, 101, 101} {
		_, err := store.Create(models.Product{Name: clean.HumanPrice(price + i), Price: price, UpdatedAt: time.Now()})
		require.NoError(t, err)
	}

	rep, err := Run(store)
	require.NoError(t, err)
	require.InDelta(t, 302.0/3.0, rep.AveragePrice, 1e-9)
	require.Equal(t, "$1.01", clean.HumanPriceFloat(rep.AveragePrice))
}

func TestRunEmptyStore(t *testing.T) {
	_, err := Run(repo.NewInMemoryProductRepository())
	require.ErrorIs(t, err, repo.ErrNoProducts)
}
