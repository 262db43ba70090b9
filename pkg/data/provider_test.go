package data

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataManager_RandomWhenNoSource(t *testing.T) {
	dm := NewDataManager()

	items, err := dm.KnapsackItems("", 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, items, 10)

	cities, err := dm.TSPCities("", 7, 100, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, cities, 7)
}

func TestDataManager_LoadsFromFile(t *testing.T) {
	dm := NewDataManager()
	path := writeFile(t, "items.csv", "weight,value\n3,4\n")

	items, err := dm.KnapsackItems(path, 99, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCachedProvider_ServesFromCache(t *testing.T) {
	provider := NewCachedProvider(NewCSVProvider())
	path := writeFile(t, "cities.csv", "1,1\n2,2\n")

	first, err := provider.LoadCities(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	second, err := provider.LoadCities(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.GetCache().Size())

	provider.ClearCache()
	_, err = provider.LoadCities(path)
	assert.Error(t, err)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	cache := NewMemoryCache()
	items, err := NewCSVProvider().LoadItems(writeFile(t, "items.csv", "5,5\n"))
	require.NoError(t, err)

	cache.SetItems("k", items)
	items[0].Value = 1000

	got, ok := cache.GetItems("k")
	require.True(t, ok)
	assert.Equal(t, 5, got[0].Value)

	got[0].Value = 1
	again, _ := cache.GetItems("k")
	assert.Equal(t, 5, again[0].Value)

	_, ok = cache.GetCities("k")
	assert.False(t, ok)
	assert.Equal(t, "Cached CSV Provider", NewCachedProvider(NewCSVProvider()).GetName())
}
