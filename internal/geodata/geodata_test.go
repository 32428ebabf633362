package geodata_test

import (
	"testing"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/geodata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlas_hierarchy(t *testing.T) {
	t.Parallel()
	atlas, err := geodata.NewAtlas()
	require.NoError(t, err)

	regions := atlas.Regions()
	require.NotEmpty(t, regions)
	assert.Contains(t, regions, "Lisboa")
	assert.Contains(t, regions, "Porto")

	// Every sub-region and local area resolves back through ContainsLocation.
	for _, region := range regions {
		subRegions := atlas.SubRegions(region)
		require.NotEmpty(t, subRegions, "region %s has no sub-regions", region)
		for _, subRegion := range subRegions {
			localAreas := atlas.LocalAreas(region, subRegion)
			require.NotEmpty(t, localAreas, "sub-region %s has no local areas", subRegion)
			for _, localArea := range localAreas {
				assert.True(t, atlas.ContainsLocation(region, subRegion, localArea))
			}
		}
	}

	assert.Nil(t, atlas.SubRegions("Atlântida"))
	assert.Nil(t, atlas.LocalAreas("Lisboa", "Atlântida"))
	assert.False(t, atlas.ContainsLocation("Lisboa", "Cascais", "Ramalde"))
}

func TestPriceTable_lookup(t *testing.T) {
	t.Parallel()
	prices, err := geodata.NewPriceTable()
	require.NoError(t, err)

	assert.InDelta(t, 4150, prices.Lookup("Lisboa"), 0.01)
	assert.InDelta(t, geodata.DefaultPricePerSqm, prices.Lookup("unknown concelho"), 0.01)
}

func TestPriceTable_coversAtlasSubRegions(t *testing.T) {
	t.Parallel()
	atlas, err := geodata.NewAtlas()
	require.NoError(t, err)
	prices, err := geodata.NewPriceTable()
	require.NoError(t, err)

	for _, region := range atlas.Regions() {
		for _, subRegion := range atlas.SubRegions(region) {
			_, ok := prices[subRegion]
			assert.True(t, ok, "no price for %s", subRegion)
		}
	}
}
