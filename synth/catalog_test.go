package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inequalitydb/model"
)

func TestDefaultCatalog(t *testing.T) {
	countries, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, countries, 48)

	seen := make(map[string]bool)
	nonHigh := 0
	for _, c := range countries {
		assert.Len(t, c.Code, 3)
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true

		assert.NotEmpty(t, c.Name)
		assert.True(t, c.Region.IsValid(), "country %s region %q", c.Code, c.Region)
		assert.True(t, c.IncomeGroup.IsValid(), "country %s income group %q", c.Code, c.IncomeGroup)

		if c.IncomeGroup.HasPovertySurveys() {
			nonHigh++
		}
	}
	// 22 countries below the high-income tier carry poverty surveys.
	assert.Equal(t, 22, nonHigh)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		content := `countries:
  - {code: USA, name: United States, region: North America, income_group: High income}
  - {code: KEN, name: Kenya, region: Sub-Saharan Africa, income_group: Lower middle income}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		countries, err := LoadCatalog(path)
		require.NoError(t, err)
		require.Len(t, countries, 2)
		assert.Equal(t, "USA", countries[0].Code)
		assert.Equal(t, model.LowerMiddleIncome, countries[1].IncomeGroup)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("duplicate code", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		content := `countries:
  - {code: USA, name: United States, region: North America, income_group: High income}
  - {code: USA, name: United States, region: North America, income_group: High income}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := LoadCatalog(path)
		assert.ErrorContains(t, err, "duplicate country code")
	})

	t.Run("unknown region", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		content := `countries:
  - {code: ATL, name: Atlantis, region: Lost Continents, income_group: High income}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := LoadCatalog(path)
		assert.ErrorContains(t, err, "unknown region")
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		require.NoError(t, os.WriteFile(path, []byte("countries: []\n"), 0o644))

		_, err := LoadCatalog(path)
		assert.ErrorContains(t, err, "no countries")
	})
}
