package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villagejoin/internal/locality"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBoundaryDir, cfg.Inputs.BoundaryDir)
	assert.Equal(t, DefaultIncomePath, cfg.Inputs.Income.Path)
	assert.Equal(t, 0, cfg.Inputs.Income.Skip())
	assert.Equal(t, DefaultEducationPath, cfg.Inputs.Education.Path)
	assert.Equal(t, 1, cfg.Inputs.Education.Skip())
	assert.Equal(t, DefaultMergedPath, cfg.Outputs.Merged)
	assert.Equal(t, DefaultAbsentPath, cfg.Outputs.Absent)
	assert.Empty(t, cfg.Outputs.SQLite)
	assert.Equal(t, locality.BoundaryAfter, cfg.Normalize.Boundary.After)
	assert.Equal(t, locality.EducationBefore, cfg.Normalize.Education.Before)
	assert.Equal(t, []string{"其他"}, cfg.Residual.DistrictSuffixes)
	assert.Equal(t, []string{"其他", "合計"}, cfg.Residual.Villages)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	yaml := `
inputs:
  boundary_dir: /srv/json
  income:
    path: /srv/income.csv
  education:
    path: /srv/edu.csv
    skip_rows: 0
outputs:
  sqlite: /srv/out.sqlite
normalize:
  education:
    before:
      - old: "　"
        new: ""
  boundary:
    after: []
residual:
  villages: [總計]
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "/srv/json", cfg.Inputs.BoundaryDir)
	assert.Equal(t, "/srv/income.csv", cfg.Inputs.Income.Path)
	assert.Equal(t, 0, cfg.Inputs.Education.Skip())
	assert.Equal(t, "/srv/out.sqlite", cfg.Outputs.SQLite)
	assert.Equal(t, DefaultMergedPath, cfg.Outputs.Merged)

	// Lists replace the defaults
	assert.Equal(t, []locality.Replacement{{Old: "　", New: ""}}, cfg.Normalize.Education.Before)
	assert.Empty(t, cfg.Normalize.Boundary.After)
	assert.NotNil(t, cfg.Normalize.Boundary.After)
	assert.Equal(t, []string{"總計"}, cfg.Residual.Villages)
	assert.Equal(t, []string{"其他"}, cfg.Residual.DistrictSuffixes)

	m, err := cfg.Normalize.Education.Build()
	require.NoError(t, err)

	key, ok := m.Key("高雄市　鳳山一", "文山里")
	assert.False(t, ok, key)

	r := cfg.Residual.Filter()
	assert.True(t, r.Match("臺北市大安區", "總計"))
	assert.False(t, r.Match("臺北市大安區", "合計"))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("inputs: [1, 2"))
	require.Error(t, err)

	_, err = Parse([]byte("normalize:\n  income:\n    pattern: \"(\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "normalize.income")

	_, err = Parse([]byte("inputs:\n  income:\n    skip_rows: -1\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "villagejoin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputs:\n  merged: out.json\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out.json", cfg.Outputs.Merged)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
