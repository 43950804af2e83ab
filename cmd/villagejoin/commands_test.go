package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villagejoin/internal/config"
)

const (
	testIncome = "縣市別,村里,納稅單位(戶),綜合所得總額,平均數,中位數,第一分位數,第三分位數,標準差,變異係數\n" +
		"臺北市大安區,龍門里,900,2000000,2222,1500,800,2600,1900,0.86\n"
	testEducation = "title\n" +
		"區域別,村里名稱,總計,博畢_男,博畢_女,博肄_男,博肄_女,碩畢_男,碩畢_女,碩肄_男,碩肄_女,大畢_男,大畢_女,大肄_男,大肄_女\n" +
		"臺北市　大安區,龍門里,0,0,0,0,0,0,0,0,0,0,0,0,0\n"
)

func writeInputs(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "json", "a.json"), []byte(`{"臺北市大安區龍門里": {}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "income.csv"), []byte(testIncome), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "education.csv"), []byte(testEducation), 0o644))

	return dir
}

func inputArgs(dir string) []string {
	return []string{
		"--boundary-dir", filepath.Join(dir, "json"),
		"--income", filepath.Join(dir, "income.csv"),
		"--education", filepath.Join(dir, "education.csv"),
	}
}

func TestCheckCommand(t *testing.T) {
	dir := writeInputs(t)

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"check"}, inputArgs(dir)...))

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "zero-population")
	assert.Contains(t, out.String(), "income joined:")

	_, err := os.Stat(filepath.Join(dir, "data.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunCommand(t *testing.T) {
	dir := writeInputs(t)
	merged := filepath.Join(dir, "out", "data.json")
	absent := filepath.Join(dir, "out", "absent.txt")

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"run", "--log-mode", "prod", "--merged", merged, "--absent", absent}, inputArgs(dir)...))

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(merged)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "臺北市-大安區-龍門里"`)
	assert.Contains(t, string(data), `"rate": null`)

	keys, err := os.ReadFile(absent)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRunCommand_ConfigFile(t *testing.T) {
	dir := writeInputs(t)
	merged := filepath.Join(dir, "from-config.json")

	cfgPath := filepath.Join(dir, "villagejoin.yaml")
	yaml := "inputs:\n" +
		"  boundary_dir: " + filepath.Join(dir, "json") + "\n" +
		"  income:\n    path: " + filepath.Join(dir, "income.csv") + "\n" +
		"  education:\n    path: " + filepath.Join(dir, "education.csv") + "\n" +
		"outputs:\n" +
		"  merged: " + merged + "\n" +
		"  absent: " + filepath.Join(dir, "absent.txt") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "--log-mode", "prod", "--config", cfgPath})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(merged)
	require.NoError(t, err)
}

func TestRunCommand_MissingConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	require.Error(t, cmd.Execute())
}

func TestConfigCommand(t *testing.T) {
	income := filepath.Join(t.TempDir(), "income.csv")

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--income", income})

	require.NoError(t, cmd.Execute())

	cfg, err := config.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, income, cfg.Inputs.Income.Path)
	assert.Equal(t, config.DefaultBoundaryDir, cfg.Inputs.BoundaryDir)
	assert.Equal(t, config.DefaultEducationSkipRows, cfg.Inputs.Education.Skip())
}
