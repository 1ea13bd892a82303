package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLoadFromDisk(t *testing.T) {
	t.Run("missing file returns error", func(t *testing.T) {
		_, err := TryLoadFromDisk(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("yaml config is parsed over defaults", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := filepath.Join(dir, "data", "reports.duckdb")
		content := "convert:\n" +
			"  currencyUnit: \"￥\"\n" +
			"  queryKeywords:\n" +
			"    - \"检索结果\"\n" +
			"duckdb:\n" +
			"  dbPath: " + dbPath + "\n" +
			"mysql:\n" +
			"  dsn: \"erp:erp@tcp(127.0.0.1:3306)/erp\"\n"
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := TryLoadFromDisk(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Validate())
		assert.Equal(t, "￥", cfg.ConvertConfig.CurrencyUnit)
		assert.Equal(t, []string{"检索结果"}, cfg.ConvertConfig.QueryKeywords)
		assert.Equal(t, dbPath, cfg.DuckDBConfig.DBPath)
		assert.Equal(t, "erp:erp@tcp(127.0.0.1:3306)/erp", cfg.MySQLConfig.DSN)
		// 未配置的项取默认值
		assert.Equal(t, 10, cfg.MySQLConfig.MaxOpenConns)
	})
}
