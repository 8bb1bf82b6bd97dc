package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(files, ".")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Contains(t, names, "000001_init_schema.up.sql")
	assert.Contains(t, names, "000001_init_schema.down.sql")

	up, err := fs.ReadFile(files, "000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(up)
	for _, table := range []string{"customers", "products", "sales", "analytics_reports"} {
		assert.True(t, strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table), table)
	}
	for _, index := range []string{"idx_sales_report_date", "idx_sales_customer_id", "idx_sales_product_id", "idx_sales_region"} {
		assert.Contains(t, schema, index)
	}
}
