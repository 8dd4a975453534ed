package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))
	return conn
}

func TestQueryExecutorCountAndExists(t *testing.T) {
	conn := openTestDB(t)
	qe := NewQueryExecutor(conn)

	exists, err := qe.Exists("assessments", map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, conn.Create(&model.Assessment{Name: "Broad Jump", Kind: model.KindQuantitative}).Error)
	require.NoError(t, conn.Create(&model.Assessment{Name: "Taste", Kind: model.KindQualitative}).Error)

	count, err := qe.Count("assessments", map[string]interface{}{"kind": "qualitative"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	exists, err = qe.Exists("assessments", map[string]interface{}{"name": "Broad Jump"})
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestQueryExecutorTransactionRollsBack(t *testing.T) {
	conn := openTestDB(t)
	qe := NewQueryExecutor(conn)

	err := qe.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Drill{Name: "Depth Jump Series"}).Error; err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	count, err := qe.Count("drills", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
