package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/config"
)

func Test_PostgresPGXPoolConfig_AppliesPoolSettings(t *testing.T) {
	// act
	dbConfig, err := config.PostgresPGXPoolConfig(config.PostgresDemoDSN())

	// assert
	require.NoError(t, err)
	assert.Equal(t, int32(8), dbConfig.MaxConns)
	assert.Equal(t, int32(2), dbConfig.MinConns)
	assert.Equal(t, 5*time.Second, dbConfig.ConnConfig.ConnectTimeout)
	assert.Equal(t, "checkout", dbConfig.ConnConfig.Database)
}

func Test_PostgresPGXPoolConfig_RejectsMalformedDSN(t *testing.T) {
	_, err := config.PostgresPGXPoolConfig("postgres://%zz")
	assert.Error(t, err)
}

func Test_SQLiteSQLDB_OpensInMemoryDatabase(t *testing.T) {
	// act
	db, err := config.SQLiteSQLDB(context.Background(), config.SQLiteInMemoryDSN())

	// assert
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	var one int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}
