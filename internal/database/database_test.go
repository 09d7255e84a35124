package database

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"bizreview/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMySQLDSN(t *testing.T) {
	tests := []struct {
		name       string
		config     config.DatabaseConfig
		wantPrefix string
		wantErr    bool
	}{
		{
			name: "tcp with password",
			config: config.DatabaseConfig{
				Host:     "localhost",
				Port:     "3306",
				User:     "user",
				Password: "pass",
				Name:     "dbname",
			},
			wantPrefix: "user:pass@tcp(localhost:3306)/dbname?",
		},
		{
			name: "tcp without password",
			config: config.DatabaseConfig{
				Host: "db",
				Port: "3307",
				User: "user",
				Name: "dbname",
			},
			wantPrefix: "user@tcp(db:3307)/dbname?",
		},
		{
			name: "cloud sql unix socket ignores host",
			config: config.DatabaseConfig{
				User:                   "user",
				Password:               "pass",
				Name:                   "dbname",
				InstanceConnectionName: "proj:region:inst",
			},
			wantPrefix: "user:pass@unix(/cloudsql/proj:region:inst)/dbname?",
		},
		{
			name:    "missing host",
			config:  config.DatabaseConfig{Port: "3306", User: "user", Name: "dbname"},
			wantErr: true,
		},
		{
			name:    "missing port",
			config:  config.DatabaseConfig{Host: "localhost", User: "user", Name: "dbname"},
			wantErr: true,
		},
		{
			name:    "missing user",
			config:  config.DatabaseConfig{Host: "localhost", Port: "3306", Name: "dbname"},
			wantErr: true,
		},
		{
			name:    "missing name",
			config:  config.DatabaseConfig{Host: "localhost", Port: "3306", User: "user"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildMySQLDSN(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), "dsn %q", got)
			assert.Contains(t, got, "parseTime=true")
			assert.Contains(t, got, "clientFoundRows=true")
		})
	}
}

func TestHostLabel(t *testing.T) {
	assert.Equal(t, "db:3306", HostLabel(config.DatabaseConfig{Host: "db", Port: "3306"}))
	assert.Equal(t, "cloudsql:p:r:i", HostLabel(config.DatabaseConfig{InstanceConnectionName: "p:r:i"}))
}

func TestNewMySQL(t *testing.T) {
	conf := config.DatabaseConfig{
		Host:               "localhost",
		Port:               "3306",
		User:               "user",
		Password:           "pass",
		Name:               "dbname",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		origSqlOpen := sqlOpen
		sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
			return db, nil
		}
		defer func() { sqlOpen = origSqlOpen }()

		mock.ExpectPing()

		gotDB, err := NewMySQL(conf)
		assert.NoError(t, err)
		assert.NotNil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlOpen error", func(t *testing.T) {
		origSqlOpen := sqlOpen
		sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
			return nil, errors.New("open error")
		}
		defer func() { sqlOpen = origSqlOpen }()

		gotDB, err := NewMySQL(conf)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "sql open: open error")
		assert.Nil(t, gotDB)
	})

	t.Run("ping error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)

		origSqlOpen := sqlOpen
		sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
			return db, nil
		}
		defer func() { sqlOpen = origSqlOpen }()

		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		gotDB, err := NewMySQL(conf)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "db ping: ping failed")
		assert.Nil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid DSN", func(t *testing.T) {
		gotDB, err := NewMySQL(config.DatabaseConfig{})
		assert.Error(t, err)
		assert.Nil(t, gotDB)
	})
}
