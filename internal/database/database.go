package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/go-sql-driver/mysql"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"bizreview/internal/config"
)

var sqlOpen = sql.Open

// BuildMySQLDSN constructs a go-sql-driver/mysql DSN.
// Example: user:pass@tcp(host:3306)/dbname?clientFoundRows=true&parseTime=true
//
// When InstanceConnectionName is set the connection goes through the
// Cloud SQL unix socket and Host/Port are ignored.
func BuildMySQLDSN(c config.DatabaseConfig) (string, error) {
	if c.User == "" || c.Name == "" {
		return "", fmt.Errorf("invalid database config: user and name are required")
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.DBName = c.Name
	mc.ParseTime = true
	// UPDATE reports matched rather than changed rows, so a no-op update
	// of an existing row is distinguishable from a missing row.
	mc.ClientFoundRows = true

	if c.InstanceConnectionName != "" {
		mc.Net = "unix"
		mc.Addr = "/cloudsql/" + c.InstanceConnectionName
		return mc.FormatDSN(), nil
	}

	if c.Host == "" || c.Port == "" {
		return "", fmt.Errorf("invalid database config: host and port are required")
	}
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)

	return mc.FormatDSN(), nil
}

// NewMySQL opens a database/sql connection using the MySQL driver wrapped by otelsql and applies pooling settings.
func NewMySQL(c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := BuildMySQLDSN(c)
	if err != nil {
		return nil, err
	}

	driverName, err := otelsql.Register("mysql",
		otelsql.WithAttributes(semconv.DBSystemMySQL),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

// HostLabel describes where the database lives, for logs.
func HostLabel(c config.DatabaseConfig) string {
	if c.InstanceConnectionName != "" {
		return "cloudsql:" + c.InstanceConnectionName
	}
	return net.JoinHostPort(c.Host, c.Port)
}
