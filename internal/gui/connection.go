package gui

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "modernc.org/sqlite"
)

const connectTimeout = 5 * time.Second

var blackListedChars = []rune{
	'\'', '$', '%', '@', '#', '!', ';', ':', '/', '*', '?', '|', '>', '<', '&', '\\',
}

// serverFields are the inputs shown for postgres and mysql.
var serverFields = []string{"Username", "Password", "Host", "Port", "Database"}

func acceptFileNameRune(_ string, lastChar rune) bool {
	return !slices.Contains(blackListedChars, lastChar)
}

func acceptPortInput(textToCheck string, lastChar rune) bool {
	if lastChar < '0' || lastChar > '9' {
		return false
	}
	_, err := parsePort(textToCheck)
	return err == nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("port %q is not a number", s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d is out of range (1 - 65535)", port)
	}
	return port, nil
}

func sqliteConnectionString(file string) string {
	return fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)", file)
}

// sqliteFileName recovers the file name from a connection string built by
// sqliteConnectionString.
func sqliteFileName(connectionString, fallback string) string {
	if !strings.HasPrefix(connectionString, "file:") {
		return fallback
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(connectionString, "file:"), "?")
	if name == "" {
		return fallback
	}
	return name
}

// serverConnectionString builds a DSN from the values of serverFields.
func serverConnectionString(dbType string, values []string) (string, error) {
	port, err := parsePort(values[3])
	if err != nil {
		return "", err
	}

	switch dbType {
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", values[0], url.QueryEscape(values[1]), values[2], port, values[4]), nil
	case "mysql":
		cfg := mysql.NewConfig()
		cfg.User = values[0]
		cfg.Passwd = values[1]
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", values[2], port)
		cfg.DBName = values[4]
		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// serverValues splits an existing DSN back into serverFields order.
func serverValues(dbType, connectionString string) []string {
	values := make([]string, len(serverFields))
	if connectionString == "" {
		return values
	}

	switch dbType {
	case "postgres":
		conConf, err := pgx.ParseConfig(connectionString)
		if err == nil {
			values[0] = conConf.User
			values[1] = conConf.Password
			values[2] = conConf.Host
			values[3] = strconv.FormatUint(uint64(conConf.Port), 10)
			values[4] = conConf.Database
		}
	case "mysql":
		conConf, err := mysql.ParseDSN(connectionString)
		if err == nil {
			values[0] = conConf.User
			values[1] = conConf.Passwd
			values[2], values[3], _ = strings.Cut(conConf.Addr, ":")
			values[4] = conConf.DBName
		}
	}
	return values
}

// describeDatabase is the database summary on the confirmation page.
func describeDatabase(dbType, connectionString string) string {
	switch dbType {
	case "":
		return "None (no offline snapshot)"
	case "sqlite":
		return fmt.Sprintf("Type: Sqlite\nFile: %s", sqliteFileName(connectionString, "?"))
	case "postgres", "mysql":
		v := serverValues(dbType, connectionString)
		if v[2] == "" {
			return "Failed to parse database connection string"
		}
		return fmt.Sprintf("Type: %s\nUser: %s, Password: %s\nHost: %s, Port: %s\nDB Name: %s",
			dbType, v[0], strings.Repeat("*", len(v[1])), v[2], v[3], v[4])
	default:
		return "Unknown database type"
	}
}

// pingDatabase opens and pings the database, then closes it again.
func pingDatabase(dbType, connectionString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if dbType == "postgres" {
		conn, err := pgx.Connect(ctx, connectionString)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())
		return conn.Ping(ctx)
	}

	driver := dbType
	if dbType == "mysql" {
		driver = dialect.MySQL
	}

	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.PingContext(ctx)
}
