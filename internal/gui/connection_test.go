package gui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	port, err := parsePort("8080")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	for _, bad := range []string{"", "0", "65536", "http"} {
		_, err := parsePort(bad)
		assert.Error(t, err, bad)
	}
}

func TestAcceptInput(t *testing.T) {
	assert.True(t, acceptPortInput("80", '0'))
	assert.False(t, acceptPortInput("8a", 'a'))
	assert.False(t, acceptPortInput("700000", '0'))

	assert.True(t, acceptFileNameRune("digidex.db", 'b'))
	assert.False(t, acceptFileNameRune("dig/", '/'))
}

func TestSqliteConnectionString(t *testing.T) {
	conn := sqliteConnectionString("digidex.db")
	assert.Equal(t, "file:digidex.db?cache=shared&_pragma=foreign_keys(1)", conn)
	assert.Equal(t, "digidex.db", sqliteFileName(conn, "x"))
	assert.Equal(t, "fallback.db", sqliteFileName("postgres://x", "fallback.db"))
	assert.Equal(t, "fallback.db", sqliteFileName("file:", "fallback.db"))
}

func TestServerConnectionStringRoundTrip(t *testing.T) {
	values := []string{"tai", "c0urage!", "db.local", "5432", "digidex"}

	for _, dbType := range []string{"postgres", "mysql"} {
		t.Run(dbType, func(t *testing.T) {
			conn, err := serverConnectionString(dbType, values)
			require.NoError(t, err)
			assert.Equal(t, values, serverValues(dbType, conn))
		})
	}

	_, err := serverConnectionString("postgres", []string{"a", "b", "c", "port", "e"})
	assert.Error(t, err)
	_, err = serverConnectionString("oracle", values)
	assert.Error(t, err)
}

func TestDescribeDatabase(t *testing.T) {
	assert.Contains(t, describeDatabase("", ""), "None")
	assert.Contains(t, describeDatabase("sqlite", sqliteConnectionString("digidex.db")), "digidex.db")

	conn, err := serverConnectionString("postgres", []string{"tai", "secret", "db.local", "5432", "digidex"})
	require.NoError(t, err)
	desc := describeDatabase("postgres", conn)
	assert.Contains(t, desc, "******")
	assert.NotContains(t, desc, "secret")
}

func TestPingSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ping.db")
	assert.NoError(t, pingDatabase("sqlite", sqliteConnectionString(path)))
}
