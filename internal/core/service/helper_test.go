package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/tohsaka888/societies-server/internal/infrastructure/sqlite"
)

var errDiskIO = errors.New("disk I/O error")

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// newFailingDB returns a store whose every statement fails with errDiskIO.
func newFailingDB(t *testing.T) *sqlite.DB {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	for i := 0; i < 4; i++ {
		mock.ExpectQuery(".").WillReturnError(errDiskIO)
		mock.ExpectExec(".").WillReturnError(errDiskIO)
	}
	mock.MatchExpectationsInOrder(false)

	return sqlite.Wrap(sqlx.NewDb(mockDB, "sqlite"))
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()

	key, err := NewSigningKey("test secret")
	require.NoError(t, err)
	return NewTokenService(key, DefaultTokenTTL)
}
