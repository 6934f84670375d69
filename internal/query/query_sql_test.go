package query_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/models"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/query"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// The operator string from the filter maps onto the SQL comparison, and
// anything unrecognized falls back to equality.
func TestFromMapGeneratedSQL(t *testing.T) {
	tests := []struct {
		operator string
		wantSQL  string
	}{
		{"=", "SELECT * FROM `users` WHERE login = ?"},
		{"!=", "SELECT * FROM `users` WHERE login <> ?"},
		{">", "SELECT * FROM `users` WHERE login > ?"},
		{"<", "SELECT * FROM `users` WHERE login < ?"},
		{">=", "SELECT * FROM `users` WHERE login >= ?"},
		{"<=", "SELECT * FROM `users` WHERE login <= ?"},
		{"", "SELECT * FROM `users` WHERE login = ?"},
		{"LIKE", "SELECT * FROM `users` WHERE login = ?"},
	}

	for _, tt := range tests {
		t.Run("operator "+tt.operator, func(t *testing.T) {
			db, mock := setupMockDB(t)

			mock.ExpectQuery(regexp.QuoteMeta(tt.wantSQL)).
				WithArgs("admin").
				WillReturnRows(sqlmock.NewRows([]string{"id", "login"}))

			condition := map[string]any{"value": "admin"}
			if tt.operator != "" {
				condition["operator"] = tt.operator
			}

			var users []models.User
			err := query.FromMap(db, models.UserDescriptor(), map[string]any{
				"login": condition,
			}, &users)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFromMapNoFilterSelectsAll(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login"}))

	var users []models.User
	err := query.FromMap(db, models.UserDescriptor(), nil, &users)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
