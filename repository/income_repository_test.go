package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbook/models"
)

func incomeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "description", "amount", "created_at", "updated_at", "deleted_at"})
}

func TestIncomeRepository_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewIncomeRepository(db)
	in := models.Income{UserID: 1, Name: "Salary", Amount: 5000}
	require.NoError(t, repo.Create(context.Background(), &in))
	assert.Equal(t, uint(1), in.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_GetByUserID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(incomeRows().
			AddRow(1, 1, "Salary", nil, 5000, time.Now(), time.Now(), nil).
			AddRow(2, 1, "Bonus", "year end", 1200, time.Now(), time.Now(), nil))

	repo := NewIncomeRepository(db)
	list, err := repo.GetByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Salary", list[0].Name)
	assert.Nil(t, list[0].Description)
	require.NotNil(t, list[1].Description)
	assert.Equal(t, "year end", *list[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_GetByUserID_Empty(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(42)).
		WillReturnRows(incomeRows())

	repo := NewIncomeRepository(db)
	list, err := repo.GetByUserID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Len(t, list, 0)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_Update(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 先读取现有记录
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().AddRow(1, 1, "Salary", nil, 5000, time.Now(), time.Now(), nil))
	// 部分更新
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// 更新后重新读取
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().AddRow(1, 1, "Salary", nil, 5500, time.Now(), time.Now(), nil))

	repo := NewIncomeRepository(db)
	in, err := repo.Update(context.Background(), 1, map[string]interface{}{"amount": uint(5500)})
	require.NoError(t, err)
	require.NotNil(t, in)
	// 只有 amount 变化，其余字段保持原值
	assert.Equal(t, uint(5500), in.Amount)
	assert.Equal(t, "Salary", in.Name)
	assert.Equal(t, uint(1), in.UserID)
	assert.Nil(t, in.Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_Update_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows())

	repo := NewIncomeRepository(db)
	in, err := repo.Update(context.Background(), 99, map[string]interface{}{"amount": uint(1)})
	require.NoError(t, err)
	assert.Nil(t, in)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewIncomeRepository(db)
	rows, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_SummarizeByUserID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total_amount"}).AddRow(3, 12000))

	repo := NewIncomeRepository(db)
	s, err := repo.SummarizeByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), s.UserID)
	assert.Equal(t, int64(3), s.Count)
	assert.Equal(t, uint64(12000), s.TotalAmount)
	assert.InDelta(t, 4000.0, s.AverageAmount, 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_SummarizeByUserID_NoRows(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total_amount"}).AddRow(0, 0))

	repo := NewIncomeRepository(db)
	s, err := repo.SummarizeByUserID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Count)
	assert.Equal(t, float64(0), s.AverageAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}
