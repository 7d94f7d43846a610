package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finbook/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExportRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExportHandler(repository.NewIncomeRepository(db))
	r := gin.New()
	r.GET("/api/export/csv", h.ExportCSV)
	r.GET("/api/export/json", h.ExportJSON)
	r.GET("/api/export/excel", h.ExportExcel)
	return r
}

func TestExportHandler_ExportCSV(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(incomeTestRows().
			AddRow(1, 1, "Salary", "monthly", 5000, time.Now(), time.Now(), nil))

	router := newExportRouter(db)
	req := httptest.NewRequest("GET", "/api/export/csv?user_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incomes_user1.csv")
	assert.Contains(t, w.Body.String(), "Salary")
	assert.Contains(t, w.Body.String(), "5000")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportJSON(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(incomeTestRows().
			AddRow(1, 1, "Salary", nil, 5000, time.Now(), time.Now(), nil))

	router := newExportRouter(db)
	req := httptest.NewRequest("GET", "/api/export/json?user_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incomes_user1.json")
	assert.JSONEq(t, `[{"id":1,"user_id":1,"name":"Salary","description":null,"amount":5000}]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(incomeTestRows().
			AddRow(1, 1, "Salary", "monthly", 5000, time.Now(), time.Now(), nil))

	router := newExportRouter(db)
	req := httptest.NewRequest("GET", "/api/export/excel?user_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/vnd.openxmlformats"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incomes_user1.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_MissingUserID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := newExportRouter(db)
	for _, path := range []string{"/api/export/csv", "/api/export/json?user_id=abc", "/api/export/excel"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, "path: %s", path)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}
