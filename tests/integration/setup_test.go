package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/storage"
	"fintrack/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  *storage.SlotStore
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedStore creates a slot store over an isolated in-memory SQLite
// database for a single test.
func setupIsolatedStore(t *testing.T) *storage.SlotStore {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&storage.Slot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return storage.NewSlotStore(db)
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database. Seeding is disabled so each test starts from an empty
// ledger.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithStore(t, setupIsolatedStore(t), false)
}

// setupAppWithStore wires the stack over an existing store, allowing tests
// to restart the application against the same database.
func setupAppWithStore(t *testing.T, store *storage.SlotStore, seed bool) *testApp {
	t.Helper()

	ledger, err := services.NewLedgerService(store, seed)
	if err != nil {
		t.Fatalf("failed to initialize ledger: %v", err)
	}

	transactionHandler := handlers.NewTransactionHandler(ledger)
	budgetHandler := handlers.NewBudgetHandler(ledger)
	categoryHandler := handlers.NewCategoryHandler()
	reportHandler := handlers.NewReportHandler(ledger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	v1.GET("/categories", categoryHandler.GetCategories)

	reports := v1.Group("/reports")
	reports.GET("", reportHandler.GetReport)
	reports.GET("/monthly", reportHandler.GetMonthlySummary)
	reports.GET("/spending", reportHandler.GetSpendingByCategory)
	reports.GET("/trend", reportHandler.GetTrendSeries)

	return &testApp{Store: store, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createBudget creates a budget and returns its ID.
func (app *testApp) createBudget(t *testing.T, category string, limit int64) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category":%q,"limit":%d}`, category, limit))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budget := result["budget"].(map[string]interface{})
	return budget["id"].(string)
}

// createTransaction creates a transaction and returns its ID.
func (app *testApp) createTransaction(t *testing.T, txType string, amount int64, category, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"type":%q,"amount":%d,"category":%q`, txType, amount, category)
	if date != "" {
		body += fmt.Sprintf(`,"date":%q`, date)
	}
	body += "}"

	rec := app.request("POST", "/api/v1/transactions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	transaction := result["transaction"].(map[string]interface{})
	return transaction["id"].(string)
}

// getBudget fetches the budget list and returns the entry with the given ID.
func (app *testApp) getBudget(t *testing.T, id string) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/budgets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list budgets failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	for _, entry := range result["budgets"].([]interface{}) {
		budget := entry.(map[string]interface{})
		if budget["id"] == id {
			return budget
		}
	}
	t.Fatalf("budget %s not found in listing", id)
	return nil
}
