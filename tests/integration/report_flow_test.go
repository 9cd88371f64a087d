package integration

import (
	"net/http"
	"testing"
)

func reportFixtures(t *testing.T, app *testApp) {
	t.Helper()
	app.createTransaction(t, "income", 300000, "Salary", "2024-05-01")
	app.createTransaction(t, "expense", 4500, "Food & Dining", "2024-05-03")
	app.createTransaction(t, "expense", 12000, "Bills & Utilities", "2024-05-20")
	app.createTransaction(t, "expense", 2000, "Transportation", "2024-05-07")
	app.createTransaction(t, "expense", 8000, "Transportation", "2024-04-10")
}

func TestReportFlow_MonthlySummary(t *testing.T) {
	app := setupApp(t)
	reportFixtures(t, app)

	rec := app.request("GET", "/api/v1/reports/monthly?date=2024-05-15", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["income"].(float64) != 300000 {
		t.Errorf("expected income 300000, got %v", result["income"])
	}
	if result["expenses"].(float64) != 18500 {
		t.Errorf("expected expenses 18500, got %v", result["expenses"])
	}
	if transactions := result["transactions"].([]interface{}); len(transactions) != 4 {
		t.Errorf("expected 4 transactions in May, got %d", len(transactions))
	}
}

func TestReportFlow_SpendingByCategory(t *testing.T) {
	app := setupApp(t)
	reportFixtures(t, app)

	rec := app.request("GET", "/api/v1/reports/spending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	spending := result["spending"].([]interface{})
	if len(spending) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(spending))
	}

	totals := make(map[string]float64)
	for _, entry := range spending {
		e := entry.(map[string]interface{})
		totals[e["category"].(string)] = e["amount"].(float64)
	}
	if totals["Transportation"] != 10000 {
		t.Errorf("expected Transportation 10000 across months, got %v", totals["Transportation"])
	}
	if _, ok := totals["Salary"]; ok {
		t.Error("income categories must not appear in spending")
	}
}

func TestReportFlow_TrendSeries(t *testing.T) {
	app := setupApp(t)
	reportFixtures(t, app)

	rec := app.request("GET", "/api/v1/reports/trend?months=3&date=2024-05-15", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	series := result["series"].([]interface{})
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}

	april := series[1].(map[string]interface{})
	if april["month"].(string) != "Apr" {
		t.Errorf("expected middle month Apr, got %v", april["month"])
	}
	if april["expenses"].(float64) != 8000 {
		t.Errorf("expected April expenses 8000, got %v", april["expenses"])
	}

	may := series[2].(map[string]interface{})
	if may["net"].(float64) != 300000-18500 {
		t.Errorf("expected May net 281500, got %v", may["net"])
	}
}

func TestReportFlow_FilteredReport(t *testing.T) {
	app := setupApp(t)
	reportFixtures(t, app)

	rec := app.request("GET",
		"/api/v1/reports?from=2024-05-01&to=2024-05-31&category=Transportation&type=expense", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["transaction_count"].(float64) != 1 {
		t.Errorf("expected 1 matching transaction, got %v", result["transaction_count"])
	}
	if result["total_expenses"].(float64) != 2000 {
		t.Errorf("expected total_expenses 2000, got %v", result["total_expenses"])
	}
	if result["total_income"].(float64) != 0 {
		t.Errorf("expected total_income 0, got %v", result["total_income"])
	}

	breakdown := result["category_breakdown"].([]interface{})
	if len(breakdown) != 1 {
		t.Fatalf("expected 1 breakdown entry, got %d", len(breakdown))
	}
	entry := breakdown[0].(map[string]interface{})
	if entry["category"].(string) != "Transportation" || entry["total"].(float64) != 2000 {
		t.Errorf("unexpected breakdown entry: %v", entry)
	}
}

func TestReportFlow_Categories(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	categories := result["categories"].([]interface{})
	if len(categories) != 9 {
		t.Errorf("expected 9 categories, got %d", len(categories))
	}
}
