package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports", r.URL.Path)
		w.Write([]byte(`{"reportData":[
			{"transaction_id":7,"transaction_date":"2026-02-10T14:30:00","username":"clerk1","transaction_type":"Credit Card","payment_status":"Completed","item_id":1,"item_name":"Poster","category":"Prints","quantity":3,"price_at_purchase":"5.00","item_total":"15.00"}
		]}`))
	}))
	t.Cleanup(upstream.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewReportController(services.NewReportService(api.NewClient(upstream.URL, nil), nil))
	router.POST("/report", controller.GenerateReport)
	router.POST("/report/export/pdf", controller.ExportPDF)
	router.POST("/report/export/excel", controller.ExportExcel)
	return router
}

func TestGenerateReportRejectsInvalidPeriod(t *testing.T) {
	router := reportTestRouter(t)

	body := `{"report_type":"revenue","report_period_type":"single_day"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please select a date.")
}

func TestGenerateSingleDayReportGroups(t *testing.T) {
	router := reportTestRouter(t)

	body := `{"report_type":"revenue","report_period_type":"single_day","selected_date":"2026-02-10"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transactionId":7`)
	assert.Contains(t, rec.Body.String(), `"$15.00"`)
}

func TestExportPDFNamesDownloadAfterReportType(t *testing.T) {
	router := reportTestRouter(t)

	body := `{"report_type":"revenue","report_period_type":"single_day","selected_date":"2026-02-10"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report/export/pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "revenue_report.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestExportExcelNamesDownloadAfterReportType(t *testing.T) {
	router := reportTestRouter(t)

	body := `{"report_type":"transaction_details","report_period_type":"month","selected_month":"2026-02"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report/export/excel", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "transaction_details_report.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}
