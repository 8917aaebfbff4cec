package receipt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ParseFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bill-parser/parse-from-files", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Len(t, r.MultipartForm.File["files"], 1)
		assert.Equal(t, "receipt.pdf", r.MultipartForm.File["files"][0].Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{
					"vendor_name":    "Office Depot",
					"total_amount":   "42.50",
					"bill_date":      "2026-08-15",
					"confidence":     0.93,
					"extracted_text": "OFFICE DEPOT\nTOTAL 42.50",
					"bill_type":      "receipt",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	bills, err := client.ParseFiles(context.Background(), []File{
		{Name: "receipt.pdf", Content: strings.NewReader("%PDF-1.4")},
	})

	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "Office Depot", bills[0].VendorName)
	assert.True(t, bills[0].TotalAmount.Equal(decimal.NewFromFloat(42.50)))
	require.NotNil(t, bills[0].BillDate)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), *bills[0].BillDate)
	assert.Equal(t, 0.93, bills[0].Confidence)
	assert.Equal(t, "receipt", bills[0].BillType)
}

func TestClient_ParseImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bill-parser/parse-from-images", r.URL.Path)

		var payload map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Len(t, payload["images"], 2)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"vendor_name": "Cafe Aurora", "total_amount": "12.00", "confidence": 0.81},
				{"vendor_name": "City Taxi", "total_amount": "23.40", "confidence": 0.64},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	bills, err := client.ParseImages(context.Background(), []string{"aGVsbG8=", "d29ybGQ="})

	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "Cafe Aurora", bills[0].VendorName)
	assert.Nil(t, bills[0].BillDate)
	assert.Equal(t, "City Taxi", bills[1].VendorName)
}

func TestClient_ParserFailure(t *testing.T) {
	t.Run("HTTPError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, 5*time.Second).ParseImages(context.Background(), []string{"aGVsbG8="})
		assert.ErrorIs(t, err, ErrParserUnavailable)
	})

	t.Run("UnsuccessfulResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "no text found"})
		}))
		defer server.Close()

		_, err := NewClient(server.URL, 5*time.Second).ParseImages(context.Background(), []string{"aGVsbG8="})
		assert.ErrorIs(t, err, ErrParserUnavailable)
	})
}
