// Package receipt talks to the external bill-parsing service that
// extracts structured fields from uploaded receipts.
package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrParserUnavailable = errors.New("bill parser unavailable")

// ParsedBill is one receipt as extracted by the parser.
type ParsedBill struct {
	VendorName    string
	TotalAmount   decimal.Decimal
	BillDate      *time.Time
	Confidence    float64
	ExtractedText string
	BillType      string
}

// File is an uploaded receipt document to forward to the parser.
type File struct {
	Name    string
	Content io.Reader
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type parsedBillPayload struct {
	VendorName    string          `json:"vendor_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BillDate      string          `json:"bill_date"`
	Confidence    float64         `json:"confidence"`
	ExtractedText string          `json:"extracted_text"`
	BillType      string          `json:"bill_type"`
}

type parserResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    []parsedBillPayload `json:"data"`
}

// ParseFiles uploads receipt documents as a multipart form and returns
// the extracted fields, one entry per file.
func (c *Client) ParseFiles(ctx context.Context, files []File) ([]ParsedBill, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, fmt.Errorf("creating form file: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("writing form file %s: %w", f.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/bill-parser/parse-from-files", &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req)
}

// ParseImages sends base64-encoded receipt images for extraction.
func (c *Client) ParseImages(ctx context.Context, images []string) ([]ParsedBill, error) {
	payload, err := json.Marshal(map[string][]string{"images": images})
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/bill-parser/parse-from-images", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]ParsedBill, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParserUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrParserUnavailable, resp.StatusCode)
	}

	var parsed parserResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding parser response: %w", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("%w: %s", ErrParserUnavailable, parsed.Message)
	}

	bills := make([]ParsedBill, 0, len(parsed.Data))
	for _, p := range parsed.Data {
		bills = append(bills, ParsedBill{
			VendorName:    p.VendorName,
			TotalAmount:   p.TotalAmount,
			BillDate:      parseBillDate(p.BillDate),
			Confidence:    p.Confidence,
			ExtractedText: p.ExtractedText,
			BillType:      p.BillType,
		})
	}

	return bills, nil
}

// parseBillDate tolerates the date formats the parser is known to
// emit. An unparseable date is dropped rather than failing the whole
// receipt.
func parseBillDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}
