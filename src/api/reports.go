package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/FAMH/Collection-Gateway/src/models"
)

// GenerateReport posts a report request with the caller's identity headers
// and returns the flat transaction-line rows.
func (c *Client) GenerateReport(ctx context.Context, auth models.AuthContext, req models.ReportRequest) ([]models.ReportRow, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("user-id", strconv.Itoa(auth.UserID))
	header.Set("role", auth.Role)

	data, err := c.do(ctx, http.MethodPost, "/reports", nil, header, bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		ReportData []json.RawMessage `json:"reportData"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, err
	}

	rows := make([]models.ReportRow, 0, len(envelope.ReportData))
	for _, raw := range envelope.ReportData {
		var row models.ReportRow
		rowDec := json.NewDecoder(bytes.NewReader(raw))
		rowDec.UseNumber()
		if err := rowDec.Decode(&row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
