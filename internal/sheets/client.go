// Package sheets mirrors the team table into a Google spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	apperrors "hackathon-portal-backend/internal/errors"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

//go:generate mockgen -source=client.go -destination=../mocks/sheets_mocks.go -package=mocks

const serviceName = "spreadsheet"

// Client is the spreadsheet boundary.
type Client interface {
	ReadHeader(ctx context.Context) ([]string, error)
	WriteHeader(ctx context.Context, header []string) error
	// ClearRows clears every data row, leaving the header.
	ClearRows(ctx context.Context) error
	// WriteRows writes rows starting at row 2 in one batch.
	WriteRows(ctx context.Context, rows [][]string) error
	AppendRow(ctx context.Context, row []string) error
}

// GoogleClient implements Client with the Sheets v4 API.
type GoogleClient struct {
	values  *gsheets.SpreadsheetsValuesService
	sheetID string
	tab     string
}

// NewGoogleClient authenticates with a service-account key file.
func NewGoogleClient(ctx context.Context, credentialsFile, sheetID, tab string) (*GoogleClient, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to read sheets credentials: " + err.Error())
	}
	conf, err := google.JWTConfigFromJSON(raw, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, apperrors.NewConfigurationError("invalid sheets credentials: " + err.Error())
	}
	return NewGoogleClientWithOptions(ctx, sheetID, tab, option.WithHTTPClient(conf.Client(ctx)))
}

// NewGoogleClientWithOptions builds a client from explicit API options.
func NewGoogleClientWithOptions(ctx context.Context, sheetID, tab string, opts ...option.ClientOption) (*GoogleClient, error) {
	srv, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to create sheets service: " + err.Error())
	}
	if tab == "" {
		tab = "Sheet1"
	}
	return &GoogleClient{values: srv.Spreadsheets.Values, sheetID: sheetID, tab: tab}, nil
}

func (c *GoogleClient) ReadHeader(ctx context.Context) ([]string, error) {
	resp, err := c.values.Get(c.sheetID, c.a1("A1:"+lastColumn()+"1")).Context(ctx).Do()
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(resp.Values[0]))
	for _, v := range resp.Values[0] {
		header = append(header, fmt.Sprint(v))
	}
	return header, nil
}

func (c *GoogleClient) WriteHeader(ctx context.Context, header []string) error {
	_, err := c.values.Update(c.sheetID, c.a1("A1"), valueRange([][]string{header})).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return apperrors.NewUpstreamError(serviceName, err)
	}
	return nil
}

func (c *GoogleClient) ClearRows(ctx context.Context) error {
	_, err := c.values.Clear(c.sheetID, c.a1("A2:"+lastColumn()), &gsheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return apperrors.NewUpstreamError(serviceName, err)
	}
	return nil
}

func (c *GoogleClient) WriteRows(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := c.values.Update(c.sheetID, c.a1("A2"), valueRange(rows)).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return apperrors.NewUpstreamError(serviceName, err)
	}
	return nil
}

func (c *GoogleClient) AppendRow(ctx context.Context, row []string) error {
	_, err := c.values.Append(c.sheetID, c.a1("A:"+lastColumn()), valueRange([][]string{row})).
		ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return apperrors.NewUpstreamError(serviceName, err)
	}
	return nil
}

// a1 qualifies rng with the tab name, quoting it as A1 notation requires.
func (c *GoogleClient) a1(rng string) string {
	return "'" + strings.ReplaceAll(c.tab, "'", "''") + "'!" + rng
}

func valueRange(rows [][]string) *gsheets.ValueRange {
	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		row := make([]interface{}, len(r))
		for i, v := range r {
			row[i] = v
		}
		values = append(values, row)
	}
	return &gsheets.ValueRange{MajorDimension: "ROWS", Values: values}
}
