package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/report"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var _ report.Writer = (*Writer)(nil)

// Writer writes reports to a Google spreadsheet.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
	// SpreadsheetURL is set after a successful Write.
	SpreadsheetURL string
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Write implements report.Writer.
func (w *Writer) Write(ctx context.Context, r *report.Report) error {
	w.logger.Info("starting sheets export",
		"expenses", len(r.Rows),
		"months", len(r.Months))

	var spreadsheet *sheets.Spreadsheet
	retryOpts := w.config.retryOptions()

	err := common.WithRetry(ctx, func() error {
		s, getErr := w.getOrCreateSpreadsheet(ctx)
		if getErr != nil {
			return getErr
		}
		spreadsheet = s
		return nil
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	sheetIDs := make(map[string]int64)
	for _, s := range spreadsheet.Sheets {
		sheetIDs[s.Properties.Title] = s.Properties.SheetId
	}

	tabs := []struct {
		title  string
		values [][]any
	}{
		{title: ExpensesTab, values: expenseValues(r)},
		{title: SummaryTab, values: summaryValues(r)},
	}

	for _, tab := range tabs {
		err := common.WithRetry(ctx, func() error {
			if clearErr := w.clearSheet(ctx, spreadsheet.SpreadsheetId, tab.title); clearErr != nil {
				return clearErr
			}
			return w.writeData(ctx, spreadsheet.SpreadsheetId, tab.title, tab.values)
		}, retryOpts)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", tab.title, err)
		}
	}

	if w.config.EnableFormatting {
		err = common.WithRetry(ctx, func() error {
			return w.applyFormatting(ctx, spreadsheet.SpreadsheetId, sheetIDs, len(tabs[0].values), len(tabs[1].values))
		}, retryOpts)
		if err != nil {
			// Formatting is cosmetic; the data is already written.
			w.logger.Warn("failed to apply formatting", "error", err)
		}
	}

	w.SpreadsheetURL = spreadsheet.SpreadsheetUrl
	w.logger.Info("sheets export completed",
		"spreadsheet_id", spreadsheet.SpreadsheetId,
		"url", spreadsheet.SpreadsheetUrl)

	return nil
}

// createSheetsService authenticates with a service account key or an OAuth2
// refresh token.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		client := oauthConfig(config.ClientID, config.ClientSecret, "")
		tokenSource = client.TokenSource(ctx, &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		})
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

// getOrCreateSpreadsheet returns the configured spreadsheet, adding any
// missing tabs, or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (*sheets.Spreadsheet, error) {
	if w.config.SpreadsheetID == "" {
		created, err := w.service.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{
				Title:    w.config.SpreadsheetName,
				TimeZone: w.config.TimeZone,
			},
			Sheets: []*sheets.Sheet{
				{Properties: &sheets.SheetProperties{Title: ExpensesTab}},
				{Properties: &sheets.SheetProperties{Title: SummaryTab}},
			},
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to create spreadsheet: %w", err)
		}

		w.logger.Info("created new spreadsheet",
			"id", created.SpreadsheetId,
			"url", created.SpreadsheetUrl)
		return created, nil
	}

	existing, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
	}

	requests := missingTabRequests(existing, ExpensesTab, SummaryTab)
	if len(requests) == 0 {
		return existing, nil
	}

	_, err = w.service.Spreadsheets.BatchUpdate(existing.SpreadsheetId, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to add tabs: %w", err)
	}

	return w.service.Spreadsheets.Get(existing.SpreadsheetId).Context(ctx).Do()
}

// missingTabRequests returns AddSheet requests for titles not in s.
func missingTabRequests(s *sheets.Spreadsheet, titles ...string) []*sheets.Request {
	present := make(map[string]bool, len(s.Sheets))
	for _, sheet := range s.Sheets {
		present[sheet.Properties.Title] = true
	}

	var requests []*sheets.Request
	for _, title := range titles {
		if present[title] {
			continue
		}
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		})
	}
	return requests
}

func (w *Writer) clearSheet(ctx context.Context, spreadsheetID, tab string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, tab+"!A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// writeData writes values in batches to stay under API request limits.
func (w *Writer) writeData(ctx context.Context, spreadsheetID, tab string, values [][]any) error {
	for i := 0; i < len(values); i += w.config.BatchSize {
		end := min(i+w.config.BatchSize, len(values))
		batch := values[i:end]

		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, fmt.Sprintf("%s!A%d", tab, i+1), &sheets.ValueRange{
			Values: batch,
		}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		w.logger.Debug("wrote batch", "tab", tab, "start_row", i+1, "rows", len(batch))
	}
	return nil
}

func (w *Writer) applyFormatting(ctx context.Context, spreadsheetID string, sheetIDs map[string]int64, expenseRows, summaryRows int) error {
	_, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: formattingRequests(sheetIDs, w.config.CurrencyPattern, expenseRows, summaryRows),
	}).Context(ctx).Do()
	return err
}

// formattingRequests bolds headers, formats amounts as currency, resizes
// columns and freezes the header rows.
func formattingRequests(sheetIDs map[string]int64, currencyPattern string, expenseRows, summaryRows int) []*sheets.Request {
	bold := func(sheetID int64, row int64) *sheets.Request {
		return &sheets.Request{RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{SheetId: sheetID, StartRowIndex: row, EndRowIndex: row + 1},
			Cell: &sheets.CellData{UserEnteredFormat: &sheets.CellFormat{
				TextFormat: &sheets.TextFormat{Bold: true},
			}},
			Fields: "userEnteredFormat.textFormat",
		}}
	}
	currency := func(sheetID int64, startRow, endRow, startCol, endCol int64) *sheets.Request {
		return &sheets.Request{RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:          sheetID,
				StartRowIndex:    startRow,
				EndRowIndex:      endRow,
				StartColumnIndex: startCol,
				EndColumnIndex:   endCol,
			},
			Cell: &sheets.CellData{UserEnteredFormat: &sheets.CellFormat{
				NumberFormat: &sheets.NumberFormat{Type: "CURRENCY", Pattern: currencyPattern},
			}},
			Fields: "userEnteredFormat.numberFormat",
		}}
	}
	resize := func(sheetID int64) *sheets.Request {
		return &sheets.Request{AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
			Dimensions: &sheets.DimensionRange{SheetId: sheetID, Dimension: "COLUMNS", StartIndex: 0, EndIndex: 4},
		}}
	}
	freeze := func(sheetID int64, rows int64) *sheets.Request {
		return &sheets.Request{UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId:        sheetID,
				GridProperties: &sheets.GridProperties{FrozenRowCount: rows},
			},
			Fields: "gridProperties.frozenRowCount",
		}}
	}

	var requests []*sheets.Request
	if id, ok := sheetIDs[ExpensesTab]; ok {
		requests = append(requests,
			bold(id, 0),
			bold(id, expensesHeaderRow),
			bold(id, int64(expenseRows-1)),
			currency(id, expensesHeaderRow+1, int64(expenseRows), 2, 3),
			resize(id),
			freeze(id, expensesHeaderRow+1),
		)
	}
	if id, ok := sheetIDs[SummaryTab]; ok {
		requests = append(requests,
			bold(id, 0),
			currency(id, 1, int64(summaryRows), 1, 4),
			resize(id),
			freeze(id, 1),
		)
	}
	return requests
}
