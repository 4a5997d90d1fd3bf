// Package sheets loads a spreadsheet from the Google Sheets API and
// normalizes it into the dataset shape the cache carries.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/meridianpr/pr-tracker/pkg/dataset"
	"github.com/meridianpr/pr-tracker/pkg/upstream"
)

// Config holds the source configuration.
type Config struct {
	// SpreadsheetID is the ID of the tracked spreadsheet (required).
	SpreadsheetID string

	// APIKey authenticates read access. When empty, Application Default
	// Credentials are used.
	APIKey string

	// ClientOptions are appended to the service options. Tests use this to
	// point the client at a fake endpoint.
	ClientOptions []option.ClientOption

	// Logger for fetch events.
	Logger zerolog.Logger
}

// Source fetches one spreadsheet. Its Fetch method satisfies cache.Fetcher.
type Source struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	logger        zerolog.Logger
}

// New creates a source for the configured spreadsheet.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	var opts []option.ClientOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, cfg.ClientOptions...)

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Source{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        cfg.Logger,
	}, nil
}

// Fetch loads every sheet of the spreadsheet: one metadata call for the
// sheet titles, one batch call for all values. Two API reads per refresh is
// what keeps the tracker inside the Sheets read quota.
func (s *Source) Fetch(ctx context.Context) (*dataset.Dataset, error) {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, s.wrap("fetch spreadsheet metadata", err)
	}

	names := make([]string, 0, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title != "" {
			names = append(names, sh.Properties.Title)
		}
	}

	ds := dataset.New()
	if len(names) == 0 {
		s.logger.Warn().Str("spreadsheet_id", s.spreadsheetID).Msg("Spreadsheet has no sheets")
		return ds, nil
	}

	ranges := make([]string, len(names))
	for i, name := range names {
		ranges[i] = sheetRange(name)
	}

	resp, err := s.svc.Spreadsheets.Values.BatchGet(s.spreadsheetID).
		Ranges(ranges...).
		Context(ctx).Do()
	if err != nil {
		return nil, s.wrap("fetch sheet values", err)
	}

	// Value ranges come back in request order.
	for i, vr := range resp.ValueRanges {
		if i >= len(names) {
			break
		}
		ds.AddSheet(names[i], dataset.Normalize(vr.Values))
	}

	s.logger.Debug().
		Int("sheet_count", len(ds.SheetNames)).
		Int("row_count", ds.RowCount()).
		Msg("Fetched spreadsheet")

	return ds, nil
}

// wrap tags quota failures so the cache can apply its stale-serve policy.
func (s *Source) wrap(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusTooManyRequests || isQuotaMessage(gerr.Message) {
			return upstream.NewError(upstream.KindQuota, fmt.Errorf("%s: %w", op, err))
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isQuotaMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "quota") || strings.Contains(lower, "resource_exhausted")
}

// sheetRange quotes a sheet title as an A1 range covering the whole sheet.
func sheetRange(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
