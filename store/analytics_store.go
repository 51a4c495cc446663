// api/internal/store/analytics_store.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"time"

	"github.com/Amar3x3/seoAgent/database"
	"github.com/Amar3x3/seoAgent/models"
)

const partitionDateLayout = "2006-01-02"

// AnalyticsStore loads the synthetic datasets into the warehouse and
// executes the assistant's generated SQL against them. ClickHouse plays
// the role of the analytics warehouse; the nested session structures are
// stored as JSON strings, the same shape a flat CSV loader would produce.
type AnalyticsStore struct {
	DB *database.ClickHouseClient
}

func NewAnalyticsStore(chClient *database.ClickHouseClient) *AnalyticsStore {
	return &AnalyticsStore{
		DB: chClient,
	}
}

// CreateTables creates the three demo tables if they do not exist.
func (s *AnalyticsStore) CreateTables(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS gsc_performance (
			partition_date Date,
			query String,
			page_url String,
			country String,
			device String,
			clicks Int64,
			impressions Int64,
			sum_position Int64
		) ENGINE = MergeTree ORDER BY (partition_date, query, device)`,
		`CREATE TABLE IF NOT EXISTS youtube_analytics (
			partition_date Date,
			external_video_id String,
			video_title String,
			country_code String,
			age_group String,
			gender String,
			device_type String,
			traffic_source_type String,
			views Int64,
			watch_time_msec Int64,
			potential_watch_time_msec Int64,
			likes_added Int64,
			shares Int64,
			comments_added Int64,
			subscribers_gained Int64
		) ENGINE = MergeTree ORDER BY (partition_date, external_video_id)`,
		`CREATE TABLE IF NOT EXISTS ga_sessions (
			partition_date Date,
			session_id String,
			user_id String,
			session_start_time DateTime,
			device_category String,
			browser String,
			operating_system String,
			geo String,
			traffic_source String,
			totals String,
			hits String
		) ENGINE = MergeTree ORDER BY (partition_date, session_id)`,
	}

	for _, stmt := range ddl {
		if err := s.DB.Conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// LoadGSCRows bulk-inserts search performance rows.
func (s *AnalyticsStore) LoadGSCRows(ctx context.Context, rows []models.GSCRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO gsc_performance (
			partition_date, query, page_url, country, device, clicks, impressions, sum_position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}

	for _, row := range rows {
		date, err := time.Parse(partitionDateLayout, row.PartitionDate)
		if err != nil {
			return fmt.Errorf("invalid partition date %q: %w", row.PartitionDate, err)
		}
		if err := batch.Append(
			date,
			row.Query,
			row.PageURL,
			row.Country,
			row.Device,
			row.Clicks,
			row.Impressions,
			row.SumPosition,
		); err != nil {
			return fmt.Errorf("failed to append gsc row: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Successfully inserted %d gsc_performance rows.", len(rows))
	return nil
}

// LoadYouTubeRows bulk-inserts video analytics rows.
func (s *AnalyticsStore) LoadYouTubeRows(ctx context.Context, rows []models.YouTubeRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO youtube_analytics (
			partition_date, external_video_id, video_title, country_code, age_group, gender,
			device_type, traffic_source_type, views, watch_time_msec, potential_watch_time_msec,
			likes_added, shares, comments_added, subscribers_gained
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}

	for _, row := range rows {
		date, err := time.Parse(partitionDateLayout, row.PartitionDate)
		if err != nil {
			return fmt.Errorf("invalid partition date %q: %w", row.PartitionDate, err)
		}
		if err := batch.Append(
			date,
			row.ExternalVideoID,
			row.VideoTitle,
			row.CountryCode,
			row.AgeGroup,
			row.Gender,
			row.DeviceType,
			row.TrafficSourceType,
			row.Views,
			row.WatchTimeMsec,
			row.PotentialWatchTimeMsec,
			row.LikesAdded,
			row.Shares,
			row.CommentsAdded,
			row.SubscribersGained,
		); err != nil {
			return fmt.Errorf("failed to append youtube row: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Successfully inserted %d youtube_analytics rows.", len(rows))
	return nil
}

// LoadSessions bulk-inserts session rows, serializing the nested geo,
// traffic_source, totals, and hits structures as JSON strings.
func (s *AnalyticsStore) LoadSessions(ctx context.Context, rows []models.SessionRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO ga_sessions (
			partition_date, session_id, user_id, session_start_time, device_category,
			browser, operating_system, geo, traffic_source, totals, hits
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}

	for _, row := range rows {
		date, err := time.Parse(partitionDateLayout, row.PartitionDate)
		if err != nil {
			return fmt.Errorf("invalid partition date %q: %w", row.PartitionDate, err)
		}
		geo, err := json.Marshal(row.Geo)
		if err != nil {
			return fmt.Errorf("failed to encode geo: %w", err)
		}
		source, err := json.Marshal(row.TrafficSource)
		if err != nil {
			return fmt.Errorf("failed to encode traffic source: %w", err)
		}
		totals, err := json.Marshal(row.Totals)
		if err != nil {
			return fmt.Errorf("failed to encode totals: %w", err)
		}
		hits, err := json.Marshal(row.Hits)
		if err != nil {
			return fmt.Errorf("failed to encode hits: %w", err)
		}

		if err := batch.Append(
			date,
			row.SessionID,
			row.UserID,
			row.SessionStartTime,
			row.DeviceCategory,
			row.Browser,
			row.OperatingSystem,
			string(geo),
			string(source),
			string(totals),
			string(hits),
		); err != nil {
			return fmt.Errorf("failed to append session row: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Successfully inserted %d ga_sessions rows.", len(rows))
	return nil
}

// ExecuteQuery runs arbitrary SQL produced by the assistant and returns
// the rows as column-name to value maps, preserving result order. Errors
// are returned as values so callers can relay them to the model instead
// of failing the request.
func (s *AnalyticsStore) ExecuteQuery(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := s.DB.Conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns := rows.Columns()
	columnTypes := rows.ColumnTypes()

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		for i := range values {
			values[i] = reflect.New(columnTypes[i].ScanType()).Interface()
		}
		if err := rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = reflect.ValueOf(values[i]).Elem().Interface()
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during query: %w", err)
	}

	return results, nil
}
