package datagen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Amar3x3/seoAgent/models"
)

// Output file names for the three generated tables.
const (
	GSCFileName      = "mock_gsc_performance.csv"
	YouTubeFileName  = "mock_youtube_analytics.csv"
	SessionsFileName = "mock_ga_sessions.csv"
)

var (
	gscHeader = []string{"partition_date", "query", "page_url", "country", "device", "clicks", "impressions", "sum_position"}
	ytHeader  = []string{"partition_date", "external_video_id", "video_title", "country_code", "age_group", "gender",
		"device_type", "traffic_source_type", "views", "watch_time_msec", "potential_watch_time_msec",
		"likes_added", "shares", "comments_added", "subscribers_gained"}
	gaHeader = []string{"partition_date", "session_id", "user_id", "session_start_time", "device_category", "browser",
		"operating_system", "geo", "traffic_source", "totals", "hits"}
)

// WriteDataset persists the three tables as headered CSV files under dir.
// Each table is staged to a temporary file and the set is renamed into
// place only after every table has been written, so a failed run never
// leaves partial output behind.
func WriteDataset(dir string, ds Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	staged := make(map[string]string, 3)
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	tables := []struct {
		name  string
		write func(w *csv.Writer) error
	}{
		{GSCFileName, func(w *csv.Writer) error { return writeGSC(w, ds.GSC) }},
		{YouTubeFileName, func(w *csv.Writer) error { return writeYouTube(w, ds.YouTube) }},
		{SessionsFileName, func(w *csv.Writer) error { return writeSessions(w, ds.Sessions) }},
	}

	for _, t := range tables {
		tmp, err := stageCSV(dir, t.name, t.write)
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to write %s: %w", t.name, err)
		}
		staged[t.name] = tmp
	}

	// All tables staged successfully; publish.
	for name, tmp := range staged {
		if err := os.Rename(tmp, filepath.Join(dir, name)); err != nil {
			cleanup()
			return fmt.Errorf("failed to publish %s: %w", name, err)
		}
	}

	log.Printf("Saved %d rows to %s", len(ds.GSC), GSCFileName)
	log.Printf("Saved %d rows to %s", len(ds.YouTube), YouTubeFileName)
	log.Printf("Saved %d rows to %s", len(ds.Sessions), SessionsFileName)
	return nil
}

// stageCSV writes one table to a temp file in dir and returns its path.
func stageCSV(dir, name string, write func(w *csv.Writer) error) (string, error) {
	f, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := f.Name()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return tmpPath, nil
}

func writeGSC(w *csv.Writer, rows []models.GSCRow) error {
	if err := w.Write(gscHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.PartitionDate, r.Query, r.PageURL, r.Country, r.Device,
			strconv.FormatInt(r.Clicks, 10),
			strconv.FormatInt(r.Impressions, 10),
			strconv.FormatInt(r.SumPosition, 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeYouTube(w *csv.Writer, rows []models.YouTubeRow) error {
	if err := w.Write(ytHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.PartitionDate, r.ExternalVideoID, r.VideoTitle, r.CountryCode,
			r.AgeGroup, r.Gender, r.DeviceType, r.TrafficSourceType,
			strconv.FormatInt(r.Views, 10),
			strconv.FormatInt(r.WatchTimeMsec, 10),
			strconv.FormatInt(r.PotentialWatchTimeMsec, 10),
			strconv.FormatInt(r.LikesAdded, 10),
			strconv.FormatInt(r.Shares, 10),
			strconv.FormatInt(r.CommentsAdded, 10),
			strconv.FormatInt(r.SubscribersGained, 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeSessions serializes the nested geo, traffic_source, totals, and
// hits structures as embedded JSON strings, the format the warehouse CSV
// loader expects for flat-tabular input.
func writeSessions(w *csv.Writer, rows []models.SessionRow) error {
	if err := w.Write(gaHeader); err != nil {
		return err
	}
	for _, r := range rows {
		geo, err := json.Marshal(r.Geo)
		if err != nil {
			return fmt.Errorf("failed to encode geo: %w", err)
		}
		source, err := json.Marshal(r.TrafficSource)
		if err != nil {
			return fmt.Errorf("failed to encode traffic source: %w", err)
		}
		totals, err := json.Marshal(r.Totals)
		if err != nil {
			return fmt.Errorf("failed to encode totals: %w", err)
		}
		hits, err := json.Marshal(r.Hits)
		if err != nil {
			return fmt.Errorf("failed to encode hits: %w", err)
		}

		record := []string{
			r.PartitionDate, r.SessionID, r.UserID,
			r.SessionStartTime.Format(hitTimeLayout),
			r.DeviceCategory, r.Browser, r.OperatingSystem,
			string(geo), string(source), string(totals), string(hits),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
