package models

import "time"

// Device classes used by the search performance rows.
const (
	DeviceMobile  = "MOBILE"
	DeviceDesktop = "DESKTOP"
)

// Hit types within a session.
const (
	HitTypePage  = "PAGE"
	HitTypeEvent = "EVENT"
)

// GSCRow is one day of search console performance for a (query, device)
// pair. SumPosition is the summed SERP position across impressions, so
// consumers compute average position as sum_position / impressions.
type GSCRow struct {
	PartitionDate string `json:"partition_date"`
	Query         string `json:"query"`
	PageURL       string `json:"page_url"`
	Country       string `json:"country"`
	Device        string `json:"device"`
	Clicks        int64  `json:"clicks"`
	Impressions   int64  `json:"impressions"`
	SumPosition   int64  `json:"sum_position"`
}

// YouTubeRow is one day of analytics for a single video. The demographic
// and device fields are resampled independently per row; they do not
// describe a cohort.
type YouTubeRow struct {
	PartitionDate          string `json:"partition_date"`
	ExternalVideoID        string `json:"external_video_id"`
	VideoTitle             string `json:"video_title"`
	CountryCode            string `json:"country_code"`
	AgeGroup               string `json:"age_group"`
	Gender                 string `json:"gender"`
	DeviceType             string `json:"device_type"`
	TrafficSourceType      string `json:"traffic_source_type"`
	Views                  int64  `json:"views"`
	WatchTimeMsec          int64  `json:"watch_time_msec"`
	PotentialWatchTimeMsec int64  `json:"potential_watch_time_msec"`
	LikesAdded             int64  `json:"likes_added"`
	Shares                 int64  `json:"shares"`
	CommentsAdded          int64  `json:"comments_added"`
	SubscribersGained      int64  `json:"subscribers_gained"`
}

// PageInfo is the payload of a PAGE hit.
type PageInfo struct {
	PagePath  string `json:"page_path"`
	PageTitle string `json:"page_title"`
	Hostname  string `json:"hostname"`
}

// EventInfo is the payload of an EVENT hit.
type EventInfo struct {
	EventCategory string `json:"event_category"`
	EventAction   string `json:"event_action"`
	EventLabel    string `json:"event_label"`
}

// Hit is one recorded visitor action. Exactly one of Page or Event is
// non-nil, matching Type.
type Hit struct {
	HitNumber int        `json:"hit_number"`
	HitTime   string     `json:"hit_time"`
	Type      string     `json:"type"`
	Page      *PageInfo  `json:"page"`
	Event     *EventInfo `json:"event_info"`
}

// SessionGeo is the geographic dimension of a session.
type SessionGeo struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

// TrafficSource describes how a session arrived at the site.
type TrafficSource struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
}

// SessionTotals aggregates a session. Bounces is 0 or 1; a bounce is a
// session whose only hit is the landing page view.
type SessionTotals struct {
	Pageviews         int `json:"pageviews"`
	TimeOnSiteSeconds int `json:"time_on_site_seconds"`
	Bounces           int `json:"bounces"`
}

// SessionRow is one simulated user visit with its ordered hit sequence.
type SessionRow struct {
	PartitionDate    string        `json:"partition_date"`
	SessionID        string        `json:"session_id"`
	UserID           string        `json:"user_id"`
	SessionStartTime time.Time     `json:"session_start_time"`
	DeviceCategory   string        `json:"device_category"`
	Browser          string        `json:"browser"`
	OperatingSystem  string        `json:"operating_system"`
	Geo              SessionGeo    `json:"geo"`
	TrafficSource    TrafficSource `json:"traffic_source"`
	Totals           SessionTotals `json:"totals"`
	Hits             []Hit         `json:"hits"`
}
