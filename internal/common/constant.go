package common

// Collection names used by every store backend.
const (
	CollectionItems   = "items"
	CollectionReports = "reports"
)

// Postgres notification channels fired by row triggers, one per collection.
const (
	ChannelItems   = "lostfound_items"
	ChannelReports = "lostfound_reports"
)

// ExportFileName is the default file name for a portable backup.
const ExportFileName = "lost-found-export.json"
