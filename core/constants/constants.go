package constants

import "time"

const (
	// Token
	TokenExpiry     = time.Hour
	TokenIssuer     = "wedding-api"
	ContextTokenKey = "token_data"

	// Redis keys
	RedisKeyTokenBlacklist = "auth:blacklist:"

	// Mongo
	RSVPCollection = "rsvps"

	// Spreadsheet mirror
	MirrorSheetName = "RSVP LIST"
	// Data rows start at row 2; row 1 is the header.
	MirrorDataRange = MirrorSheetName + "!A2:D"

	// Asynq
	MirrorQueue          = "mirror"
	TaskMirrorSyncFamily = "mirror:sync_family"
	MirrorMaxRetry       = 10
	MirrorTaskTimeout    = 30 * time.Second
)

// RSVP statuses as stored and mirrored. StatusUnknown is the default applied
// when a submitted member carries no status.
const (
	StatusGoing    = "Going"
	StatusNotGoing = "Not Going"
	StatusUnknown  = "No Status / I don't know"
)
