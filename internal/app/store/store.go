// Package store provides the bucketed key-value persistence layer. Each entity
// type lives in a named bucket holding the entire collection; a Put replaces the
// whole bucket. There are no transactions and no versioning: concurrent writers to
// the same bucket race and the last writer wins. That is a known, deliberate
// limitation of the data model, not something callers may assume is fixed here.
package store

import "context"

// Bucket names for every entity collection
const (
	BucketUsers         = "users"
	BucketClubs         = "clubs"
	BucketEvents        = "events"
	BucketMarketplace   = "marketplace"
	BucketConfessions   = "confessions"
	BucketReports       = "reports"
	BucketChats         = "chats"
	BucketAnnouncements = "announcements"
	BucketAdminLogs     = "admin_logs"
)

// Store is the persistence contract. Get unmarshals the named collection into
// out (a pointer to a map or slice); a bucket that was never written leaves out
// untouched. Put serializes value and replaces the named collection.
//
// Callers own read-modify-write atomicity at the application layer.
type Store interface {
	Get(ctx context.Context, bucket string, out interface{}) error
	Put(ctx context.Context, bucket string, value interface{}) error
}
