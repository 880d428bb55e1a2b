package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// ConfessionStatus defines the moderation state of a confession
type ConfessionStatus string

const (
	ConfessionPending  ConfessionStatus = "pending"
	ConfessionApproved ConfessionStatus = "approved"
	ConfessionRejected ConfessionStatus = "rejected"
)

// ReportStatus defines the state of a content report
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportDismissed ReportStatus = "dismissed"
	ReportResolved  ReportStatus = "resolved"
)

// ListingStatus defines the state of a marketplace listing
type ListingStatus string

const (
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
)

// ChatType defines the kind of chat
type ChatType string

const (
	ChatDirect ChatType = "direct"
	ChatGroup  ChatType = "group"
)

// AnnouncementType defines who an announcement originates from
type AnnouncementType string

const (
	AnnouncementCollege AnnouncementType = "college"
	AnnouncementClub    AnnouncementType = "club"
	AnnouncementEvent   AnnouncementType = "event"
)

// AnnouncementPriority defines announcement urgency
type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "low"
	PriorityMedium AnnouncementPriority = "medium"
	PriorityHigh   AnnouncementPriority = "high"
)

// SystemOwner is the sentinel owner id for events and announcements that are not
// tied to a specific club or user.
const SystemOwner = "system"
