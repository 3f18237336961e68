package domain

import "time"

// View is one (viewer, timestamp) record of a story being seen.
type View struct {
	ViewerID string
	ViewedAt time.Time
}

type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarRef   string `json:"avatar_ref"`
}

type NotificationKind string

const NotificationKindLike NotificationKind = "like"

const StoryLikedMessage = "liked your story."

type Notification struct {
	TargetUserID string
	ActorID      string
	Kind         NotificationKind
	Message      string
	StoryID      string
}
