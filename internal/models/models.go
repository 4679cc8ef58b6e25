package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	DisplayName            string    `json:"displayName" db:"display_name"`
	IsVerified             bool      `json:"isVerified" db:"is_verified"`
	IsStaff                bool      `json:"isStaff" db:"is_staff"`
	IsSuperuser            bool      `json:"isSuperuser" db:"is_superuser"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Profile struct {
	ProfileID string    `json:"profileId" db:"profile_id"`
	UserID    string    `json:"userId" db:"user_id"`
	AvatarURL string    `json:"avatarUrl" db:"avatar_url"`
	Bio       string    `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Follow struct {
	FollowID    string    `json:"followId" db:"follow_id"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// FollowEdge - ребро подписки вместе с пользователем на противоположной стороне
type FollowEdge struct {
	FollowID    string    `json:"followId" db:"follow_id"`
	UserID      string    `json:"userId" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	DisplayName string    `json:"displayName" db:"display_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID     string    `json:"postId" db:"post_id"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	Author     string    `json:"author" db:"author"`
	Content    string    `json:"content" db:"content"`
	ImageURL   string    `json:"imageUrl" db:"image_url"`
	Slug       string    `json:"slug" db:"slug"`
	Published  bool      `json:"published" db:"published"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	Tags       []string  `json:"tags" db:"-"`
	LikesCount int       `json:"likesCount" db:"likes_count"`
}

type Tag struct {
	TagID     string    `json:"tagId" db:"tag_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Like struct {
	LikeID    string    `json:"likeId" db:"like_id"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

const (
	ReportStatusPending     = "pending"
	ReportStatusReviewed    = "reviewed"
	ReportStatusActionTaken = "action_taken"
)

type Report struct {
	ReportID   string    `json:"reportId" db:"report_id"`
	ReporterID string    `json:"reporterId" db:"reporter_id"`
	PostID     string    `json:"postId" db:"post_id"`
	Reason     string    `json:"reason" db:"reason"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ReportSummary - проекция по жалобам поста, в БД не хранится
type ReportSummary struct {
	PostID         string     `json:"postId"`
	PostAuthor     string     `json:"postAuthor"`
	PostContent    string     `json:"postContent"`
	ReportsCount   int        `json:"reportsCount"`
	ReportReasons  []string   `json:"reportReasons"`
	LastReportedAt *time.Time `json:"lastReportedAt"`
	IsActionTaken  bool       `json:"isActionTaken"`
}
