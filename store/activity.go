package store

import (
	"context"
	"log"

	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/models"
)

// ActivityLog persists published events as per-user activity rows.
type ActivityLog struct {
	store *Store
}

func (s *Store) ActivityLog() *ActivityLog {
	return &ActivityLog{store: s}
}

// Publish records e for its actor. Anonymous events are skipped.
func (a *ActivityLog) Publish(ctx context.Context, e events.Event) {
	if e.ActorID == 0 {
		return
	}
	row := &models.ActivityLog{
		CreatedAt:  e.At,
		UserID:     e.ActorID,
		Activity:   e.Type,
		TargetKind: e.TargetKind,
		TargetID:   e.TargetID,
	}
	if err := a.store.with(ctx).Create(row).Error; err != nil {
		log.Printf("Failed to record activity %s for user %d: %v", e.Type, e.ActorID, err)
	}
}

// ListActivity pages through a user's activity, newest first.
func (s *Store) ListActivity(ctx context.Context, userID uint, offset, limit int) ([]models.ActivityLog, int64, error) {
	var total int64
	if err := s.with(ctx).Model(&models.ActivityLog{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count activity")
	}
	var rows []models.ActivityLog
	if err := s.with(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, translate(err, "list activity")
	}
	return rows, total, nil
}
