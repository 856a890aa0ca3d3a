package postgres

import (
	"context"
	"time"

	"promptpush/internal/domain/service"
	"promptpush/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMinInterval = time.Minute

// rateLimiter implements service.RateLimiter on top of a per-(user, room)
// reservation row. Reservations are serialized with a row lock so concurrent
// dispatches for the same recipient cannot both win the interval.
type rateLimiter struct {
	db          *gorm.DB
	minInterval time.Duration
	now         func() time.Time
}

// NewRateLimiter is the constructor for rateLimiter.
func NewRateLimiter(db *gorm.DB, minInterval time.Duration) service.RateLimiter {
	if db == nil {
		return nil
	}
	if minInterval <= 0 {
		minInterval = defaultMinInterval
	}

	return &rateLimiter{
		db:          db,
		minInterval: minInterval,
		now:         time.Now,
	}
}

// Reserve decides whether a notification may be sent to the user for the room
// right now. On a send decision it also returns the number of notifications
// suppressed since the previous send, and resets that counter.
func (limiter *rateLimiter) Reserve(ctx context.Context, userID, roomID uuid.UUID) (service.RateLimitDecision, error) {
	var decision service.RateLimitDecision

	err := limiter.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := limiter.now()

		row, err := lockReservation(tx, userID, roomID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, createErr := createReservation(tx, userID, roomID, now)
			if createErr != nil {
				return createErr
			}
			if created {
				decision = service.RateLimitDecision{ShouldSend: true, PendingCount: 0}

				return nil
			}
			// Another dispatch inserted the row first. Reload it and let
			// the interval check treat that send as the winning one.
			row, err = lockReservation(tx, userID, roomID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to load rate limit row")
		}

		decision = limiter.decide(row.LastSentAt, row.PendingCount, now)
		if decision.ShouldSend {
			return errors.Wrap(tx.Model(&model.NotificationRateLimitModel{}).
				Where("user_id = ? AND room_id = ?", userID, roomID).
				Updates(map[string]any{"last_sent_at": now, "pending_count": 0}).Error,
				"failed to reset rate limit row")
		}

		return bumpPending(tx, userID, roomID)
	})
	if err != nil {
		return service.RateLimitDecision{}, err
	}

	return decision, nil
}

// decide applies the interval rule to a loaded reservation row.
func (limiter *rateLimiter) decide(lastSentAt time.Time, pendingCount int, now time.Time) service.RateLimitDecision {
	if now.Sub(lastSentAt) >= limiter.minInterval {
		return service.RateLimitDecision{ShouldSend: true, PendingCount: pendingCount}
	}

	return service.RateLimitDecision{ShouldSend: false, PendingCount: pendingCount + 1}
}

func lockReservation(tx *gorm.DB, userID, roomID uuid.UUID) (*model.NotificationRateLimitModel, error) {
	var row model.NotificationRateLimitModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND room_id = ?", userID, roomID).
		First(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

// createReservation inserts the reservation row with ON CONFLICT DO NOTHING:
// losing the insert race must leave the transaction usable, whereas a plain
// insert's unique violation aborts it on Postgres. Reports whether the row
// was actually inserted.
func createReservation(tx *gorm.DB, userID, roomID uuid.UUID, now time.Time) (bool, error) {
	row := model.NotificationRateLimitModel{
		UserID:       userID,
		RoomID:       roomID,
		LastSentAt:   now,
		PendingCount: 0,
	}

	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to create rate limit row")
	}

	return result.RowsAffected > 0, nil
}

func bumpPending(tx *gorm.DB, userID, roomID uuid.UUID) error {
	return errors.Wrap(tx.Model(&model.NotificationRateLimitModel{}).
		Where("user_id = ? AND room_id = ?", userID, roomID).
		Update("pending_count", gorm.Expr("pending_count + 1")).Error,
		"failed to bump pending count")
}
