package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Repository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*UserSettings, error)
	CreateDefaults(ctx context.Context, userID uuid.UUID) error
	Update(ctx context.Context, userID uuid.UUID, in UpdateSettingsInput) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const settingsColumns = `id, user_id, theme, email_notifications, push_notifications,
	marketing_emails, order_updates, auto_save, compact_view, timezone,
	date_format, two_factor_enabled, two_factor_secret, created_at, updated_at`

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) (*UserSettings, error) {
	var s UserSettings

	err := r.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM user_settings WHERE user_id = $1`, userID).
		Scan(
			&s.ID, &s.UserID, &s.Theme, &s.EmailNotifications, &s.PushNotifications,
			&s.MarketingEmails, &s.OrderUpdates, &s.AutoSave, &s.CompactView, &s.Timezone,
			&s.DateFormat, &s.TwoFactorEnabled, &s.TwoFactorSecret, &s.CreatedAt, &s.UpdatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// CreateDefaults inserts a settings row with column defaults for a freshly
// registered user.
func (r *repository) CreateDefaults(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_settings (user_id) VALUES ($1)`, userID)
	return err
}

func (r *repository) Update(ctx context.Context, userID uuid.UUID, in UpdateSettingsInput) error {
	query := `UPDATE user_settings SET updated_at = NOW()`
	args := []any{}
	argIndex := 1

	appendSet := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if in.Theme != nil {
		appendSet("theme", *in.Theme)
	}
	if in.EmailNotifications != nil {
		appendSet("email_notifications", *in.EmailNotifications)
	}
	if in.PushNotifications != nil {
		appendSet("push_notifications", *in.PushNotifications)
	}
	if in.MarketingEmails != nil {
		appendSet("marketing_emails", *in.MarketingEmails)
	}
	if in.OrderUpdates != nil {
		appendSet("order_updates", *in.OrderUpdates)
	}
	if in.AutoSave != nil {
		appendSet("auto_save", *in.AutoSave)
	}
	if in.CompactView != nil {
		appendSet("compact_view", *in.CompactView)
	}
	if in.Timezone != nil {
		appendSet("timezone", *in.Timezone)
	}
	if in.DateFormat != nil {
		appendSet("date_format", *in.DateFormat)
	}
	if in.TwoFactorEnabled != nil {
		appendSet("two_factor_enabled", *in.TwoFactorEnabled)
	}
	if in.ClearTwoFactor {
		query += ", two_factor_secret = NULL"
	} else if in.TwoFactorSecret != nil {
		appendSet("two_factor_secret", *in.TwoFactorSecret)
	}

	query += fmt.Sprintf(" WHERE user_id = $%d", argIndex)
	args = append(args, userID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}

func (r *repository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_settings WHERE user_id = $1`, userID)
	return err
}
