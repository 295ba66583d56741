package store

import (
	"context"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/schema"
	"github.com/MKhiriev/rewards-backend/models"
)

type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureTable creates the "settings" table if it does not exist.
func (r *settingsRepository) EnsureTable(ctx context.Context) error {
	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	if _, err = conn.ExecContext(ctx, schema.Settings()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsRepository.EnsureTable").Msg("error creating settings table")
		return wrapDBError(ErrExecutingStatement, err)
	}
	return nil
}

// ListSettings returns every stored pair ordered by key.
func (r *settingsRepository) ListSettings(ctx context.Context) ([]models.Setting, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, listSettings)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.ListSettings").Msg("error querying settings")
		return nil, wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make([]models.Setting, 0)
	for rows.Next() {
		var s models.Setting
		if err = rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, wrapDBError(ErrScanningRows, err)
		}
		settings = append(settings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapDBError(ErrScanningRows, err)
	}

	return settings, nil
}

// UpsertSetting inserts the pair or replaces the value of an existing key in
// a single INSERT .. ON CONFLICT statement.
func (r *settingsRepository) UpsertSetting(ctx context.Context, setting models.Setting) error {
	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	if _, err = conn.ExecContext(ctx, upsertSetting, setting.Key, setting.Value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsRepository.UpsertSetting").Str("key", setting.Key).Msg("error upserting setting")
		return wrapDBError(ErrExecutingStatement, err)
	}
	return nil
}
