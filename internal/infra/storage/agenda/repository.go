package agenda

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/pkg/dbmetrics"
	"github.com/salonhub/SH-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает настройки расписания бизнеса
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AgendaSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"start_hour",
		"end_hour",
		"service_duration",
		"working_days",
		"created_at",
		"updated_at",
	).
		From("agenda_settings").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.AgendaSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.BusinessID,
		&settings.StartHour,
		&settings.EndHour,
		&settings.ServiceDuration,
		pq.Array(&settings.WorkingDays),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Create создает настройки расписания
// Вызывается сервисом при первом обращении бизнеса к расписанию (ленивое
// создание с дефолтами); конфликт по business_id означает гонку двух первых
// обращений — в этом случае ON CONFLICT DO NOTHING и повторное чтение
func (r *Repository) Create(ctx context.Context, settings *domain.AgendaSettings) (*domain.AgendaSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agenda_settings").
		Columns(
			"business_id",
			"start_hour",
			"end_hour",
			"service_duration",
			"working_days",
		).
		Values(
			settings.BusinessID,
			settings.StartHour,
			settings.EndHour,
			settings.ServiceDuration,
			pq.Array(settings.WorkingDays),
		).
		Suffix("ON CONFLICT (business_id) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	// Конкурирующее первое обращение уже вставило строку — читаем её
	if err == sql.ErrNoRows {
		return r.GetByBusinessID(ctx, settings.BusinessID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

// Update обновляет настройки расписания бизнеса
func (r *Repository) Update(ctx context.Context, businessID int64, settings *domain.AgendaSettings) (*domain.AgendaSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("agenda_settings").
		Set("start_hour", settings.StartHour).
		Set("end_hour", settings.EndHour).
		Set("service_duration", settings.ServiceDuration).
		Set("working_days", pq.Array(settings.WorkingDays)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"business_id": businessID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	settings.BusinessID = businessID
	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
