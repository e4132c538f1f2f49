package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonhub/SH-BookingService/internal/domain"
	"github.com/salonhub/SH-BookingService/pkg/dbmetrics"
	"github.com/salonhub/SH-BookingService/pkg/psqlbuilder"
)

var stylistColumns = []string{
	"id",
	"business_id",
	"name",
	"public",
	"status",
	"created_at",
	"updated_at",
}

// StylistRepository репозиторий для работы с мастерами
type StylistRepository struct {
	db dbmetrics.DBExecutor
}

// NewStylistRepository создает новый экземпляр репозитория мастеров
func NewStylistRepository(db dbmetrics.DBExecutor) *StylistRepository {
	return &StylistRepository{db: db}
}

// Create создает нового мастера
func (r *StylistRepository) Create(ctx context.Context, st *domain.Stylist) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stylists").
		Columns(
			"business_id",
			"name",
			"public",
			"status",
		).
		Values(
			st.BusinessID,
			st.Name,
			st.Public,
			st.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return st, nil
}

// GetByID получает мастера по ID
func (r *StylistRepository) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.Stylist
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.BusinessID,
		&st.Name,
		&st.Public,
		&st.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stylist: %v", ErrScanRow, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}

// ListByBusiness получает мастеров бизнеса
// publicOnly = true ограничивает выборку видимыми на публичной странице мастерами
func (r *StylistRepository) ListByBusiness(ctx context.Context, businessID int64, publicOnly bool) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(stylistColumns...).
		From("stylists").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name ASC")

	if publicOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"public": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		var st domain.Stylist
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&st.ID,
			&st.BusinessID,
			&st.Name,
			&st.Public,
			&st.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}

		st.CreatedAt = createdAt.Time
		st.UpdatedAt = updatedAt.Time
		stylists = append(stylists, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}
