package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SC-AppointmentService/pkg/txmanager"
)

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте есть активная транзакция (через txmanager), использует её -
// это обязательно при создании записи с проверкой занятости слота, чтобы
// исключить гонку между конкурентными бронированиями.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"reference",
			"client_name",
			"client_email",
			"service_id",
			"service_name",
			"service_price",
			"start_time",
			"duration_minutes",
			"status",
		).
		Values(
			appt.Reference,
			appt.ClientName,
			appt.ClientEmail,
			appt.ServiceID,
			appt.ServiceName,
			appt.ServicePrice,
			appt.StartTime,
			appt.DurationMinutes,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByReference получает запись по публичному идентификатору
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByReference - scan: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetBookedBetween получает активные записи, чьи интервалы пересекают
// диапазон [from, to). Конец записи вычисляется из длительности прямо в SQL.
func (r *Repository) GetBookedBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Expr("start_time + make_interval(mins => duration_minutes) > ?", from)).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedBetween - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBookedBetween - scan: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedBetween - rows: %v", ErrExecQuery, err)
	}

	return appointments, nil
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"reference",
		"client_name",
		"client_email",
		"service_id",
		"service_name",
		"service_price",
		"start_time",
		"duration_minutes",
		"status",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("appointments")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt               domain.Appointment
		status             string
		cancellationReason sql.NullString
		cancelledAt        sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.Reference,
		&appt.ClientName,
		&appt.ClientEmail,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.ServicePrice,
		&appt.StartTime,
		&appt.DurationMinutes,
		&status,
		&cancellationReason,
		&cancelledAt,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.Status = domain.AppointmentStatus(status)
	if cancellationReason.Valid {
		appt.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		appt.CancelledAt = &cancelledAt.Time
	}

	return &appt, nil
}
