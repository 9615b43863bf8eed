package application

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/pkg/psqlbuilder"
)

const table = "applications"

// Repository журнал попыток отправки заявок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет попытку отправки и заполняет ID и CreatedAt
func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query, args, err := insertQuery(app)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&app.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time
	return app, nil
}

// ListRecent возвращает последние попытки отправки, новые первыми
// Пустой status означает попытки с любым результатом
func (r *Repository) ListRecent(ctx context.Context, status domain.ApplicationStatus, limit uint64) ([]domain.Application, error) {
	query, args, err := listQuery(status, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Application, 0)
	for rows.Next() {
		var (
			app          domain.Application
			selectedDate time.Time
			errText      sql.NullString
			createdAt    sql.NullTime
		)

		err = rows.Scan(
			&app.ID,
			&app.SessionID,
			&app.Name,
			&app.Surname,
			&app.Email,
			&app.Age,
			&selectedDate,
			&app.SelectedTime,
			&app.PhotoName,
			&app.PhotoSize,
			&app.Status,
			&errText,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}

		app.SelectedDate = selectedDate
		if errText.Valid {
			app.Error = &errText.String
		}
		app.CreatedAt = createdAt.Time
		result = append(result, app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

func insertQuery(app *domain.Application) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns(
			"session_id",
			"name",
			"surname",
			"email",
			"age",
			"selected_date",
			"selected_time",
			"photo_name",
			"photo_size",
			"status",
			"error",
		).
		Values(
			app.SessionID,
			app.Name,
			app.Surname,
			app.Email,
			app.Age,
			app.SelectedDate.Format(domain.DateFormat),
			app.SelectedTime,
			app.PhotoName,
			app.PhotoSize,
			app.Status,
			app.Error,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func listQuery(status domain.ApplicationStatus, limit uint64) (string, []interface{}, error) {
	q := psqlbuilder.Select(
		"id",
		"session_id",
		"name",
		"surname",
		"email",
		"age",
		"selected_date",
		"selected_time",
		"photo_name",
		"photo_size",
		"status",
		"error",
		"created_at",
	).
		From(table)

	if status != "" {
		q = q.Where(squirrel.Eq{"status": status})
	}

	return q.OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
}
