package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bizreview/internal/model"
	"bizreview/internal/repository"
)

// ReviewMySQL is a MySQL implementation of repository.ReviewRepository.
type ReviewMySQL struct {
	db *sqlx.DB
}

// NewReviewMySQL creates a new ReviewMySQL repository.
func NewReviewMySQL(db *sql.DB) *ReviewMySQL {
	return &ReviewMySQL{db: wrapDB(db)}
}

var _ repository.ReviewRepository = (*ReviewMySQL)(nil)

type dbReview struct {
	ID         int64          `db:"id"`
	UserID     int64          `db:"user_id"`
	BusinessID int64          `db:"business_id"`
	Stars      int            `db:"stars"`
	ReviewText sql.NullString `db:"review_text"`
}

func (r dbReview) toModel() model.Review {
	return model.Review{
		ID:         r.ID,
		UserID:     r.UserID,
		BusinessID: r.BusinessID,
		Stars:      r.Stars,
		ReviewText: r.ReviewText.String,
	}
}

const reviewColumns = `id, user_id, business_id, stars, review_text`

// Create inserts a review. The unique (user_id, business_id) key and the
// business foreign key are enforced by MySQL and surface as repository sentinels.
func (r *ReviewMySQL) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const q = `INSERT INTO review (user_id, business_id, stars, review_text) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rv.UserID, rv.BusinessID, rv.Stars, rv.ReviewText)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert review: last insert id: %w", err)
	}
	out := *rv
	out.ID = id
	return &out, nil
}

func (r *ReviewMySQL) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM review WHERE id = ?`
	return r.get(ctx, q, id)
}

func (r *ReviewMySQL) FindByUserAndBusiness(ctx context.Context, userID, businessID int64) (*model.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM review WHERE user_id = ? AND business_id = ?`
	return r.get(ctx, q, userID, businessID)
}

func (r *ReviewMySQL) get(ctx context.Context, q string, args ...any) (*model.Review, error) {
	var row dbReview
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		return nil, translate(err)
	}
	rv := row.toModel()
	return &rv, nil
}

// Update changes stars and optionally the text, then reads the row back.
func (r *ReviewMySQL) Update(ctx context.Context, id int64, stars int, text *string) (*model.Review, error) {
	q := `UPDATE review SET stars = ? WHERE id = ?`
	args := []any{stars, id}
	if text != nil {
		q = `UPDATE review SET stars = ?, review_text = ? WHERE id = ?`
		args = []any{stars, *text, id}
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, translate(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update review %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ReviewMySQL) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM review WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete review %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ReviewMySQL) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM review WHERE user_id = ? ORDER BY id`
	var rows []dbReview
	if err := r.db.SelectContext(ctx, &rows, q, userID); err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	items := make([]model.Review, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}
