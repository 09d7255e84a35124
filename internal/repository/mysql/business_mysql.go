package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bizreview/internal/model"
	"bizreview/internal/repository"
)

// BusinessMySQL is a MySQL implementation of repository.BusinessRepository.
// It uses parameterized queries and contains no business logic.
type BusinessMySQL struct {
	db *sqlx.DB
}

// NewBusinessMySQL creates a new BusinessMySQL repository.
func NewBusinessMySQL(db *sql.DB) *BusinessMySQL {
	return &BusinessMySQL{db: wrapDB(db)}
}

var _ repository.BusinessRepository = (*BusinessMySQL)(nil)

// dbBusiness is a businesses row.
type dbBusiness struct {
	ID            int64  `db:"id"`
	OwnerID       int64  `db:"owner_id"`
	Name          string `db:"name"`
	StreetAddress string `db:"street_address"`
	City          string `db:"city"`
	State         string `db:"state"`
	ZipCode       string `db:"zip_code"`
}

func (r dbBusiness) toModel() (model.Business, error) {
	zip, err := model.ParseZipCode(r.ZipCode)
	if err != nil {
		return model.Business{}, fmt.Errorf("business %d: %w", r.ID, err)
	}
	return model.Business{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		Name:          r.Name,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		ZipCode:       zip,
	}, nil
}

const businessColumns = `id, owner_id, name, street_address, city, state, zip_code`

// Create inserts a new business row and returns it with the AUTO_INCREMENT id.
func (r *BusinessMySQL) Create(ctx context.Context, b *model.Business) (*model.Business, error) {
	const q = `
		INSERT INTO businesses (owner_id, name, street_address, city, state, zip_code)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q,
		b.OwnerID,
		b.Name,
		b.StreetAddress,
		b.City,
		b.State,
		b.ZipCode.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", translate(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert business: last insert id: %w", err)
	}
	out := *b
	out.ID = id
	return &out, nil
}

// FindByID fetches a single business by its ID.
func (r *BusinessMySQL) FindByID(ctx context.Context, id int64) (*model.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses WHERE id = ?`
	var row dbBusiness
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, translate(err)
	}
	b, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns businesses using LIMIT/OFFSET pagination.
func (r *BusinessMySQL) List(ctx context.Context, pq repository.PageQuery) ([]model.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses ORDER BY id LIMIT ? OFFSET ?`
	return r.selectBusinesses(ctx, q, pq.Limit, pq.Offset)
}

// ListByOwner returns all businesses of one owner.
func (r *BusinessMySQL) ListByOwner(ctx context.Context, ownerID int64) ([]model.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = ? ORDER BY id`
	return r.selectBusinesses(ctx, q, ownerID)
}

func (r *BusinessMySQL) selectBusinesses(ctx context.Context, q string, args ...any) ([]model.Business, error) {
	var rows []dbBusiness
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("select businesses: %w", err)
	}
	items := make([]model.Business, 0, len(rows))
	for _, row := range rows {
		b, err := row.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

// Update overwrites the business row. The DSN sets clientFoundRows, so
// zero affected rows means the id does not exist.
func (r *BusinessMySQL) Update(ctx context.Context, b *model.Business) (*model.Business, error) {
	const q = `
		UPDATE businesses
		SET owner_id = ?, name = ?, street_address = ?, city = ?, state = ?, zip_code = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, q,
		b.OwnerID,
		b.Name,
		b.StreetAddress,
		b.City,
		b.State,
		b.ZipCode.String(),
		b.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update business %d: %w", b.ID, translate(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update business %d: rows affected: %w", b.ID, err)
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}
	out := *b
	return &out, nil
}

// Delete removes the business's reviews and then the business in one transaction.
func (r *BusinessMySQL) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete business %d: begin: %w", id, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM review WHERE business_id = ?`, id); err != nil {
		return fmt.Errorf("delete reviews of business %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM businesses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete business %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete business %d: rows affected: %w", id, err)
	}
	if n == 0 {
		err = repository.ErrNotFound
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("delete business %d: commit: %w", id, err)
	}
	return nil
}
