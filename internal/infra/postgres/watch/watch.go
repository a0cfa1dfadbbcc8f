package infra_postgres_watch

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	usecase_watch "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

const annotatedWatchColumns = `
	w.id, w.owner_id, w.movie_id, w.watched_on, w.rating, w.notes, w.location,
	w.companions, w.is_rewatch, w.is_private, w.created_at, w.updated_at,
	m.catalog_id, m.title, m.year, m.genres, m.runtime, m.overview, m.poster_link
`

func (d *Driver) Store(ctx context.Context, w model.Watch) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO watches (id, owner_id, movie_id, watched_on, rating, notes, location,
		                     companions, is_rewatch, is_private, created_at, updated_at)
		VALUES (:id, :owner_id, :movie_id, :watched_on, :rating, :notes, :location,
		        :companions, :is_rewatch, :is_private, :created_at, :updated_at)
	`

	if _, err := tx.NamedExecContext(ctx, query, fromDomain(w)); err != nil {
		return err
	}

	if err := insertShares(ctx, tx, w.ID, w.Shares); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) LoadByID(ctx context.Context, id uuid.UUID) (model.Watch, error) {
	var row watchRowDTO

	query := `
		SELECT ` + annotatedWatchColumns + `,
			COALESCE(ARRAY_AGG(s.group_id::text) FILTER (WHERE s.group_id IS NOT NULL), '{}') AS shares
		FROM watches w
		JOIN movies m ON m.id = w.movie_id
		LEFT JOIN watch_shares s ON s.watch_id = w.id
		WHERE w.id = $1
		GROUP BY w.id, m.id
	`

	err := d.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Watch{}, usecase_watch.ErrWatchNotFound
		}
		return model.Watch{}, err
	}

	return row.toDomain(), nil
}

func (d *Driver) LoadByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Watch, error) {
	var rows []watchRowDTO

	query := `
		SELECT ` + annotatedWatchColumns + `,
			COALESCE(ARRAY_AGG(s.group_id::text) FILTER (WHERE s.group_id IS NOT NULL), '{}') AS shares
		FROM watches w
		JOIN movies m ON m.id = w.movie_id
		LEFT JOIN watch_shares s ON s.watch_id = w.id
		WHERE w.owner_id = $1
		GROUP BY w.id, m.id
		ORDER BY w.watched_on DESC, w.created_at DESC
	`

	err := d.db.SelectContext(ctx, &rows, query, ownerID)
	if err != nil {
		return nil, err
	}

	ww := make([]*model.Watch, 0, len(rows))
	for _, row := range rows {
		w := row.toDomain()
		ww = append(ww, &w)
	}

	return ww, nil
}

// Update rewrites the watch row wholesale and replaces its share set in the
// same transaction, so readers never observe a half-applied visibility.
func (d *Driver) Update(ctx context.Context, w model.Watch) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE watches
		SET watched_on = :watched_on, rating = :rating, notes = :notes,
		    location = :location, companions = :companions, is_rewatch = :is_rewatch,
		    is_private = :is_private, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := tx.NamedExecContext(ctx, query, fromDomain(w))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_watch.ErrWatchNotFound
	}

	if err := replaceShares(ctx, tx, w.ID, w.Shares); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) SetVisibility(ctx context.Context, watchID uuid.UUID, isPrivate bool, groupIDs []uuid.UUID) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE watches
		SET is_private = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := tx.ExecContext(ctx, query, isPrivate, watchID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_watch.ErrWatchNotFound
	}

	if err := replaceShares(ctx, tx, watchID, groupIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) DeleteByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `
		DELETE FROM watches
		WHERE id = $1 AND owner_id = $2
	`

	result, err := d.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_watch.ErrWatchNotFound
	}

	return nil
}

// SharedWatches is the group-feed read: non-private watches shared with the
// group, newest watch date first.
func (d *Driver) SharedWatches(ctx context.Context, groupID uuid.UUID, skip, take int) ([]*model.Watch, error) {
	var rows []feedRowDTO

	query := `
		SELECT ` + annotatedWatchColumns + `,
			u.username AS owner_username
		FROM watch_shares s
		JOIN watches w ON w.id = s.watch_id
		JOIN movies m ON m.id = w.movie_id
		JOIN users u ON u.id = w.owner_id
		WHERE s.group_id = $1 AND w.is_private = FALSE
		ORDER BY w.watched_on DESC, w.created_at DESC
		OFFSET $2 LIMIT $3
	`

	err := d.db.SelectContext(ctx, &rows, query, groupID, skip, take)
	if err != nil {
		return nil, err
	}

	ww := make([]*model.Watch, 0, len(rows))
	for _, row := range rows {
		w := row.toDomain()
		ww = append(ww, &w)
	}

	return ww, nil
}

func replaceShares(ctx context.Context, tx *sqlx.Tx, watchID uuid.UUID, groupIDs []uuid.UUID) error {
	query := `
		DELETE FROM watch_shares
		WHERE watch_id = $1
	`

	if _, err := tx.ExecContext(ctx, query, watchID); err != nil {
		return err
	}

	return insertShares(ctx, tx, watchID, groupIDs)
}

func insertShares(ctx context.Context, tx *sqlx.Tx, watchID uuid.UUID, groupIDs []uuid.UUID) error {
	query := `
		INSERT INTO watch_shares (watch_id, group_id)
		VALUES ($1, $2)
		ON CONFLICT (watch_id, group_id) DO NOTHING
	`

	for _, groupID := range groupIDs {
		if _, err := tx.ExecContext(ctx, query, watchID, groupID); err != nil {
			return err
		}
	}

	return nil
}
