package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
)

// ErrItemNotFound is returned when an item lookup yields no results.
var ErrItemNotFound = errors.New("item not found")

const itemColumns = `id, name, description, price, rarity, type, equipment_type, consumable, staple_for, weight`

// CatalogRepository stores item records in the items table. It implements
// catalog.Provider.
type CatalogRepository struct {
	db *pgxpool.Pool
}

var _ catalog.Provider = (*CatalogRepository)(nil)

// NewCatalogRepository creates a CatalogRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const upsertItemSQL = `
	INSERT INTO items (` + itemColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		price = EXCLUDED.price,
		rarity = EXCLUDED.rarity,
		type = EXCLUDED.type,
		equipment_type = EXCLUDED.equipment_type,
		consumable = EXCLUDED.consumable,
		staple_for = EXCLUDED.staple_for,
		weight = EXCLUDED.weight,
		updated_at = NOW()`

// itemArgs returns the positional arguments for itemColumns.
func itemArgs(rec catalog.ItemRecord) []any {
	return []any{
		rec.Key(), rec.Name, rec.Description, rec.Price, string(rec.Rarity.Resolve()),
		rec.Type, rec.EquipmentType, rec.Consumable, stapleFor(rec.StapleFor), rec.Weight,
	}
}

// Insert stores a new item.
//
// Precondition: rec must pass Validate.
// Postcondition: Returns nil on success, or catalog.ErrDuplicateItem when the key is taken.
func (r *CatalogRepository) Insert(ctx context.Context, rec catalog.ItemRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		itemArgs(rec)...,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("%w: %q", catalog.ErrDuplicateItem, rec.Key())
		}
		return fmt.Errorf("inserting item %q: %w", rec.Key(), err)
	}
	return nil
}

// Upsert inserts rec or replaces the stored row with the same key.
//
// Precondition: rec must pass Validate.
// Postcondition: the row keyed by rec.Key() matches rec.
func (r *CatalogRepository) Upsert(ctx context.Context, rec catalog.ItemRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, upsertItemSQL, itemArgs(rec)...); err != nil {
		return fmt.Errorf("upserting item %q: %w", rec.Key(), err)
	}
	return nil
}

// UpsertAll stores every record in a single transaction.
//
// Postcondition: either all records are stored or none are.
func (r *CatalogRepository) UpsertAll(ctx context.Context, recs []catalog.ItemRecord) error {
	batch := &pgx.Batch{}
	for _, rec := range recs {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("item %q: %w", rec.Key(), err)
		}
		batch.Queue(upsertItemSQL, itemArgs(rec)...)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upserting items: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing items: %w", err)
	}
	return nil
}

// ListAll returns every stored item ordered by id in byte order, matching
// catalog.Registry regardless of the database locale.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *CatalogRepository) ListAll(ctx context.Context) ([]catalog.ItemRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id COLLATE "C" ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := make([]catalog.ItemRecord, 0)
	for rows.Next() {
		rec, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// GetByID retrieves an item by its key.
//
// Postcondition: Returns the record or ErrItemNotFound.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (catalog.ItemRecord, error) {
	rec, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ItemRecord{}, ErrItemNotFound
		}
		return catalog.ItemRecord{}, fmt.Errorf("querying item: %w", err)
	}
	return rec, nil
}

// Delete removes the item with the given key.
//
// Postcondition: Returns nil on success, ErrItemNotFound if no row was deleted.
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (catalog.ItemRecord, error) {
	var (
		rec    catalog.ItemRecord
		rarity string
	)
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rarity,
		&rec.Type, &rec.EquipmentType, &rec.Consumable, &rec.StapleFor, &rec.Weight,
	)
	if err != nil {
		return catalog.ItemRecord{}, err
	}
	rec.Rarity = catalog.Rarity(rarity).Resolve()
	if len(rec.StapleFor) == 0 {
		rec.StapleFor = nil
	}
	return rec, nil
}

// stapleFor maps a nil list to an empty array so the NOT NULL column accepts it.
func stapleFor(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
