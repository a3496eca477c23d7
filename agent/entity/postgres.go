package entity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type PostgresConfig struct {
	DSN string `envconfig:"DSN" split_words:"true" required:"true"`
}

// PostgresStore reads customer profiles from a customers table with one
// JSONB profile column keyed by customer_id.
type PostgresStore struct {
	db *bun.DB
}

type customerRow struct {
	bun.BaseModel `bun:"table:customers,alias:c"`

	CustomerID string          `bun:"customer_id,pk"`
	Profile    json.RawMessage `bun:"profile,type:jsonb"`
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return &PostgresStore{db: bun.NewDB(sqldb, pgdialect.New())}, nil
}

func (s *PostgresStore) Lookup(ctx context.Context, customerID string) (*Customer, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrEmptyCustomerID
	}

	row := new(customerRow)
	err := s.db.NewSelect().
		Model(row).
		Where("c.customer_id = ?", customerID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("query customer %s: %w", customerID, err)
	}

	var customer Customer
	if err := json.Unmarshal(row.Profile, &customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer %s: %w", customerID, err)
	}
	if customer.ScheduledAppointments == nil {
		customer.ScheduledAppointments = map[string]any{}
	}
	return &customer, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
