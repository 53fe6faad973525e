package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicate         = errors.New("duplicate entry")
	ErrInUse             = errors.New("record is still referenced")
	ErrStaleStatus       = errors.New("record status changed concurrently")
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a repository can be bound
// to a pooled connection or to an open transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repositories struct {
	DB           *sql.DB
	User         UserRepository
	Address      AddressRepository
	Category     CategoryRepository
	Product      ProductRepository
	Cart         CartRepository
	Order        OrderRepository
	Payment      PaymentRepository
	Notification NotificationRepository
	Slide        SlideRepository
	Transactor   Transactor
}

// Open connects to Postgres through the otelsql wrapper so every query shows
// up as a span.
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func New(db *sql.DB) *Repositories {
	return &Repositories{
		DB:           db,
		User:         NewUserRepo(db),
		Address:      NewAddressRepo(db),
		Category:     NewCategoryRepo(db),
		Product:      NewProductRepo(db),
		Cart:         NewCartRepo(db),
		Order:        NewOrderRepo(db),
		Payment:      NewPaymentRepo(db),
		Notification: NewNotificationRepo(db),
		Slide:        NewSlideRepo(db),
		Transactor:   NewTransactor(db),
	}
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}

	return false
}

// checkAffected turns a zero row count into ErrNotFound.
func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func pageOffset(page, size int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * size
}
