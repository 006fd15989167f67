package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Tests swap it
// for a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type depositRepository struct {
	storage *Storage
}

type referralRepository struct {
	storage *Storage
}

type catalogRepository struct {
	storage *Storage
}

type settingsRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Deposits() repository.DepositRepository {
	return &depositRepository{storage: s}
}

func (s *Storage) Referrals() repository.ReferralRepository {
	return &referralRepository{storage: s}
}

func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            telegram_id BIGINT UNIQUE NOT NULL,
            username TEXT NOT NULL DEFAULT '',
            first_name TEXT NOT NULL DEFAULT '',
            main_balance NUMERIC(10,2) NOT NULL DEFAULT 0,
            hold_balance NUMERIC(10,2) NOT NULL DEFAULT 0,
            referral_balance NUMERIC(10,2) NOT NULL DEFAULT 0,
            stars_balance BIGINT NOT NULL DEFAULT 0,
            is_premium BOOLEAN NOT NULL DEFAULT FALSE,
            referral_code TEXT UNIQUE,
            referred_by BIGINT,
            first_order_completed BOOLEAN NOT NULL DEFAULT FALSE,
            join_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS packages (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price NUMERIC(10,2) NOT NULL,
            stars_price BIGINT NOT NULL DEFAULT 0,
            type TEXT NOT NULL DEFAULT '',
            input_label TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            allow_stars BOOLEAN NOT NULL DEFAULT FALSE,
            require_premium BOOLEAN NOT NULL DEFAULT FALSE,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(telegram_id),
            package_id BIGINT NOT NULL,
            package_name TEXT NOT NULL,
            amount NUMERIC(10,2) NOT NULL DEFAULT 0,
            stars_amount BIGINT NOT NULL DEFAULT 0,
            payment_method TEXT NOT NULL,
            user_input TEXT NOT NULL DEFAULT '',
            screenshot_path TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'PENDING',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS deposits (
            id SERIAL PRIMARY KEY,
            deposit_id TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(telegram_id),
            amount NUMERIC(10,2) NOT NULL,
            method TEXT NOT NULL,
            reference TEXT NOT NULL DEFAULT '',
            screenshot_path TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'Processing',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS referrals (
            id SERIAL PRIMARY KEY,
            referrer_id BIGINT NOT NULL,
            referred_id BIGINT NOT NULL,
            reward_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
            rewarded BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_deposits_user ON deposits(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_referrals_referred ON referrals(referred_id)`,
		`INSERT INTO settings (key, value) VALUES
            ('referral_reward', '0.5'),
            ('owner_id', ''),
            ('order_admin_id', ''),
            ('support_admin_id', ''),
            ('official_channel', ''),
            ('telegram_channel', ''),
            ('telegram_group', ''),
            ('youtube_channel', ''),
            ('customer_support_link', ''),
            ('usdt_address', ''),
            ('bnb_address', ''),
            ('binance_pay_name', ''),
            ('binance_pay_id', ''),
            ('allow_stars_payment', 'true'),
            ('allow_premium_purchase', 'true')
            ON CONFLICT (key) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `telegram_id, username, first_name, main_balance, hold_balance, referral_balance,
                     stars_balance, is_premium, referral_code, referred_by, first_order_completed, join_date`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.TelegramID, &u.Username, &u.FirstName, &u.MainBalance, &u.HoldBalance,
		&u.ReferralBalance, &u.StarsBalance, &u.IsPremium, &u.ReferralCode, &u.ReferredBy,
		&u.FirstOrderCompleted, &u.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, telegramID))
}

func (r *userRepository) Create(ctx context.Context, params repository.CreateUserParams) (*model.User, error) {
	var user *model.User
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var referredBy *int64
		if params.ReferredByCode != "" {
			var referrerID int64
			err := tx.QueryRow(ctx,
				`SELECT telegram_id FROM users WHERE referral_code=$1 AND telegram_id<>$2`,
				params.ReferredByCode, params.TelegramID,
			).Scan(&referrerID)
			if err == nil {
				referredBy = &referrerID
			} else if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
		}

		query := `INSERT INTO users (telegram_id, username, first_name, referral_code, referred_by)
                  VALUES ($1, $2, $3, $4, $5)
                  RETURNING ` + userColumns
		u, err := scanUser(tx.QueryRow(ctx, query,
			params.TelegramID, params.Username, params.FirstName, params.ReferralCode, referredBy))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		if referredBy != nil {
			if _, err := tx.Exec(ctx,
				`INSERT INTO referrals (referrer_id, referred_id) VALUES ($1, $2)`,
				*referredBy, params.TelegramID); err != nil {
				return err
			}
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, order_id, user_id, package_id, package_name, amount, stars_amount,
                      payment_method, user_input, screenshot_path, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.OrderID, &o.UserID, &o.PackageID, &o.PackageName, &o.Amount,
		&o.StarsAmount, &o.Method, &o.UserInput, &o.ScreenshotPath, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Place(ctx context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			main      decimal.Decimal
			stars     int64
			isPremium bool
		)
		err := tx.QueryRow(ctx,
			`SELECT main_balance, stars_balance, is_premium FROM users WHERE telegram_id=$1 FOR UPDATE`,
			params.UserID,
		).Scan(&main, &stars, &isPremium)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		switch params.Method {
		case model.PaymentMethodBalance:
			if main.LessThan(params.Amount) {
				return domainErrors.ErrInsufficientBalance
			}
			if _, err := tx.Exec(ctx,
				`UPDATE users SET main_balance = main_balance - $1, hold_balance = hold_balance + $1
                 WHERE telegram_id=$2`,
				params.Amount, params.UserID); err != nil {
				return err
			}
		case model.PaymentMethodStars:
			if stars < params.StarsAmount {
				return domainErrors.ErrInsufficientStars
			}
			if _, err := tx.Exec(ctx,
				`UPDATE users SET stars_balance = stars_balance - $1 WHERE telegram_id=$2`,
				params.StarsAmount, params.UserID); err != nil {
				return err
			}
		case model.PaymentMethodPremium:
			if !isPremium {
				return domainErrors.ErrPremiumRequired
			}
		}

		query := `INSERT INTO orders (order_id, user_id, package_id, package_name, amount, stars_amount,
                      payment_method, user_input, screenshot_path, status)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                  RETURNING ` + orderColumns
		order, err = scanOrder(tx.QueryRow(ctx, query,
			params.OrderID, params.UserID, params.PackageID, params.PackageName, params.Amount,
			params.StarsAmount, params.Method, params.UserInput, params.ScreenshotPath,
			model.OrderStatusPending))
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, orderID))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Transition(ctx context.Context, orderID string, action model.OrderAction, referralReward decimal.Decimal) (*model.Order, bool, error) {
	var (
		order   *model.Order
		applied bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := scanOrder(tx.QueryRow(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE order_id=$1 FOR UPDATE`, orderID))
		if err != nil {
			return err
		}

		next, ok := current.Status.Next(action)
		if !ok {
			order = current
			return nil
		}

		if _, err := tx.Exec(ctx,
			`UPDATE orders SET status=$1, updated_at=NOW() WHERE order_id=$2`, next, orderID); err != nil {
			return err
		}

		switch next {
		case model.OrderStatusSuccess:
			if err := r.settleSuccess(ctx, tx, current, referralReward); err != nil {
				return err
			}
		case model.OrderStatusCancel:
			if err := r.settleCancel(ctx, tx, current); err != nil {
				return err
			}
		}

		current.Status = next
		order = current
		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return order, applied, nil
}

// settleSuccess releases escrow and pays the one-time referral reward when
// this is the user's first completed order.
func (r *orderRepository) settleSuccess(ctx context.Context, tx pgx.Tx, order *model.Order, reward decimal.Decimal) error {
	var firstCompleted bool
	err := tx.QueryRow(ctx,
		`SELECT first_order_completed FROM users WHERE telegram_id=$1 FOR UPDATE`,
		order.UserID,
	).Scan(&firstCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}

	if order.Method == model.PaymentMethodBalance {
		if _, err := tx.Exec(ctx,
			`UPDATE users SET hold_balance = hold_balance - $1 WHERE telegram_id=$2`,
			order.Amount, order.UserID); err != nil {
			return err
		}
	}

	if firstCompleted {
		return nil
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET first_order_completed = TRUE WHERE telegram_id=$1`, order.UserID); err != nil {
		return err
	}

	var link model.Referral
	err = tx.QueryRow(ctx,
		`SELECT id, referrer_id, referred_id FROM referrals WHERE referred_id=$1 AND rewarded=FALSE`,
		order.UserID,
	).Scan(&link.ID, &link.ReferrerID, &link.ReferredID)
	if err != nil {
		// No unrewarded link means the buyer was not referred.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET referral_balance = referral_balance + $1 WHERE telegram_id=$2`,
		reward, link.ReferrerID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE referrals SET rewarded = TRUE, reward_amount = $1 WHERE id=$2`,
		reward, link.ID); err != nil {
		return err
	}
	return nil
}

// settleCancel reverses the purchase debit. Premium orders carried no
// balance movement, so there is nothing to reverse.
func (r *orderRepository) settleCancel(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	switch order.Method {
	case model.PaymentMethodBalance:
		_, err := tx.Exec(ctx,
			`UPDATE users SET main_balance = main_balance + $1, hold_balance = hold_balance - $1
             WHERE telegram_id=$2`,
			order.Amount, order.UserID)
		return err
	case model.PaymentMethodStars:
		_, err := tx.Exec(ctx,
			`UPDATE users SET stars_balance = stars_balance + $1 WHERE telegram_id=$2`,
			order.StarsAmount, order.UserID)
		return err
	}
	return nil
}

// --- DepositRepository implementation ---

const depositColumns = `id, deposit_id, user_id, amount, method, reference, screenshot_path,
                        status, created_at, updated_at`

func scanDeposit(row pgx.Row) (*model.Deposit, error) {
	var d model.Deposit
	err := row.Scan(&d.ID, &d.DepositID, &d.UserID, &d.Amount, &d.Method, &d.Reference,
		&d.ScreenshotPath, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *depositRepository) Submit(ctx context.Context, params repository.SubmitDepositParams) (*model.Deposit, error) {
	query := `INSERT INTO deposits (deposit_id, user_id, amount, method, reference, screenshot_path, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING ` + depositColumns
	return scanDeposit(r.storage.pool.QueryRow(ctx, query,
		params.DepositID, params.UserID, params.Amount, params.Method, params.Reference,
		params.ScreenshotPath, model.DepositStatusProcessing))
}

func (r *depositRepository) GetByDepositID(ctx context.Context, depositID string) (*model.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_id=$1`
	return scanDeposit(r.storage.pool.QueryRow(ctx, query, depositID))
}

func (r *depositRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectDeposits(rows)
}

func (r *depositRepository) ListRecent(ctx context.Context, limit int) ([]model.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectDeposits(rows)
}

func collectDeposits(rows pgx.Rows) ([]model.Deposit, error) {
	defer rows.Close()

	var result []model.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *depositRepository) Transition(ctx context.Context, depositID string, action model.DepositAction) (*model.Deposit, bool, error) {
	var (
		deposit *model.Deposit
		applied bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := scanDeposit(tx.QueryRow(ctx,
			`SELECT `+depositColumns+` FROM deposits WHERE deposit_id=$1 FOR UPDATE`, depositID))
		if err != nil {
			return err
		}

		next, ok := current.Status.Next(action)
		if !ok {
			deposit = current
			return nil
		}

		if _, err := tx.Exec(ctx,
			`UPDATE deposits SET status=$1, updated_at=NOW() WHERE deposit_id=$2`, next, depositID); err != nil {
			return err
		}

		if next == model.DepositStatusApproved {
			if _, err := tx.Exec(ctx,
				`UPDATE users SET main_balance = main_balance + $1 WHERE telegram_id=$2`,
				current.Amount, current.UserID); err != nil {
				return err
			}
		}

		current.Status = next
		deposit = current
		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return deposit, applied, nil
}

// --- ReferralRepository implementation ---

func (r *referralRepository) Summary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error) {
	var summary model.ReferralSummary
	err := r.storage.pool.QueryRow(ctx,
		`SELECT referral_code, referral_balance FROM users WHERE telegram_id=$1`, telegramID,
	).Scan(&summary.Code, &summary.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	err = r.storage.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE rewarded) FROM referrals WHERE referrer_id=$1`,
		telegramID,
	).Scan(&summary.Total, &summary.Successful)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *referralRepository) Transfer(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var referral decimal.Decimal
		err := tx.QueryRow(ctx,
			`SELECT referral_balance FROM users WHERE telegram_id=$1 FOR UPDATE`, telegramID,
		).Scan(&referral)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if referral.LessThan(amount) {
			return domainErrors.ErrInsufficientBalance
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET referral_balance = referral_balance - $1, main_balance = main_balance + $1
             WHERE telegram_id=$2`,
			amount, telegramID)
		return err
	})
}

// --- CatalogRepository implementation ---

const packageColumns = `id, name, price, stars_price, type, input_label, description,
                        allow_stars, require_premium, active, created_at`

func scanPackage(row pgx.Row) (*model.Package, error) {
	var p model.Package
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.StarsPrice, &p.Type, &p.InputLabel,
		&p.Description, &p.AllowStars, &p.RequirePremium, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepository) ListActive(ctx context.Context) ([]model.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE active ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id int64) (*model.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id=$1`
	return scanPackage(r.storage.pool.QueryRow(ctx, query, id))
}

// --- SettingsRepository implementation ---

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.storage.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key=$1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *settingsRepository) Snapshot(ctx context.Context) (model.Settings, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(model.Settings)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}

// --- StatsRepository implementation ---

func (r *statsRepository) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM users),
        (SELECT COUNT(*) FROM orders),
        (SELECT COUNT(*) FROM orders WHERE status=$1),
        (SELECT COUNT(*) FROM deposits WHERE status=$2)`
	var stats model.AdminStats
	err := r.storage.pool.QueryRow(ctx, query, model.OrderStatusPending, model.DepositStatusProcessing).
		Scan(&stats.TotalUsers, &stats.TotalOrders, &stats.PendingOrders, &stats.ProcessingDeposits)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
