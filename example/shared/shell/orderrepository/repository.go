package orderrepository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // postgres dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // sqlite3 dialect
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository/internal/adapters"
)

// Dialect names the SQL dialect of the underlying database.
type Dialect string

// Supported dialects.
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite3  Dialect = "sqlite3"
)

const (
	tableOrders     = "orders"
	tableOrderItems = "order_items"

	colID         = "id"
	colCustomerID = "customer_id"
	colTotal      = "total"
	colOrderID    = "order_id"
	colProductID  = "product_id"
	colName       = "name"
	colPrice      = "price"
	colQuantity   = "quantity"
	colPosition   = "position"

	operationCreate  = "create"
	operationUpdate  = "update"
	operationFind    = "find"
	operationFindAll = "find all"

	logMsgOperationFailed = "order repository operation failed"
	logMsgSQL             = "order repository operation: executing sql"
	logAttrOperation      = "operation"
	logAttrOrderID        = "order_id"
	logAttrQuery          = "query"
	logAttrError          = "error"
)

// Sentinel errors of the order repository.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrBuildingQueryFailed = errors.New("building query failed")
	ErrCreatingOrderFailed = errors.New("creating order failed")
	ErrUpdatingOrderFailed = errors.New("updating order failed")
	ErrFindingOrderFailed  = errors.New("finding order failed")
	ErrScanningRowFailed   = errors.New("scanning row failed")
	ErrInconsistentOrder   = errors.New("stored order is inconsistent")
	ErrNotifyingFailed     = errors.New("notifying order event failed")
	ErrNilDatabase         = errors.New("database must not be nil")
	ErrNilDispatcher       = errors.New("dispatcher must not be nil")
	ErrNilLogger           = errors.New("logger must not be nil")
	ErrUnsupportedDialect  = errors.New("unsupported sql dialect")
)

// Repository stores orders and their items.
type Repository struct {
	db         adapters.DBAdapter
	dialect    goqu.DialectWrapper
	dispatcher *eventdispatcher.Dispatcher
	logger     eventdispatcher.Logger
}

// NewRepositoryFromPGXPool creates a Repository for PostgreSQL using a pgxpool.Pool.
func NewRepositoryFromPGXPool(pool *pgxpool.Pool, options ...Option) (*Repository, error) {
	if pool == nil {
		return nil, ErrNilDatabase
	}

	return newRepository(adapters.NewPGXAdapter(pool), DialectPostgres, options...)
}

// NewRepositoryFromSQLDB creates a Repository using a sql.DB of the given dialect.
func NewRepositoryFromSQLDB(db *sql.DB, dialect Dialect, options ...Option) (*Repository, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}

	return newRepository(adapters.NewSQLAdapter(db), dialect, options...)
}

// NewRepositoryFromSQLX creates a Repository using a sqlx.DB of the given dialect.
func NewRepositoryFromSQLX(db *sqlx.DB, dialect Dialect, options ...Option) (*Repository, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}

	return newRepository(adapters.NewSQLXAdapter(db), dialect, options...)
}

func newRepository(db adapters.DBAdapter, dialect Dialect, options ...Option) (*Repository, error) {
	if dialect != DialectPostgres && dialect != DialectSQLite3 {
		return nil, ErrUnsupportedDialect
	}

	r := &Repository{
		db:      db,
		dialect: goqu.Dialect(string(dialect)),
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Create stores a new order with all of its items in one transaction
// and notifies core.OrderCreated afterward.
func (r *Repository) Create(ctx context.Context, order *core.Order) error {
	insertOrder, err := r.buildInsertOrderQuery(order)
	if err != nil {
		return errors.Join(ErrBuildingQueryFailed, err)
	}

	insertItems, err := r.buildInsertItemsQuery(order)
	if err != nil {
		return errors.Join(ErrBuildingQueryFailed, err)
	}

	err = r.db.WithinTx(ctx, func(tx adapters.DBExecutor) error {
		return r.execAll(ctx, tx, insertOrder, insertItems)
	})
	if err != nil {
		r.logError(operationCreate, order.ID(), err)
		return errors.Join(ErrCreatingOrderFailed, err)
	}

	return notify(ctx, r.dispatcher, core.BuildOrderCreated(order))
}

// Update replaces the stored order row and its items in one transaction
// and notifies core.OrderUpdated afterward.
// Updating an order which was never created fails with ErrOrderNotFound.
func (r *Repository) Update(ctx context.Context, order *core.Order) error {
	updateOrder, err := r.buildUpdateOrderQuery(order)
	if err != nil {
		return errors.Join(ErrBuildingQueryFailed, err)
	}

	deleteItems, err := r.buildDeleteItemsQuery(order.ID())
	if err != nil {
		return errors.Join(ErrBuildingQueryFailed, err)
	}

	insertItems, err := r.buildInsertItemsQuery(order)
	if err != nil {
		return errors.Join(ErrBuildingQueryFailed, err)
	}

	err = r.db.WithinTx(ctx, func(tx adapters.DBExecutor) error {
		r.logSQL(updateOrder)

		result, execErr := tx.Exec(ctx, updateOrder)
		if execErr != nil {
			return execErr
		}

		affected, execErr := result.RowsAffected()
		if execErr != nil {
			return execErr
		}

		if affected == 0 {
			return ErrOrderNotFound
		}

		return r.execAll(ctx, tx, deleteItems, insertItems)
	})
	if err != nil {
		r.logError(operationUpdate, order.ID(), err)
		return errors.Join(ErrUpdatingOrderFailed, err)
	}

	return notify(ctx, r.dispatcher, core.BuildOrderUpdated(order))
}

// Find loads one order with its items.
func (r *Repository) Find(ctx context.Context, id core.OrderIDString) (*core.Order, error) {
	selectOrder, err := r.buildSelectOrdersQuery(goqu.C(colID).Eq(id))
	if err != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	selectItems, err := r.buildSelectItemsQuery(goqu.C(colOrderID).Eq(id))
	if err != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	orders, err := r.load(ctx, selectOrder, selectItems)
	if err != nil {
		r.logError(operationFind, id, err)
		return nil, errors.Join(ErrFindingOrderFailed, err)
	}

	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}

	return orders[0], nil
}

// FindAll loads all orders with their items, sorted by order id.
func (r *Repository) FindAll(ctx context.Context) ([]*core.Order, error) {
	selectOrders, err := r.buildSelectOrdersQuery()
	if err != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	selectItems, err := r.buildSelectItemsQuery()
	if err != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	orders, err := r.load(ctx, selectOrders, selectItems)
	if err != nil {
		r.logError(operationFindAll, "", err)
		return nil, errors.Join(ErrFindingOrderFailed, err)
	}

	return orders, nil
}

func (r *Repository) execAll(ctx context.Context, executor adapters.DBExecutor, queries ...string) error {
	for _, query := range queries {
		r.logSQL(query)

		if _, err := executor.Exec(ctx, query); err != nil {
			return err
		}
	}

	return nil
}

type orderRow struct {
	id         string
	customerID string
	total      int64
}

type itemRow struct {
	id        string
	orderID   string
	productID string
	name      string
	price     int64
	quantity  int
}

func (r *Repository) load(ctx context.Context, selectOrders, selectItems string) ([]*core.Order, error) {
	orderRows, err := queryAll(ctx, r, selectOrders, func(rows adapters.DBRows) (orderRow, error) {
		var row orderRow
		err := rows.Scan(&row.id, &row.customerID, &row.total)

		return row, err
	})
	if err != nil {
		return nil, err
	}

	if len(orderRows) == 0 {
		return nil, nil
	}

	itemRows, err := queryAll(ctx, r, selectItems, func(rows adapters.DBRows) (itemRow, error) {
		var row itemRow
		err := rows.Scan(&row.id, &row.orderID, &row.productID, &row.name, &row.price, &row.quantity)

		return row, err
	})
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]core.OrderItem, len(orderRows))
	for _, row := range itemRows {
		item, itemErr := core.NewOrderItem(row.id, row.name, row.price, row.productID, row.quantity)
		if itemErr != nil {
			return nil, errors.Join(ErrInconsistentOrder, itemErr)
		}

		itemsByOrder[row.orderID] = append(itemsByOrder[row.orderID], item)
	}

	orders := make([]*core.Order, 0, len(orderRows))
	for _, row := range orderRows {
		order, orderErr := core.NewOrder(row.id, row.customerID, itemsByOrder[row.id])
		if orderErr != nil {
			return nil, errors.Join(ErrInconsistentOrder, orderErr)
		}

		if order.Total() != row.total {
			return nil, ErrInconsistentOrder
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func queryAll[T any](ctx context.Context, r *Repository, query string, scan func(rows adapters.DBRows) (T, error)) ([]T, error) {
	r.logSQL(query)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []T
	for rows.Next() {
		row, scanErr := scan(rows)
		if scanErr != nil {
			return nil, errors.Join(ErrScanningRowFailed, scanErr)
		}

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func notify[P any](ctx context.Context, dispatcher *eventdispatcher.Dispatcher, payload P) error {
	if dispatcher == nil {
		return nil
	}

	if err := eventdispatcher.Notify(ctx, dispatcher, eventdispatcher.BuildEvent(payload)); err != nil {
		return errors.Join(ErrNotifyingFailed, err)
	}

	return nil
}

func (r *Repository) logSQL(query string) {
	if r.logger != nil {
		r.logger.Debug(logMsgSQL, logAttrQuery, query)
	}
}

func (r *Repository) logError(operation string, orderID core.OrderIDString, err error) {
	if r.logger == nil {
		return
	}

	r.logger.Error(logMsgOperationFailed,
		logAttrOperation, operation,
		logAttrOrderID, orderID,
		logAttrError, err.Error())
}
