package orderrepository

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

func (r *Repository) buildInsertOrderQuery(order *core.Order) (string, error) {
	sqlQuery, _, err := r.dialect.
		Insert(tableOrders).
		Rows(goqu.Record{
			colID:         order.ID(),
			colCustomerID: order.CustomerID(),
			colTotal:      order.Total(),
		}).
		ToSQL()

	return sqlQuery, err
}

func (r *Repository) buildInsertItemsQuery(order *core.Order) (string, error) {
	items := order.Items()
	rows := make([]any, 0, len(items))

	for position, item := range items {
		rows = append(rows, goqu.Record{
			colID:        item.ID(),
			colOrderID:   order.ID(),
			colProductID: item.ProductID(),
			colName:      item.Name(),
			colPrice:     item.Price(),
			colQuantity:  item.Quantity(),
			colPosition:  position,
		})
	}

	sqlQuery, _, err := r.dialect.Insert(tableOrderItems).Rows(rows...).ToSQL()

	return sqlQuery, err
}

func (r *Repository) buildUpdateOrderQuery(order *core.Order) (string, error) {
	sqlQuery, _, err := r.dialect.
		Update(tableOrders).
		Set(goqu.Record{
			colCustomerID: order.CustomerID(),
			colTotal:      order.Total(),
		}).
		Where(goqu.C(colID).Eq(order.ID())).
		ToSQL()

	return sqlQuery, err
}

func (r *Repository) buildDeleteItemsQuery(orderID core.OrderIDString) (string, error) {
	sqlQuery, _, err := r.dialect.
		Delete(tableOrderItems).
		Where(goqu.C(colOrderID).Eq(orderID)).
		ToSQL()

	return sqlQuery, err
}

func (r *Repository) buildSelectOrdersQuery(conditions ...exp.Expression) (string, error) {
	sqlQuery, _, err := r.dialect.
		From(tableOrders).
		Select(colID, colCustomerID, colTotal).
		Where(conditions...).
		Order(goqu.C(colID).Asc()).
		ToSQL()

	return sqlQuery, err
}

func (r *Repository) buildSelectItemsQuery(conditions ...exp.Expression) (string, error) {
	sqlQuery, _, err := r.dialect.
		From(tableOrderItems).
		Select(colID, colOrderID, colProductID, colName, colPrice, colQuantity).
		Where(conditions...).
		Order(goqu.C(colOrderID).Asc(), goqu.C(colPosition).Asc()).
		ToSQL()

	return sqlQuery, err
}
