// backend/src/parsers/orders.go
package parsers

import (
	"fmt"
	"log"
	"strings"

	"github.com/username/affiliatereports/backend/src/models"
)

// orderColumns are the contract columns of the orders table. Anything else in
// the sheet is carried through in Order.Extra untouched.
var orderColumns = []string{
	"Order Number", "Order Date", "Affiliate ID", "Order Amount", "Currency", "Order Status",
}

// ParseOrders reads the raw orders table. The affiliate ID is kept exactly as
// found (including empty or "none"); normalization is the loader's job.
func ParseOrders(path string) ([]models.Order, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	idx, err := headerIndex(header, orderColumns...)
	if err != nil {
		return nil, fmt.Errorf("orders %s: %w", path, err)
	}

	contract := make(map[string]bool, len(orderColumns))
	for _, name := range orderColumns {
		contract[name] = true
	}

	var orders []models.Order
	for _, row := range rows[1:] {
		date, err := parseDate(cell(row, idx["Order Date"]))
		if err != nil {
			log.Printf("Orders parser: skipping row with invalid order date %q (Order Number: %s)",
				cell(row, idx["Order Date"]), cell(row, idx["Order Number"]))
			continue
		}
		amount, err := parseDecimal(cell(row, idx["Order Amount"]))
		if err != nil {
			log.Printf("Orders parser: skipping row with invalid order amount %q (Order Number: %s)",
				cell(row, idx["Order Amount"]), cell(row, idx["Order Number"]))
			continue
		}

		// Passthrough columns outside the contract.
		var extra map[string]string
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" || contract[name] {
				continue
			}
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[name] = cell(row, i)
		}

		orders = append(orders, models.Order{
			OrderNumber: cell(row, idx["Order Number"]),
			OrderDate:   date,
			AffiliateID: cell(row, idx["Affiliate ID"]),
			Amount:      amount,
			Currency:    cell(row, idx["Currency"]),
			Status:      cell(row, idx["Order Status"]),
			Extra:       extra,
		})
	}

	return orders, nil
}
