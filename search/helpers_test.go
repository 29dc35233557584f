package search

import "github.com/katalvlaran/orderpath/money"

func moneyDecimal(s string) (money.Decimal, error) {
	return money.NewDecimal(s, CostScale)
}
