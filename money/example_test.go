package money_test

import (
	"fmt"

	"github.com/katalvlaran/orderpath/money"
)

// Converting 100 USD to EUR at a fixed rate, HALF_UP rounded to 2 places.
func Example() {
	rate, _ := money.NewDecimal("0.92", 2)
	r, _ := money.NewExchangeRate("USD", "EUR", rate)

	spend := money.MustMoney("USD", "100", 0)
	received, _ := r.Apply(spend.Amount)

	fmt.Println(received.String())
	// Output: 92.00
}
