package app

import "github.com/Tanmay000009/swe-fastfood/internal/domain"

// OrderLine is one submitted line of a new order. UnitPrice is taken from the
// client payload, not re-read from the menu; totals reflect the prices the
// customer saw when ordering.
type OrderLine struct {
	MenuItemID string
	UnitPrice  int64
	Quantity   int
}

// ComputeTotal sums UnitPrice*Quantity over lines, in minor currency units.
// Zero-quantity lines are dropped and reported back so the caller can persist
// only the lines that count. Negative quantities and prices are rejected.
func ComputeTotal(lines []OrderLine) (total int64, kept []OrderLine, err error) {
	kept = make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 0 {
			return 0, nil, domain.ErrInvalidQuantity
		}
		if line.UnitPrice < 0 {
			return 0, nil, domain.ErrInvalidPrice
		}
		if line.Quantity == 0 {
			continue
		}
		total += line.UnitPrice * int64(line.Quantity)
		kept = append(kept, line)
	}
	return total, kept, nil
}
