package service

import (
	"sort"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// CartLineChange is the new quantity of one cart line after an order has been
// placed. A zero Quantity means the line is deleted.
type CartLineChange struct {
	ItemID   int64
	Quantity int
}

// Deleted reports whether the change removes the line.
func (c CartLineChange) Deleted() bool {
	return c.Quantity == 0
}

// ReconciliationPlan lists the cart lines to touch and the units that could
// not be matched against the cart.
type ReconciliationPlan struct {
	Changes   []CartLineChange
	Shortfall int
}

// PlanCartReconciliation deducts every order line from the cart lines of the
// same product. Order lines are processed one at a time against the running
// quantities, so a later order line sees what earlier ones consumed. For each
// order line the candidates are taken largest quantity first, ties going to
// the lowest line id, and each gives up min(remaining, quantity). Lines that
// reach zero are deleted, others keep the reduced quantity. A product missing
// from the cart is skipped and units the cart cannot cover are counted as
// shortfall instead of failing.
func PlanCartReconciliation(orderItems []models.OrderItem, cartItems []models.CartItem) ReconciliationPlan {
	lines := make([]models.CartItem, len(cartItems))
	copy(lines, cartItems)

	touched := make(map[int]bool)
	plan := ReconciliationPlan{}

	for _, orderItem := range orderItems {
		var candidates []int

		for i := range lines {
			if lines[i].ProductID == orderItem.ProductID && lines[i].Quantity > 0 {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) == 0 {
			continue
		}

		sort.SliceStable(candidates, func(a, b int) bool {
			la, lb := lines[candidates[a]], lines[candidates[b]]
			if la.Quantity != lb.Quantity {
				return la.Quantity > lb.Quantity
			}

			return la.ID < lb.ID
		})

		remaining := orderItem.Quantity

		for _, idx := range candidates {
			if remaining <= 0 {
				break
			}

			deduct := min(remaining, lines[idx].Quantity)
			lines[idx].Quantity -= deduct
			remaining -= deduct
			touched[idx] = true
		}

		plan.Shortfall += remaining
	}

	for idx := range touched {
		plan.Changes = append(plan.Changes, CartLineChange{ItemID: lines[idx].ID, Quantity: lines[idx].Quantity})
	}

	sort.Slice(plan.Changes, func(a, b int) bool {
		return plan.Changes[a].ItemID < plan.Changes[b].ItemID
	})

	return plan
}
