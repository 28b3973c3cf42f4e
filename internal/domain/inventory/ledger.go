// Package inventory holds the stock/valuation transition logic: the
// rules that keep product stock levels consistent with the lifecycle
// of purchase and sales orders. Only transitions into or out of a
// realized status (received purchase, completed sale) move stock;
// everything else is a no-op.
package inventory

import (
	"github.com/google/uuid"

	"github.com/inventorypro/backend/internal/domain/catalog"
)

// Movement classifies a status transition by its stock effect.
// At most one movement is evaluated per update call; historical
// transitions are never replayed cumulatively.
type Movement int

const (
	// MovementNone means the transition does not touch stock
	MovementNone Movement = iota
	// MovementApply means the order's effect is applied to stock
	MovementApply
	// MovementReverse means the order's previously applied effect is undone
	MovementReverse
)

// String returns the string representation of Movement
func (m Movement) String() string {
	switch m {
	case MovementApply:
		return "apply"
	case MovementReverse:
		return "reverse"
	}
	return "none"
}

// MovementBetween determines the single stock movement implied by a
// status change. On creation there is no prior status and callers pass
// oldRealized=false.
func MovementBetween(oldRealized, newRealized bool) Movement {
	switch {
	case !oldRealized && newRealized:
		return MovementApply
	case oldRealized && !newRealized:
		return MovementReverse
	}
	return MovementNone
}

// AdjustmentOutcome reports what actually happened to a product's
// stock during an adjustment, so callers can observe floor saturation
// and unresolved references instead of inferring them.
type AdjustmentOutcome string

const (
	// OutcomeApplied means the full requested delta was applied
	OutcomeApplied AdjustmentOutcome = "applied"
	// OutcomeAppliedWithFloor means a decrement hit the zero floor and
	// less than the requested quantity was removed
	OutcomeAppliedWithFloor AdjustmentOutcome = "applied_with_floor"
	// OutcomeSkippedMissingReference means the referenced product no
	// longer exists and the line had no effect
	OutcomeSkippedMissingReference AdjustmentOutcome = "skipped_missing_reference"
)

// Adjustment describes the result of one product-level stock mutation
type Adjustment struct {
	ProductID uuid.UUID         `json:"product_id"`
	Quantity  int64             `json:"quantity"`
	Movement  Movement          `json:"-"`
	Outcome   AdjustmentOutcome `json:"outcome"`
}

// StockLine is one product movement to evaluate, independent of order type
type StockLine struct {
	ProductID uuid.UUID
	Quantity  int64
}

// ProductLookup resolves a product by ID from the set loaded for the
// current transaction. A false return marks a missing reference.
type ProductLookup func(id uuid.UUID) (*catalog.Product, bool)

// Ledger applies status-driven stock movements to catalog products.
// It mutates the products it is handed; persisting them together with
// the triggering order is the caller's transaction.
type Ledger struct{}

// NewLedger creates a new Ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// ApplyPurchase evaluates a purchase order transition against its
// product. MovementApply adds the quantity; MovementReverse removes it
// with floor saturation.
func (l *Ledger) ApplyPurchase(movement Movement, line StockLine, lookup ProductLookup) Adjustment {
	adj := Adjustment{ProductID: line.ProductID, Quantity: line.Quantity, Movement: movement}
	if movement == MovementNone {
		adj.Outcome = OutcomeApplied
		adj.Quantity = 0
		return adj
	}

	product, ok := lookup(line.ProductID)
	if !ok {
		adj.Outcome = OutcomeSkippedMissingReference
		return adj
	}

	switch movement {
	case MovementApply:
		product.IncreaseStock(line.Quantity)
		adj.Outcome = OutcomeApplied
	case MovementReverse:
		if product.DecreaseStockSaturating(line.Quantity) {
			adj.Outcome = OutcomeAppliedWithFloor
		} else {
			adj.Outcome = OutcomeApplied
		}
	}
	return adj
}

// ApplySale evaluates a sales order transition against each of its
// lines independently. MovementApply removes stock with floor
// saturation; MovementReverse adds it back. Lines whose product has
// been deleted are skipped and reported as such.
func (l *Ledger) ApplySale(movement Movement, lines []StockLine, lookup ProductLookup) []Adjustment {
	if movement == MovementNone {
		return nil
	}

	adjustments := make([]Adjustment, 0, len(lines))
	for _, line := range lines {
		adj := Adjustment{ProductID: line.ProductID, Quantity: line.Quantity, Movement: movement}

		product, ok := lookup(line.ProductID)
		if !ok {
			adj.Outcome = OutcomeSkippedMissingReference
			adjustments = append(adjustments, adj)
			continue
		}

		switch movement {
		case MovementApply:
			if product.DecreaseStockSaturating(line.Quantity) {
				adj.Outcome = OutcomeAppliedWithFloor
			} else {
				adj.Outcome = OutcomeApplied
			}
		case MovementReverse:
			product.IncreaseStock(line.Quantity)
			adj.Outcome = OutcomeApplied
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments
}

// TouchedProductIDs returns the IDs of products whose stock actually
// changed, deduplicated, preserving first-seen order.
func TouchedProductIDs(adjustments []Adjustment) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(adjustments))
	ids := make([]uuid.UUID, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.Outcome == OutcomeSkippedMissingReference || adj.Movement == MovementNone {
			continue
		}
		if _, dup := seen[adj.ProductID]; dup {
			continue
		}
		seen[adj.ProductID] = struct{}{}
		ids = append(ids, adj.ProductID)
	}
	return ids
}
