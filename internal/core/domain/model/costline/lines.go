package costline

import (
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvoicedLineRemoval is returned when removing a line that already reached an invoice.
var ErrInvoicedLineRemoval = errs.NewBusinessRuleViolationError("invoiced cost lines cannot be removed")

// Lines is the set of cost lines exclusively owned by one parent.
// The zero value is an empty, usable set.
type Lines struct {
	items []*CostLine
}

// NewLines wraps restored lines. Every line must be constructed and ids must not repeat.
func NewLines(items ...*CostLine) (Lines, error) {
	var l Lines
	for _, item := range items {
		if err := l.Add(item); err != nil {
			return Lines{}, err
		}
	}
	return l, nil
}

func (l *Lines) Add(line *CostLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if _, err := l.Find(line.ID()); err == nil {
		return errs.NewObjectAlreadyExistsError("cost line", line.ID())
	}
	l.items = append(l.items, line)
	return nil
}

func (l *Lines) Find(id kernel.UUID) (*CostLine, error) {
	for _, item := range l.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("cost line", id)
}

// Remove deletes a line unless it is invoiced.
func (l *Lines) Remove(id kernel.UUID) error {
	line, err := l.Find(id)
	if err != nil {
		return err
	}
	if line.Invoiced() {
		return ErrInvoicedLineRemoval
	}
	l.items = slices.DeleteFunc(l.items, func(item *CostLine) bool {
		return item.ID().IsEqual(id)
	})
	return nil
}

// All returns the lines ordered by sequence, insertion order breaking ties.
func (l Lines) All() []*CostLine {
	sorted := slices.Clone(l.items)
	slices.SortStableFunc(sorted, func(a, b *CostLine) int {
		return a.Sequence() - b.Sequence()
	})
	return sorted
}

func (l Lines) Len() int {
	return len(l.items)
}

// Total is the sum of every line amount.
func (l Lines) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.Amount())
	}
	return total
}

// TotalOf sums the amounts of lines with the given cost type.
func (l Lines) TotalOf(t Type) decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items {
		if item.Type() == t {
			total = total.Add(item.Amount())
		}
	}
	return total
}
