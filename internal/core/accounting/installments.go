// Package accounting holds the pure calculation core of the finance
// tracker: installment expansion, due-date arithmetic, the account query
// engine and the dashboard aggregation rules. Nothing here touches the
// database or the HTTP layer.
package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SplitAmount divides a total into count equal installment shares,
// rounded to 2 decimal places. The final share absorbs the rounding
// remainder so the shares always sum exactly to the requested total.
func SplitAmount(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", count)
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive, got %s", total.String())
	}

	shares := make([]decimal.Decimal, count)
	if count == 1 {
		shares[0] = total
		return shares, nil
	}

	share := total.DivRound(decimal.NewFromInt(int64(count)), 2)
	for i := 0; i < count-1; i++ {
		shares[i] = share
	}
	shares[count-1] = total.Sub(share.Mul(decimal.NewFromInt(int64(count - 1))))
	return shares, nil
}

// AnchorDay returns the day-of-month every installment of a batch should
// land on, captured once from the first due date.
func AnchorDay(firstDueDate time.Time) int {
	return firstDueDate.Day()
}

// InstallmentDueDate returns the due date of the installment at the
// given 0-based index: index calendar months after the first due date,
// with the day-of-month forced to anchorDay. When the target month is
// too short for the anchor (31st in a 30-day month) the day is clamped
// to the month's last valid day.
func InstallmentDueDate(firstDueDate time.Time, index int, anchorDay int) time.Time {
	year, month := firstDueDate.Year(), int(firstDueDate.Month())+index
	// Normalize month overflow before clamping, otherwise Jan 31 + 1
	// month would roll through March via time.AddDate.
	year += (month - 1) / 12
	month = (month-1)%12 + 1

	day := anchorDay
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		firstDueDate.Hour(), firstDueDate.Minute(), firstDueDate.Second(),
		firstDueDate.Nanosecond(), firstDueDate.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
