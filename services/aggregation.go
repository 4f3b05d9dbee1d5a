package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tailorshop-backend/models"
)

// ErrInvalidInput indicates a record in an input collection is missing its
// key field. Joins over well-formed rows never fail; a missing foreign-key
// target resolves to nil instead.
var ErrInvalidInput = errors.New("invalid input")

// WorkerLink is one resolved order-worker assignment. Worker is nil when the
// association points at a worker that no longer exists.
type WorkerLink struct {
	OrderID  uint           `json:"order_id"`
	WorkerID uint           `json:"worker_id"`
	Worker   *models.Worker `json:"worker"`
}

// EnrichedOrder is an order with its bill and assigned workers resolved
// in-memory. Bill is nil when the order's bill_id matches no bill.
type EnrichedOrder struct {
	models.Order
	Bill    *models.Bill `json:"bill"`
	Workers []WorkerLink `json:"workers"`
}

// WeeklySummary is one worker's pay position: what their linked orders owe
// them versus what they have already been paid. Pending may be negative when
// a worker was paid in advance.
type WeeklySummary struct {
	Worker       models.Worker          `json:"worker"`
	Orders       []models.Order         `json:"orders"`
	Expenses     []models.WorkerExpense `json:"expenses"`
	TotalWorkPay float64                `json:"total_work_pay"`
	TotalPaid    float64                `json:"total_paid"`
	Pending      float64                `json:"pending"`
}

// ProfitSummary aggregates revenue against shop and worker expenses. All
// monetary fields are rounded to two decimals at return time; intermediate
// sums stay unrounded.
type ProfitSummary struct {
	Date           string  `json:"date"`
	TotalRevenue   float64 `json:"total_revenue"`
	DailyExpenses  float64 `json:"daily_expenses"`
	WorkerExpenses float64 `json:"worker_expenses"`
	NetProfit      float64 `json:"net_profit"`
}

// JoinOrdersWithRelations merges four independently fetched flat tables into
// enriched orders. Bills and workers are indexed by id and associations
// grouped by order id before a single pass over the orders, so the whole join
// is linear in the input sizes. The result preserves the ordering of the
// orders slice and none of the inputs are mutated.
func JoinOrdersWithRelations(orders []models.Order, bills []models.Bill, associations []models.OrderWorkerAssociation, workers []models.Worker) ([]EnrichedOrder, error) {
	billsByID := make(map[uint]models.Bill, len(bills))
	for i, b := range bills {
		if b.ID == 0 {
			return nil, fmt.Errorf("%w: bill at index %d has no id", ErrInvalidInput, i)
		}
		billsByID[b.ID] = b
	}

	workersByID := make(map[uint]models.Worker, len(workers))
	for i, w := range workers {
		if w.ID == 0 {
			return nil, fmt.Errorf("%w: worker at index %d has no id", ErrInvalidInput, i)
		}
		workersByID[w.ID] = w
	}

	assocsByOrder := make(map[uint][]models.OrderWorkerAssociation)
	for i, a := range associations {
		if a.OrderID == 0 || a.WorkerID == 0 {
			return nil, fmt.Errorf("%w: association at index %d is missing order_id or worker_id", ErrInvalidInput, i)
		}
		assocsByOrder[a.OrderID] = append(assocsByOrder[a.OrderID], a)
	}

	enriched := make([]EnrichedOrder, 0, len(orders))
	for i, order := range orders {
		if order.ID == 0 {
			return nil, fmt.Errorf("%w: order at index %d has no id", ErrInvalidInput, i)
		}

		var bill *models.Bill
		if b, ok := billsByID[order.BillID]; ok {
			billCopy := b
			bill = &billCopy
		}

		links := make([]WorkerLink, 0, len(assocsByOrder[order.ID]))
		for _, a := range assocsByOrder[order.ID] {
			var worker *models.Worker
			if w, ok := workersByID[a.WorkerID]; ok {
				workerCopy := w
				worker = &workerCopy
			}
			links = append(links, WorkerLink{
				OrderID:  a.OrderID,
				WorkerID: a.WorkerID,
				Worker:   worker,
			})
		}

		enriched = append(enriched, EnrichedOrder{
			Order:   order,
			Bill:    bill,
			Workers: links,
		})
	}

	return enriched, nil
}

// ComputeWorkerWeeklyPay builds a pay summary for every worker in the input
// set, including workers with no orders or payments, so callers never need an
// existence check on the returned map.
func ComputeWorkerWeeklyPay(workers []models.Worker, associations []models.OrderWorkerAssociation, orders []models.Order, expenses []models.WorkerExpense) (map[uint]WeeklySummary, error) {
	ordersByID := make(map[uint]models.Order, len(orders))
	for i, o := range orders {
		if o.ID == 0 {
			return nil, fmt.Errorf("%w: order at index %d has no id", ErrInvalidInput, i)
		}
		ordersByID[o.ID] = o
	}

	orderIDsByWorker := make(map[uint][]uint)
	for i, a := range associations {
		if a.OrderID == 0 || a.WorkerID == 0 {
			return nil, fmt.Errorf("%w: association at index %d is missing order_id or worker_id", ErrInvalidInput, i)
		}
		orderIDsByWorker[a.WorkerID] = append(orderIDsByWorker[a.WorkerID], a.OrderID)
	}

	expensesByWorker := make(map[uint][]models.WorkerExpense)
	for i, e := range expenses {
		if e.WorkerID == 0 {
			return nil, fmt.Errorf("%w: worker expense at index %d has no worker_id", ErrInvalidInput, i)
		}
		expensesByWorker[e.WorkerID] = append(expensesByWorker[e.WorkerID], e)
	}

	summaries := make(map[uint]WeeklySummary, len(workers))
	for i, w := range workers {
		if w.ID == 0 {
			return nil, fmt.Errorf("%w: worker at index %d has no id", ErrInvalidInput, i)
		}

		workerOrders := make([]models.Order, 0, len(orderIDsByWorker[w.ID]))
		totalWorkPay := 0.0
		for _, orderID := range orderIDsByWorker[w.ID] {
			order, ok := ordersByID[orderID]
			if !ok {
				continue
			}
			workerOrders = append(workerOrders, order)
			totalWorkPay += deref(order.WorkPay)
		}

		workerExpenses := expensesByWorker[w.ID]
		if workerExpenses == nil {
			workerExpenses = []models.WorkerExpense{}
		}
		totalPaid := 0.0
		for _, e := range workerExpenses {
			totalPaid += deref(e.AmountPaid)
		}

		summaries[w.ID] = WeeklySummary{
			Worker:       w,
			Orders:       workerOrders,
			Expenses:     workerExpenses,
			TotalWorkPay: totalWorkPay,
			TotalPaid:    totalPaid,
			Pending:      totalWorkPay - totalPaid,
		}
	}

	return summaries, nil
}

// ComputeProfitSummary sums paid-order revenue against shop and worker
// expenses. Unpaid and partially paid orders contribute nothing to revenue
// regardless of their amount. Callers wanting a single day's figures must
// pre-filter all three collections by date; no date filtering happens here.
func ComputeProfitSummary(orders []models.Order, shopExpenses []models.ShopExpense, workerExpenses []models.WorkerExpense) ProfitSummary {
	revenue := 0.0
	for _, o := range orders {
		if strings.EqualFold(o.PaymentStatus, "paid") {
			revenue += o.TotalAmt
		}
	}

	dailyExpenses := 0.0
	for _, e := range shopExpenses {
		dailyExpenses += deref(e.MaterialCost) + deref(e.MiscellaneousCost) + deref(e.ChaiPaniCost)
	}

	workerTotal := 0.0
	for _, e := range workerExpenses {
		workerTotal += deref(e.AmountPaid)
	}

	return ProfitSummary{
		TotalRevenue:   Round2(revenue),
		DailyExpenses:  Round2(dailyExpenses),
		WorkerExpenses: Round2(workerTotal),
		NetProfit:      Round2(revenue - (dailyExpenses + workerTotal)),
	}
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
