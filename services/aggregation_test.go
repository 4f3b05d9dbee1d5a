package services

import (
	"testing"
	"time"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 {
	return &v
}

func fixtureSets() ([]models.Order, []models.Bill, []models.OrderWorkerAssociation, []models.Worker) {
	orders := []models.Order{
		{ID: 1, BillID: 10, WorkPay: fptr(150)},
		{ID: 2, BillID: 99, WorkPay: fptr(50)},
	}
	bills := []models.Bill{
		{ID: 10, CustomerName: "Asha"},
	}
	associations := []models.OrderWorkerAssociation{
		{OrderID: 1, WorkerID: 5},
	}
	workers := []models.Worker{
		{ID: 5, Name: "Ravi"},
	}
	return orders, bills, associations, workers
}

func TestJoinOrdersWithRelations(t *testing.T) {
	orders, bills, associations, workers := fixtureSets()

	enriched, err := JoinOrdersWithRelations(orders, bills, associations, workers)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	first := enriched[0]
	require.NotNil(t, first.Bill)
	assert.Equal(t, uint(10), first.Bill.ID)
	assert.Equal(t, "Asha", first.Bill.CustomerName)
	require.Len(t, first.Workers, 1)
	assert.Equal(t, uint(1), first.Workers[0].OrderID)
	assert.Equal(t, uint(5), first.Workers[0].WorkerID)
	require.NotNil(t, first.Workers[0].Worker)
	assert.Equal(t, "Ravi", first.Workers[0].Worker.Name)

	// bill 99 does not exist: nil bill, no error
	second := enriched[1]
	assert.Nil(t, second.Bill)
	assert.Empty(t, second.Workers)
}

func TestJoinOrdersWithRelationsPreservesInputOrdering(t *testing.T) {
	orders := []models.Order{{ID: 3}, {ID: 1}, {ID: 2}}

	enriched, err := JoinOrdersWithRelations(orders, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, enriched, 3)
	assert.Equal(t, uint(3), enriched[0].ID)
	assert.Equal(t, uint(1), enriched[1].ID)
	assert.Equal(t, uint(2), enriched[2].ID)
}

func TestJoinOrdersWithRelationsNeverAttachesMismatchedBill(t *testing.T) {
	orders := []models.Order{{ID: 1, BillID: 7}}
	bills := []models.Bill{{ID: 7, CustomerName: "A"}, {ID: 8, CustomerName: "B"}}

	enriched, err := JoinOrdersWithRelations(orders, bills, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, enriched[0].Bill)
	assert.Equal(t, enriched[0].BillID, enriched[0].Bill.ID)
}

func TestJoinOrdersWithRelationsIsIdempotentAndPure(t *testing.T) {
	orders, bills, associations, workers := fixtureSets()

	ordersBefore := append([]models.Order(nil), orders...)
	billsBefore := append([]models.Bill(nil), bills...)
	associationsBefore := append([]models.OrderWorkerAssociation(nil), associations...)
	workersBefore := append([]models.Worker(nil), workers...)

	first, err := JoinOrdersWithRelations(orders, bills, associations, workers)
	require.NoError(t, err)
	second, err := JoinOrdersWithRelations(orders, bills, associations, workers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, ordersBefore, orders)
	assert.Equal(t, billsBefore, bills)
	assert.Equal(t, associationsBefore, associations)
	assert.Equal(t, workersBefore, workers)
}

func TestJoinOrdersWithRelationsRejectsMissingKeys(t *testing.T) {
	_, err := JoinOrdersWithRelations([]models.Order{{ID: 0}}, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = JoinOrdersWithRelations(nil, []models.Bill{{ID: 0}}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = JoinOrdersWithRelations(nil, nil, []models.OrderWorkerAssociation{{OrderID: 1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = JoinOrdersWithRelations(nil, nil, nil, []models.Worker{{Name: "no id"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeWorkerWeeklyPayCoversEveryWorker(t *testing.T) {
	workers := []models.Worker{
		{ID: 5, Name: "Ravi"},
		{ID: 6, Name: "Salim"},
	}
	orders := []models.Order{
		{ID: 1, WorkPay: fptr(150)},
	}
	associations := []models.OrderWorkerAssociation{
		{OrderID: 1, WorkerID: 5},
	}

	summaries, err := ComputeWorkerWeeklyPay(workers, associations, orders, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	linked := summaries[5]
	assert.Equal(t, 150.0, linked.TotalWorkPay)
	require.Len(t, linked.Orders, 1)

	// worker 6 has no orders or payments but still appears, all zeros
	unlinked, ok := summaries[6]
	require.True(t, ok)
	assert.Zero(t, unlinked.TotalWorkPay)
	assert.Zero(t, unlinked.TotalPaid)
	assert.Zero(t, unlinked.Pending)
	assert.Empty(t, unlinked.Orders)
	assert.Empty(t, unlinked.Expenses)
}

func TestComputeWorkerWeeklyPayPendingMayBeNegative(t *testing.T) {
	workers := []models.Worker{{ID: 5, Name: "Ravi"}}
	orders := []models.Order{{ID: 1, WorkPay: fptr(150)}}
	associations := []models.OrderWorkerAssociation{{OrderID: 1, WorkerID: 5}}
	expenses := []models.WorkerExpense{{ID: 1, WorkerID: 5, AmountPaid: fptr(200)}}

	summaries, err := ComputeWorkerWeeklyPay(workers, associations, orders, expenses)
	require.NoError(t, err)

	summary := summaries[5]
	assert.Equal(t, 150.0, summary.TotalWorkPay)
	assert.Equal(t, 200.0, summary.TotalPaid)
	assert.Equal(t, -50.0, summary.Pending)
}

func TestComputeWorkerWeeklyPayTreatsNilAmountsAsZero(t *testing.T) {
	workers := []models.Worker{{ID: 5}}
	orders := []models.Order{
		{ID: 1, WorkPay: nil},
		{ID: 2, WorkPay: fptr(75)},
	}
	associations := []models.OrderWorkerAssociation{
		{OrderID: 1, WorkerID: 5},
		{OrderID: 2, WorkerID: 5},
	}
	expenses := []models.WorkerExpense{
		{ID: 1, WorkerID: 5, AmountPaid: nil},
		{ID: 2, WorkerID: 5, AmountPaid: fptr(25)},
	}

	summaries, err := ComputeWorkerWeeklyPay(workers, associations, orders, expenses)
	require.NoError(t, err)

	summary := summaries[5]
	assert.Equal(t, 75.0, summary.TotalWorkPay)
	assert.Equal(t, 25.0, summary.TotalPaid)
	assert.Equal(t, 50.0, summary.Pending)
}

func TestComputeWorkerWeeklyPaySkipsDanglingOrderLinks(t *testing.T) {
	workers := []models.Worker{{ID: 5}}
	associations := []models.OrderWorkerAssociation{{OrderID: 99, WorkerID: 5}}

	summaries, err := ComputeWorkerWeeklyPay(workers, associations, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, summaries[5].Orders)
	assert.Zero(t, summaries[5].TotalWorkPay)
}

func TestComputeWorkerWeeklyPayRejectsMissingKeys(t *testing.T) {
	_, err := ComputeWorkerWeeklyPay([]models.Worker{{}}, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeWorkerWeeklyPay(nil, nil, nil, []models.WorkerExpense{{ID: 1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeProfitSummaryCountsPaidOrdersOnly(t *testing.T) {
	orders := []models.Order{
		{ID: 1, TotalAmt: 100, PaymentStatus: "paid"},
		{ID: 2, TotalAmt: 200, PaymentStatus: "Paid"},
		{ID: 3, TotalAmt: 500, PaymentStatus: "pending"},
		{ID: 4, TotalAmt: 900, PaymentStatus: "partial"},
	}

	summary := ComputeProfitSummary(orders, nil, nil)
	assert.Equal(t, 300.0, summary.TotalRevenue)
	assert.Equal(t, 300.0, summary.NetProfit)
}

func TestComputeProfitSummarySumsExpenseComponents(t *testing.T) {
	orders := []models.Order{{ID: 1, TotalAmt: 1000, PaymentStatus: "paid"}}
	shopExpenses := []models.ShopExpense{
		{ID: 1, MaterialCost: fptr(100), MiscellaneousCost: fptr(40), ChaiPaniCost: fptr(10)},
		{ID: 2, MaterialCost: nil, MiscellaneousCost: nil, ChaiPaniCost: fptr(5)},
	}
	workerExpenses := []models.WorkerExpense{
		{ID: 1, WorkerID: 5, AmountPaid: fptr(200)},
		{ID: 2, WorkerID: 6, AmountPaid: nil},
	}

	summary := ComputeProfitSummary(orders, shopExpenses, workerExpenses)
	assert.Equal(t, 1000.0, summary.TotalRevenue)
	assert.Equal(t, 155.0, summary.DailyExpenses)
	assert.Equal(t, 200.0, summary.WorkerExpenses)
	assert.Equal(t, 645.0, summary.NetProfit)
}

func TestComputeProfitSummaryNetProfitMayBeNegative(t *testing.T) {
	shopExpenses := []models.ShopExpense{{ID: 1, MaterialCost: fptr(300)}}

	summary := ComputeProfitSummary(nil, shopExpenses, nil)
	assert.Equal(t, -300.0, summary.NetProfit)
}

func TestRound2HalvesAwayFromZero(t *testing.T) {
	// 0.125 and 100.125 are exactly representable, so the half rounds up
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 100.13, Round2(100.125))
	assert.Equal(t, 12.34, Round2(12.344))
	assert.Equal(t, 12.35, Round2(12.346))
}

func TestComputeProfitSummaryRoundsAtReturnTime(t *testing.T) {
	// 100.005 as float64 sits just below the half cent, so it rounds down
	orders := []models.Order{{ID: 1, TotalAmt: 100.005, PaymentStatus: "paid"}}

	summary := ComputeProfitSummary(orders, nil, nil)
	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 100.0, summary.NetProfit)

	// rounding happens once on the sum, not per accumulated term
	many := make([]models.Order, 3)
	for i := range many {
		many[i] = models.Order{ID: uint(i + 1), TotalAmt: 0.333, PaymentStatus: "paid"}
	}
	summary = ComputeProfitSummary(many, nil, nil)
	assert.Equal(t, 1.0, summary.TotalRevenue)
}

func TestComputeProfitSummaryDateIsCallerOwned(t *testing.T) {
	summary := ComputeProfitSummary(nil, nil, nil)
	assert.Empty(t, summary.Date)
	assert.Zero(t, summary.TotalRevenue)

	// the engine ignores order dates entirely; callers pre-filter
	orders := []models.Order{
		{ID: 1, TotalAmt: 10, PaymentStatus: "paid", OrderDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, TotalAmt: 20, PaymentStatus: "paid", OrderDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
	}
	summary = ComputeProfitSummary(orders, nil, nil)
	assert.Equal(t, 30.0, summary.TotalRevenue)
}
