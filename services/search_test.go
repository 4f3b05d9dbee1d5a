package services

import (
	"testing"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workerFields(w models.Worker) []string {
	return []string{w.Name, w.Phone}
}

func TestFilterBySearchTermBlankTermReturnsInputUnchanged(t *testing.T) {
	workers := []models.Worker{{ID: 1, Name: "Ravi"}, {ID: 2, Name: "Salim"}}

	for _, term := range []string{"", "   ", "\t"} {
		out := FilterBySearchTerm(workers, term, workerFields)
		require.Len(t, out, 2)
		// same backing array, not a copy
		assert.Same(t, &workers[0], &out[0])
	}
}

func TestFilterBySearchTermNoMatchReturnsEmpty(t *testing.T) {
	workers := []models.Worker{{ID: 1, Name: "Ravi"}}

	out := FilterBySearchTerm(workers, "XYZ_NOT_PRESENT", workerFields)
	assert.Empty(t, out)
}

func TestFilterBySearchTermIsCaseInsensitive(t *testing.T) {
	workers := []models.Worker{
		{ID: 1, Name: "Ravi Kumar"},
		{ID: 2, Name: "Salim"},
	}

	out := FilterBySearchTerm(workers, "rAvI", workerFields)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestFilterBySearchTermMatchesAnyField(t *testing.T) {
	workers := []models.Worker{
		{ID: 1, Name: "Ravi", Phone: "9876543210"},
		{ID: 2, Name: "Salim", Phone: "9123456789"},
	}

	out := FilterBySearchTerm(workers, "912", workerFields)
	require.Len(t, out, 1)
	assert.Equal(t, "Salim", out[0].Name)
}

func TestFilterBySearchTermDoesNotMutateInput(t *testing.T) {
	workers := []models.Worker{{ID: 1, Name: "Ravi"}, {ID: 2, Name: "Salim"}}
	before := append([]models.Worker(nil), workers...)

	FilterBySearchTerm(workers, "salim", workerFields)
	assert.Equal(t, before, workers)
}

func TestCompareBillNumbers(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"BILL-9", "BILL-10", -1},
		{"BILL-10", "BILL-9", 1},
		{"BILL-10", "BILL-10", 0},
		{"2", "10", -1},
		{"0042", "42", 0},
		{"BILL-2-X", "BILL-2-Y", -1},
		{"A", "B", -1},
		{"BILL-1", "BILL-1-A", -1},
	}

	for _, tc := range cases {
		got := CompareBillNumbers(tc.a, tc.b)
		switch {
		case tc.want < 0:
			assert.Negative(t, got, "%q vs %q", tc.a, tc.b)
		case tc.want > 0:
			assert.Positive(t, got, "%q vs %q", tc.a, tc.b)
		default:
			assert.Zero(t, got, "%q vs %q", tc.a, tc.b)
		}
	}
}

func TestSortOrdersByBillNumber(t *testing.T) {
	orders := []models.Order{
		{ID: 1, BillNumber: "BILL-10"},
		{ID: 2, BillNumber: "BILL-2"},
		{ID: 3, BillNumber: "BILL-1"},
	}

	SortOrdersByBillNumber(orders)

	assert.Equal(t, "BILL-1", orders[0].BillNumber)
	assert.Equal(t, "BILL-2", orders[1].BillNumber)
	assert.Equal(t, "BILL-10", orders[2].BillNumber)
}
