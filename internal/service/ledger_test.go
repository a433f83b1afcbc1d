package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/tubecash/internal/domain"
)

type LedgerTestSuite struct {
	suite.Suite
	transactions []domain.Transaction
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.transactions = []domain.Transaction{
		{ID: 1, CreatedAt: base, Type: domain.TransactionDeposit, Status: domain.StatusApproved, Amount: 500},
		{ID: 2, CreatedAt: base.Add(time.Hour), Type: domain.TransactionWithdraw, Status: domain.StatusApproved, Amount: 200},
		{ID: 3, CreatedAt: base.Add(2 * time.Hour), Type: domain.TransactionEarning, Status: domain.StatusPending, Amount: 50},
	}
}

func (s *LedgerTestSuite) TestSummarize() {
	sum := Summarize(s.transactions)

	// pending earning итоги не двигает
	s.EqualValues(500, sum.TotalIncome)
	s.EqualValues(200, sum.TotalExpense)

	// повторный прогон по тому же набору дает тот же результат
	s.Equal(sum, Summarize(s.transactions))
}

func (s *LedgerTestSuite) TestSummarizeRejected() {
	rejected := append(s.transactions, domain.Transaction{
		ID: 4, CreatedAt: time.Now(), Type: domain.TransactionDeposit, Status: domain.StatusRejected, Amount: 9000,
	})

	sum := Summarize(rejected)
	s.EqualValues(500, sum.TotalIncome)
	s.EqualValues(200, sum.TotalExpense)
}

func (s *LedgerTestSuite) TestFilterByCategory() {
	cases := []struct {
		name     string
		category domain.Category
		wantIDs  []int64
	}{
		{name: "all newest first", category: domain.CategoryAll, wantIDs: []int64{3, 2, 1}},
		{name: "income", category: domain.CategoryIncome, wantIDs: []int64{3, 1}},
		{name: "expense", category: domain.CategoryExpense, wantIDs: []int64{2}},
		{name: "other is empty for known types", category: domain.CategoryOther, wantIDs: []int64{}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			filtered := FilterByCategory(s.transactions, t.category)
			ids := make([]int64, 0, len(filtered))
			for _, tr := range filtered {
				ids = append(ids, tr.ID)
			}
			s.Equal(t.wantIDs, ids)
		})
	}
}

func (s *LedgerTestSuite) TestFilterUnknownTypeFallsIntoOther() {
	withUnknown := append(s.transactions, domain.Transaction{
		ID: 4, CreatedAt: time.Now(), Type: "cashback", Status: domain.StatusApproved, Amount: 10,
	})

	other := FilterByCategory(withUnknown, domain.CategoryOther)
	s.Require().Len(other, 1)
	s.EqualValues(4, other[0].ID)

	// неизвестный тип не пропадает и из общего списка
	s.Len(FilterByCategory(withUnknown, domain.CategoryAll), 4)
	// и не просачивается в income/expense
	s.Len(FilterByCategory(withUnknown, domain.CategoryIncome), 2)
	s.Len(FilterByCategory(withUnknown, domain.CategoryExpense), 1)
}

func (s *LedgerTestSuite) TestFilterTiebreakByID() {
	at := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	same := []domain.Transaction{
		{ID: 10, CreatedAt: at, Type: domain.TransactionDeposit, Status: domain.StatusApproved, Amount: 500},
		{ID: 12, CreatedAt: at, Type: domain.TransactionDeposit, Status: domain.StatusApproved, Amount: 600},
		{ID: 11, CreatedAt: at, Type: domain.TransactionDeposit, Status: domain.StatusApproved, Amount: 700},
	}

	filtered := FilterByCategory(same, domain.CategoryAll)
	s.EqualValues(12, filtered[0].ID)
	s.EqualValues(11, filtered[1].ID)
	s.EqualValues(10, filtered[2].ID)
}
