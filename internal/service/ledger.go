package service

import (
	"cmp"
	"slices"

	"github.com/fsdevblog/tubecash/internal/domain"
)

// LedgerSummary агрегаты выписки. Чистая функция от набора транзакций,
// никогда не кешируется.
type LedgerSummary struct {
	TotalIncome  int64
	TotalExpense int64
}

// Summarize считает доход и расход по всему набору, независимо от активного фильтра
// отображения. Учитываются только approved транзакции: pending и rejected записи
// не двигают итоги до сеттлмента.
func Summarize(transactions []domain.Transaction) LedgerSummary {
	var sum LedgerSummary
	for _, t := range transactions {
		if t.Status != domain.StatusApproved {
			continue
		}
		switch domain.CategoryOf(t.Type) {
		case domain.CategoryIncome:
			sum.TotalIncome += t.Amount
		case domain.CategoryExpense:
			sum.TotalExpense += t.Amount
		}
	}
	return sum
}

// FilterByCategory возвращает транзакции выбранной категории от новых к старым.
// Равные created_at упорядочиваются по id, чтобы результат был детерминирован.
// Транзакции неизвестного типа попадают в domain.CategoryOther и видны и там, и под all.
func FilterByCategory(transactions []domain.Transaction, category domain.Category) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if category == domain.CategoryAll || domain.CategoryOf(t.Type) == category {
			filtered = append(filtered, t)
		}
	}
	slices.SortStableFunc(filtered, func(a, b domain.Transaction) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return filtered
}
