package repoargs

import (
	"time"

	"github.com/fsdevblog/tubecash/internal/domain"
)

// CountTransactions фильтр подсчета транзакций аккаунта. Rejected записи не считаются:
// отклоненная попытка не должна занимать место в дневном лимите.
type CountTransactions struct {
	AccountID int64
	Type      domain.TransactionType
	Since     time.Time
}
