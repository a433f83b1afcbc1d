package repoargs

type RepositoryName string

const (
	AccountRepoName     RepositoryName = "account"
	TransactionRepoName RepositoryName = "transaction"
	PlanRepoName        RepositoryName = "plan"
)
