package repoargs

type RepositoryName string

const (
	PointsTransactionRepoName RepositoryName = "points_transaction"
)
