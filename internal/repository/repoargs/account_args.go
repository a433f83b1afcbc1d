package repoargs

type CreateAccount struct {
	Username     string
	Password     string
	ReferralCode string
	PlanName     string
}
