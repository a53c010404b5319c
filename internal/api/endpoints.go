package api

import "net/url"

// Resource paths on the remote service, relative to the configured base
// URL (which already carries the /api prefix).
const (
	transactionsPath = "/transactions"
	goalsPath        = "/goals"
	authLoginPath    = "/auth/login"
	authRegisterPath = "/auth/register"
	authMePath       = "/auth/me"
)

func transactionPath(id string) string {
	return transactionsPath + "/" + url.PathEscape(id)
}

func goalPath(id string) string {
	return goalsPath + "/" + url.PathEscape(id)
}

// goalContributionsPath addresses the sub-resource that advances a
// goal's saved amount; the response is the whole updated goal.
func goalContributionsPath(id string) string {
	return goalPath(id) + "/transactions"
}
