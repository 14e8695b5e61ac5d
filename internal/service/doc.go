// Package service contains application services that orchestrate domain
// logic, stores, and transactions on behalf of the API layer. Services own
// the business workflows; stores own persistence; the risk package owns the
// pure scoring computation.
package service
