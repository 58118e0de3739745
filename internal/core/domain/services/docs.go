// Package services contains stateless domain services: pricing rules applied
// at checkout, aggregation of customer ratings into a partner score, and the
// dispatcher that picks a partner for an unassigned order.
package services
