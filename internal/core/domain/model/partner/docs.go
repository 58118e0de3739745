// Package partner contains the DeliveryPartner aggregate.
//
// A delivery partner is a person who picks up placed orders and delivers
// them to customers. The aggregate tracks the partner's profile, their
// availability for new work, the aggregated rating customers have given
// them, lifetime delivery counters, and the last reported location.
//
// Availability is the coordination flag of the assignment flow: a partner
// becomes busy when an order is assigned to them and available again when
// the order reaches a terminal status. Deactivated partners stay out of
// assignment entirely until an administrator re-activates them.
package partner
