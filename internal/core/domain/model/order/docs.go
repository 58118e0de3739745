// Package order contains the Order aggregate, the central entity of the
// system. An order owns its line items, pricing breakdown, payment state,
// append-only status history and the lifecycle state machine:
//
//	Placed ──> Accepted ──> Preparing ──> OutForDelivery ──> Delivered
//	   │           │            │               │
//	   └───────────┴────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The happy path is strictly linear
// with no skipping; Cancelled is reachable from every non-terminal state.
// A rating may be attached only once an order is Delivered.
//
// Monetary amounts are whole currency units. The total is fixed at
// placement (total = subtotal + delivery fee - discount) and never
// recomputed afterwards; catalog price changes do not affect existing
// orders because item prices are snapshotted into the aggregate.
package order
