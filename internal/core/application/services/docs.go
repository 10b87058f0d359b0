// Package services contains the application use cases of the shop system.
//
// Each use case follows the same shape: load the aggregate through a
// repository port, invoke a domain mutation, persist the result, and
// propagate domain failures unmodified. Services depend only on the
// repository ports and on injectable environment primitives (Clock,
// IDGenerator, user.PasswordHasher), never on concrete adapters.
//
// Error contract (checked with errors.Is against the errs sentinels):
//   - errs.ErrObjectNotFound: the addressed entity does not exist
//   - errs.ErrConflict: the operation clashes with existing state
//   - errs.ErrInvalidTransition: an order operation forbidden by its status
//   - errs.ErrValueIsInvalid / errs.ErrValueIsRequired: input rejected
//
// All failures are atomic: nothing is persisted on the failing path.
package services
