// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// defined in internal/store to fulfill application features.
//
// Services receive their dependencies through constructor injection and
// apply transactional boundaries with store.RunInTransaction whenever an
// operation reads and writes more than one row. The question generation and
// answer checking flow lives in the learning subpackage; token handling and
// password hashing live in auth.
package service
