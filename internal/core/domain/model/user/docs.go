// Package user provides the User aggregate for the shop system.
//
// The aggregate holds identity, normalized contact data and the one-way
// password hash; the hashing primitive itself is injected through the
// PasswordHasher interface so the domain carries no cryptography.
// Field mutation happens through an explicit UpdateRequest patch type
// rather than free-form attribute setting, keeping id and createdAt
// immutable by construction.
package user
