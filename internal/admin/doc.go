// Package admin gates read access to the receipt history behind a
// shared secret.
//
// The gate is a single static secret compared by exact string equality.
// There is no hashing, no per-operator identity, no attempt counting,
// and no lockout - intentional gaps for a one-person shop register, not
// oversights, and they should not be hardened silently. A production
// deployment should source the secret from a securely provisioned
// channel instead of the config file.
package admin
