// Package accounts provides a minimal user-account and role-authorization
// service: signup, login, per-request header credentials, and role-gated
// administrative operations (list accounts, delete an account).
//
// Roles:
//   - Accounts carry one of three ordered roles (user < admin < owner).
//     Capability gates reduce to a single Role.IsAtLeast comparison against
//     the tier a route requires.
//
// Credential verification:
//   - AccountProvider resolves a username/password pair into an Account
//     principal. Passwords are stored as bcrypt hashes and verified with a
//     constant-time comparison; the hash never appears in JSON output.
//
// Bootstrap:
//   - Seeder ensures the distinguished "Owner" account exists before the
//     service accepts traffic. Seeding is idempotent and leans on the
//     store's username uniqueness constraint under races. The Owner account
//     can never be deleted, regardless of the caller's role.
package accounts
