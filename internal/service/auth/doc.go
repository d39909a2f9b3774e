// Package auth implements password hashing, bearer token issuance and
// verification, and resolution of a bearer token to the user it was issued for.
package auth
