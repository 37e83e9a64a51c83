// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential checks, account registration and bearer tokens.

# Password Digests

Passwords are stored as the hex sha256 digest of the plaintext:

	digest := auth.HashPassword("secret")  // 64 hex characters

The digest is deterministic so the bootstrap admin written by schema init and
every later login agree without a stored salt. Plaintext is never stored or
compared.

# Service

	svc := auth.NewService(store)

	user, ok, err := svc.Authenticate(ctx, "alice", "pw")
	if err != nil {
		// storage failure
	}
	if !ok {
		// wrong username or password
	}

	id, err := svc.Register(ctx, "bob", "pw")

Register rejects empty input, any case variant of "admin" (wrapping
models.ErrReservedUsername) and existing usernames (wrapping
models.ErrDuplicateUsername). Username comparison is case-sensitive.

# Bearer Tokens

After a successful login an HS256 JWT is issued:

	issuer, err := auth.NewIssuer(secret, 24*time.Hour)
	token, expiresAt, err := issuer.Issue(user)
	claims, err := issuer.Parse(token)

The subject holds the user id; role and username travel as extra claims.
*/
package auth
