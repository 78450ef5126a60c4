// Package totp provides multi-slot TOTP (RFC 6238) generation and
// validation with optional per-call key derivation.
//
// An Engine holds a table of base32-encoded secrets keyed by caller-chosen
// slot names, so one instance can serve several independently keyed
// purposes (say, account registration and password recovery). Codes are
// computed with the RFC 4226 HOTP truncation over a time-derived counter
// and validated against a sliding window that tolerates clock drift.
//
// # Basic Usage
//
//	engine := totp.NewEngine(totp.Config{})
//
//	key, err := totp.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := engine.SetKey("registration", key); err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := engine.Generate("registration")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := engine.Validate("registration", code)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Derivation
//
// An optional derivation parameter binds a slot's secret to a specific
// context without storing a key per context. The composite key is
// HMAC(base key, parameter); distinct parameters yield distinct codes:
//
//	code, err := engine.Generate("recovery", userID)
//	ok, err := engine.Validate("recovery", code, userID)
//
// # Configuration
//
// Window (validation steps each side of now, default 10), step (seconds
// per counter tick, default 30), digits (code length, default 6) and
// algorithm (SHA1, SHA256 or SHA512, default SHA1) are engine-wide
// settings, adjustable at any time through the Set* methods.
//
// # Scope
//
// The engine keeps no state beyond the in-memory key table. Persisting
// keys, transporting codes, enrollment (otpauth:// URIs, QR codes) and
// replay tracking are the caller's responsibility; in particular a code
// remains valid for the whole window, so callers needing single-use
// semantics must record consumed codes themselves.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Setters take a write lock;
// generation and validation snapshot the configuration under a read lock
// and run the HMAC computations outside it.
package totp
