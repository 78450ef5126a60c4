package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"fmt"
	"hash"
	"sync"
	"time"

	"github.com/jhahn/go-totp/pkg/base32"
)

// Algorithm selects the HMAC hash function used for code generation.
type Algorithm string

const (
	// AlgorithmSHA1 uses HMAC-SHA1, the RFC 6238 default.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses HMAC-SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses HMAC-SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// Common errors returned by the engine.
var (
	// ErrEmptyKey indicates SetKey was called with an empty key string.
	ErrEmptyKey = errors.New("totp: key must not be empty")
	// ErrKeyNotFound indicates no key is stored for the requested slot.
	// The wrapped message carries the slot identifier.
	ErrKeyNotFound = errors.New("totp: no key for slot")
	// ErrUnsupportedAlgorithm indicates the configured algorithm has no
	// registered hash function.
	ErrUnsupportedAlgorithm = errors.New("totp: unsupported algorithm")
)

// Config holds the initial engine settings. Zero-valued fields take the
// defaults: Window 10, Step 30 seconds, Digits 6, AlgorithmSHA1.
type Config struct {
	// Window is the number of time steps checked on each side of the
	// current counter during validation.
	Window int
	// Step is the duration of one counter tick in seconds.
	Step int
	// Digits is the number of decimal digits in generated codes.
	Digits int
	// Algorithm selects the HMAC hash function.
	Algorithm Algorithm
}

// Engine generates and validates time-based one-time passwords for a table
// of independently keyed slots. Each slot holds one base32-encoded secret;
// an optional per-call derivation parameter turns a slot's key into a
// purpose-specific sub-key via HMAC, so one stored secret can back many
// contexts without storing each derived key.
//
// It is safe for concurrent use. Settings and keys are engine-wide mutable
// state; the engine holds no global state, so independently configured
// instances can coexist in one process.
type Engine struct {
	mu        sync.RWMutex
	window    int
	step      int
	digits    int
	algorithm Algorithm
	keys      map[string]string
}

// NewEngine creates an engine with the supplied configuration, applying
// defaults for zero-valued fields.
func NewEngine(cfg Config) *Engine {
	if cfg.Window == 0 {
		cfg.Window = 10
	}
	if cfg.Step == 0 {
		cfg.Step = 30
	}
	if cfg.Digits == 0 {
		cfg.Digits = 6
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmSHA1
	}

	return &Engine{
		window:    cfg.Window,
		step:      cfg.Step,
		digits:    cfg.Digits,
		algorithm: cfg.Algorithm,
		keys:      make(map[string]string),
	}
}

// SetWindow sets the number of time steps checked on each side of the
// current counter during validation.
func (e *Engine) SetWindow(steps int) {
	e.mu.Lock()
	e.window = steps
	e.mu.Unlock()
}

// SetStep sets the duration of one counter tick in seconds.
func (e *Engine) SetStep(seconds int) {
	e.mu.Lock()
	e.step = seconds
	e.mu.Unlock()
}

// SetDigits sets the number of decimal digits in generated codes.
func (e *Engine) SetDigits(digits int) {
	e.mu.Lock()
	e.digits = digits
	e.mu.Unlock()
}

// SetAlgorithm selects the HMAC hash function. The name is not validated
// here; an unsupported algorithm surfaces as ErrUnsupportedAlgorithm from
// Generate or Validate.
func (e *Engine) SetAlgorithm(algorithm Algorithm) {
	e.mu.Lock()
	e.algorithm = algorithm
	e.mu.Unlock()
}

// Digits returns the configured code length.
func (e *Engine) Digits() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.digits
}

// SetKey stores a base32-encoded secret under the given slot, overwriting
// any previous key for that slot. The key string is not validated against
// the base32 alphabet; foreign characters are dropped at decode time. An
// empty key returns ErrEmptyKey and leaves the store unmodified.
func (e *Engine) SetKey(slot, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	e.mu.Lock()
	e.keys[slot] = key
	e.mu.Unlock()
	return nil
}

// Generate returns the code for the slot at the current time. An optional
// derivation parameter produces the code for that slot's derived sub-key
// instead of the base key.
func (e *Engine) Generate(slot string, param ...string) (string, error) {
	return e.GenerateAt(slot, time.Now(), param...)
}

// GenerateAt returns the code for the slot at the given time.
func (e *Engine) GenerateAt(slot string, at time.Time, param ...string) (string, error) {
	key, cfg, err := e.resolve(slot, param)
	if err != nil {
		return "", err
	}
	return hotpCode(cfg.newHash, key, stepCounter(at, cfg.step), cfg.digits), nil
}

// Validate reports whether token matches the slot's code within the
// configured window around the current time. A non-matching token is a
// normal false result, never an error; errors are reserved for unknown
// slots and unsupported algorithms.
//
// Comparison is plain string equality. Deployments hardening against local
// timing side channels can compare the token against Generate output with
// crypto/subtle instead.
func (e *Engine) Validate(slot, token string, param ...string) (bool, error) {
	return e.ValidateAt(slot, token, time.Now(), param...)
}

// ValidateAt reports whether token matches the slot's code within the
// configured window around the given time.
func (e *Engine) ValidateAt(slot, token string, at time.Time, param ...string) (bool, error) {
	key, cfg, err := e.resolve(slot, param)
	if err != nil {
		return false, err
	}

	counter := stepCounter(at, cfg.step)
	for offset := -int64(cfg.window); offset <= int64(cfg.window); offset++ {
		if hotpCode(cfg.newHash, key, counter+offset, cfg.digits) == token {
			return true, nil
		}
	}
	return false, nil
}

// settings is a consistent snapshot of the engine configuration, taken
// under the read lock so generation runs without holding it.
type settings struct {
	window  int
	step    int
	digits  int
	newHash func() hash.Hash
}

// resolve snapshots the configuration and computes the composite key for a
// single call: the slot's decoded base key, or HMAC(base key, param) when a
// derivation parameter is present.
func (e *Engine) resolve(slot string, param []string) ([]byte, settings, error) {
	e.mu.RLock()
	stored, ok := e.keys[slot]
	cfg := settings{window: e.window, step: e.step, digits: e.digits}
	algorithm := e.algorithm
	e.mu.RUnlock()

	if !ok {
		return nil, cfg, fmt.Errorf("%w: %q", ErrKeyNotFound, slot)
	}

	newHash, err := hashFunc(algorithm)
	if err != nil {
		return nil, cfg, err
	}
	cfg.newHash = newHash

	key := base32.Decode(stored)
	if len(param) > 0 {
		mac := hmac.New(newHash, key)
		mac.Write([]byte(param[0]))
		key = mac.Sum(nil)
	}
	return key, cfg, nil
}

// GenerateKey returns a new cryptographically random 160-bit secret,
// base32-encoded, uppercase and unpadded, suitable for SetKey.
func GenerateKey() (string, error) {
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("totp: failed to generate random key: %w", err)
	}
	return base32.Encode(secret), nil
}
