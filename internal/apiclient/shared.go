package apiclient

import (
	"sync"
	"sync/atomic"

	"github.com/Netflix/go-env"
)

// State reports whether the shared client has been built
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedReady  atomic.Bool
)

// Shared returns the process-wide API client.
//
// The first call reads the environment (see ConfigFromEnv) and builds the client with the PassThrough interceptor installed.
// Later calls return the same *Client; the environment is not read again.
// Concurrent first calls block until the single construction has finished.
func Shared() *Client {
	sharedOnce.Do(func() {
		sharedClient = New(ConfigFromEnv(), WithResponseInterceptor(PassThrough))
		sharedReady.Store(true)
	})
	return sharedClient
}

// CurrentState reports whether Shared has built the client yet
func CurrentState() State {
	if sharedReady.Load() {
		return StateReady
	}
	return StateUninitialized
}

// clientEnvironment lists the variables that can override the API base URL.
// NEXT_PUBLIC_API_BASE_URL is the name used by the previous frontend deployment and is only consulted when API_BASE_URL is not set.
type clientEnvironment struct {
	BaseURL       string `env:"API_BASE_URL"`
	LegacyBaseURL string `env:"NEXT_PUBLIC_API_BASE_URL"`
}

// ConfigFromEnv returns DefaultConfig with the base URL taken from the environment when set and non-empty
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	var e clientEnvironment
	if _, err := env.UnmarshalFromEnviron(&e); err != nil {
		return cfg
	}

	switch {
	case e.BaseURL != "":
		cfg.BaseURL = e.BaseURL
	case e.LegacyBaseURL != "":
		cfg.BaseURL = e.LegacyBaseURL
	}

	return cfg
}
