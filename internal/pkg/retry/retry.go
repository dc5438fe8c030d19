package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig is opt-in: the default of one attempt makes no retries.
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"1"`
	Delay    time.Duration `env:"DELAY" envDefault:"500ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"5s"`
}

// ToRetryOptions converts the config. Zero attempts means a single try rather
// than retry-go's "retry forever".
func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	attempts := rc.Attempts
	if attempts == 0 {
		attempts = 1
	}

	return []retry.Option{
		retry.Attempts(attempts),
		retry.MaxDelay(rc.MaxDelay),
		retry.Delay(rc.Delay),
		retry.LastErrorOnly(true),
	}
}
