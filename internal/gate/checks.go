package gate

import (
	"fmt"
	"strings"

	"aurora/internal/config"
	"aurora/pkg/serrors"
)

// FromConfig builds the configured dependency checks in declaration order.
// The check set is configuration rather than a hard-coded deployment profile,
// so worker and API containers can gate on different dependency sets.
func FromConfig(cfg *config.Config) ([]Check, error) {
	checks := make([]Check, 0, len(cfg.Gate.Checks))

	for _, name := range cfg.Gate.Checks {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "redis":
			addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
			checks = append(checks, NewRedisCheck(addr, cfg.Gate.ProbeTimeout))
		case "postgres":
			check, err := NewPostgresCheck(PostgresOptions{
				Username: cfg.Database.Username,
				Password: cfg.Database.Password,
				Host:     cfg.Database.Host,
				Port:     cfg.Database.Port,
				Database: cfg.Database.DatabaseName,
				SslMode:  cfg.Database.SslMode,
			}, cfg.Gate.ProbeTimeout)
			if err != nil {
				return nil, fmt.Errorf("could not create postgres check: %w", err)
			}

			checks = append(checks, check)
		default:
			return nil, serrors.With(serrors.ErrBadRequest, "unknown gate check %q", name)
		}
	}

	return checks, nil
}
