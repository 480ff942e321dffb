package redis

import (
	"context"
	"fmt"
	"strconv"
)

// HealthDetails pings the server and reports the address and connection pool counters
func (c *Client) HealthDetails(ctx context.Context) (map[string]string, error) {
	details := map[string]string{
		"address":  fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.Ping(ctx); err != nil {
		return details, fmt.Errorf("redis ping failed: %w", err)
	}

	stats := c.rdb.PoolStats()
	details["total_connections"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_connections"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["pool_hits"] = strconv.FormatUint(uint64(stats.Hits), 10)
	details["pool_timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)
	return details, nil
}
