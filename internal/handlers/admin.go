package handlers

import (
	"solsight/internal/repositories"
	"solsight/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// CacheStats reports Redis pool statistics. Operator tier only.
func CacheStats(c *fiber.Ctx) error {
	if repositories.CacheService == nil {
		return utils.InternalError(c, "cache not initialized")
	}
	poolStats := repositories.CacheService.PoolStats()

	return utils.Success(c, fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}

// CacheFlush empties the cache. Operator tier only; prices and metadata are
// refetched on demand afterwards.
func CacheFlush(c *fiber.Ctx) error {
	if repositories.CacheService == nil {
		return utils.InternalError(c, "cache not initialized")
	}
	if err := repositories.CacheService.FlushAll(c.Context()); err != nil {
		return utils.InternalError(c, "failed to flush cache")
	}
	return utils.Success(c, fiber.Map{
		"message": "cache flushed",
	})
}
