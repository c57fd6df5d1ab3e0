package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Favorite operation outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeConflict  = "conflict"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
	ActionAdd        = "add"
	ActionRemove     = "remove"
	KindPlanet       = "planet"
	KindCharacter    = "character"
	CacheResultHit   = "hit"
	CacheResultMiss  = "miss"
	CacheResultError = "error"
)

var (
	// FavoriteOperations counts add/remove favorite calls by kind and outcome.
	FavoriteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_favorite_operations_total",
		Help: "Favorite add/remove operations by kind, action and outcome",
	}, []string{"kind", "action", "outcome"})

	// CacheLookups counts cache-aside lookups by key prefix and result.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_cache_lookups_total",
		Help: "Cache-aside lookups by key prefix and result",
	}, []string{"prefix", "result"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "holocron_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// RecordFavorite increments the favorite operation counter.
func RecordFavorite(kind, action, outcome string) {
	FavoriteOperations.WithLabelValues(kind, action, outcome).Inc()
}
