package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BillJamesM/UdubHacks/internal/catalog"
	"github.com/BillJamesM/UdubHacks/internal/ledger"
	"github.com/BillJamesM/UdubHacks/internal/logger"
	"github.com/BillJamesM/UdubHacks/internal/reservation"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	TrustProxy    bool             // true if running behind a trusted reverse proxy
	Reservations  *reservation.Service
	Catalog       *catalog.Catalog
	Ledger        *ledger.Ledger
	RedisClient   *redis.Client // nil when persistence is disabled
	ReloadTrigger chan struct{} // Channel to trigger manual catalog reload

	RateLimitBurst  int
	RateLimitPerMin int
}
