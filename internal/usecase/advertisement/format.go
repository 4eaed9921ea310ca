package advertisement

import (
	"fmt"
	"math"

	"github.com/velvetdk/marketplace-backend/internal/domain"
)

// FormatTimeUntilExpiry renders the expiry countdown the way every surface
// displays it. The hour component is the whole-hour remainder after full days.
func FormatTimeUntilExpiry(status *domain.AdvertisementStatus) string {
	if status == nil || status.IsExpired {
		return "Expired"
	}

	wholeHours := int(math.Floor(status.HoursUntilExpiry))
	if status.DaysUntilExpiry > 0 {
		return fmt.Sprintf("%s %s",
			pluralize(status.DaysUntilExpiry, "day"),
			pluralize(wholeHours%24, "hour"))
	}
	if wholeHours > 0 {
		return pluralize(wholeHours, "hour")
	}
	return "Less than an hour"
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
