package normalize

import "time"

// minHoursSincePost floors the recency denominator. Records without a
// parseable timestamp resolve to the floor instead of going missing,
// which keeps velocity finite but treats them as just posted; callers
// ranking on velocity should be aware of that bias.
const minHoursSincePost = 0.01

// metrics holds the derived engagement fields for one record.
type metrics struct {
	EngagementScore float64
	HoursSincePost  float64
	Velocity        float64
}

// engagementWeights: likes 1, comments 2, shares 3, saves 2, upvotes 1.
// The weighting and the plays-based normalization are a fixed scoring
// policy shared by every platform; downstream consumers depend on the
// exact values.
func computeMetrics(likes, comments, shares, saves, upvotes, plays OptInt, posted OptTime, ref time.Time) metrics {
	l := nonNegative(likes)
	c := nonNegative(comments)
	s := nonNegative(shares)
	sv := nonNegative(saves)
	u := nonNegative(upvotes)
	p := nonNegative(plays)

	hours := 0.0
	if posted.Present {
		hours = ref.Sub(posted.Value).Hours()
	}
	if hours < minHoursSincePost {
		hours = minHoursSincePost
	}

	denom := p
	if denom == 0 {
		denom = 1
	}

	weighted := l + 2*c + 3*s + 2*sv + u
	total := l + c + s + sv + u

	return metrics{
		EngagementScore: float64(weighted) / float64(denom),
		HoursSincePost:  hours,
		Velocity:        float64(total) / hours,
	}
}

func nonNegative(o OptInt) int {
	v := o.OrZero()
	if v < 0 {
		return 0
	}
	return v
}
