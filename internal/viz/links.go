package viz

import (
	"errors"
	"fmt"
	"time"
)

// DefaultBaseURL is the production MANIC visualization dashboard.
// The orgId parameter is part of the dashboard address, so derived
// parameters are appended with "&".
const DefaultBaseURL = "https://viz.manic.caida.org/d/cmCi50Umz/all-links-from-vp-network-to-neighbor-network?orgId=2"

// linkDateFormat is the compact YYYYMMDD format the dashboard expects for
// its from and to parameters.
const linkDateFormat = "20060102"

// ErrBadTimestamp is returned when an event timestamp does not start with
// an ISO date (YYYY-MM-DD), so no event day can be derived from it.
var ErrBadTimestamp = errors.New("event timestamp does not start with an ISO date")

// LinkPair holds the two visualization links derived from one event.
type LinkPair struct {
	// Day is the day-granularity link: a 3-day range anchored at the
	// event day. The dashboard requires a range rather than a single
	// point, so the range extends 2 days past the event day.
	Day string

	// Month is the month-granularity link: a 30-day range centered on
	// the event day, 15 days on each side.
	Month string
}

// Builder formats visualization links against a fixed dashboard URL.
type Builder struct {
	// baseURL is the dashboard address the derived parameters are
	// appended to.
	baseURL string
}

// Option configures a Builder.
type Option func(*Builder)

// WithBaseURL points the builder at a different dashboard.
func WithBaseURL(base string) Option {
	return func(b *Builder) {
		b.baseURL = base
	}
}

// NewBuilder creates a Builder targeting the production dashboard.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{baseURL: DefaultBaseURL}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build derives the day- and month-granularity links for an event.
//
// The event day is the date prefix of the timestamp. The day link spans
// [day, day+2d]; the month link spans [day-15d, day+15d]. Both links share
// the dashboard URL and the var-network/var-asn parameters and differ only
// in from/to. The derivation is deterministic: identical inputs always
// produce byte-identical links.
func (b *Builder) Build(timestamp, nearASN, farASN string) (LinkPair, error) {
	day, err := eventDay(timestamp)
	if err != nil {
		return LinkPair{}, err
	}

	dayFrom := day
	dayTo := day.AddDate(0, 0, 2)

	monthFrom := day.AddDate(0, 0, -15)
	monthTo := monthFrom.AddDate(0, 0, 30)

	return LinkPair{
		Day:   b.format(dayFrom, dayTo, nearASN, farASN),
		Month: b.format(monthFrom, monthTo, nearASN, farASN),
	}, nil
}

// format renders one link. Parameter order is fixed (from, to, var-network,
// var-asn) so links are reproducible byte for byte.
func (b *Builder) format(from, to time.Time, nearASN, farASN string) string {
	return fmt.Sprintf("%s&from=%s&to=%s&var-network=%s&var-asn=%s",
		b.baseURL,
		from.Format(linkDateFormat),
		to.Format(linkDateFormat),
		nearASN,
		farASN,
	)
}

// eventDay parses the date prefix of an assertion timestamp.
func eventDay(timestamp string) (time.Time, error) {
	if len(timestamp) < 10 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, timestamp)
	}

	day, err := time.Parse("2006-01-02", timestamp[:10])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, timestamp)
	}
	return day, nil
}
