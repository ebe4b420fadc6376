package params

import (
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultSite is the Stack Exchange site every query targets.
const DefaultSite = "stackoverflow"

const (
	minPage     = 1
	minPageSize = 1
	maxPageSize = 100
)

// QuestionsParams holds the optional inputs of the questions method.
// A nil field, or an empty Filter/Tagged, leaves the key out.
type QuestionsParams struct {
	// Filter is a server-issued filter id, passed through untouched.
	Filter   string
	Page     any
	PageSize any
	FromDate any
	ToDate   any
	Order    any
	// Min and Max are timestamps for date-bound sorts and integers for
	// count-bound sorts. They are dropped for every other sort.
	Min  any
	Max  any
	Sort any
	// Tagged is a semicolon separated tag list; results match all tags.
	Tagged string
}

// Normalizer turns user input into validated query parameters.
type Normalizer struct {
	log  zerolog.Logger
	site string
}

type Option func(*Normalizer)

func WithSite(site string) Option {
	return func(n *Normalizer) {
		if site != "" {
			n.site = site
		}
	}
}

func New(log zerolog.Logger, opts ...Option) *Normalizer {
	n := &Normalizer{
		log:  log.With().Str("component", "params").Logger(),
		site: DefaultSite,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// BuildQuestions validates p and returns the parameters for the questions
// method. The first invalid field aborts the build.
func (n *Normalizer) BuildQuestions(p QuestionsParams) (*Values, error) {
	v := NewValues()
	v.Set("site", n.site)

	// sort decides how min and max are read, so it goes first
	var sort SortMethod
	if p.Sort != nil {
		s, err := NormalizeSort(p.Sort)
		if err != nil {
			return nil, err
		}
		sort = s
		v.Set("sort", string(sort))
	}

	if p.Filter != "" {
		v.Set("filter", p.Filter)
	}

	if p.Page != nil {
		page, err := NormalizeInteger("page", p.Page, Lower(minPage))
		if err != nil {
			return nil, err
		}
		v.Set("page", strconv.Itoa(page))
	}

	if p.PageSize != nil {
		size, err := NormalizeInteger("pagesize", p.PageSize, Lower(minPageSize), Upper(maxPageSize))
		if err != nil {
			return nil, err
		}
		v.Set("pagesize", strconv.Itoa(size))
	}

	for _, f := range []struct {
		key   string
		value any
	}{{"fromdate", p.FromDate}, {"todate", p.ToDate}} {
		if f.value == nil {
			continue
		}
		ts, err := NormalizeTimestamp(f.key, f.value)
		if err != nil {
			return nil, err
		}
		v.Set(f.key, strconv.FormatInt(ts, 10))
	}

	if p.Order != nil {
		order, err := NormalizeOrder(p.Order)
		if err != nil {
			return nil, err
		}
		v.Set("order", string(order))
	}

	for _, f := range []struct {
		key   string
		value any
	}{{"min", p.Min}, {"max", p.Max}} {
		if f.value == nil {
			continue
		}
		bound, ok, err := n.bound(sort, f.key, f.value)
		if err != nil {
			return nil, err
		}
		if ok {
			v.Set(f.key, bound)
		}
	}

	if p.Tagged != "" {
		v.Set("tagged", p.Tagged)
	}

	n.log.Debug().Str("query", v.Encode()).Msg("built questions parameters")
	return v, nil
}

// bound reads a min/max value according to the sort's bound policy.
// ok is false when the value is ignored.
func (n *Normalizer) bound(sort SortMethod, key string, value any) (string, bool, error) {
	policy := BoundNone
	if sort != "" {
		policy = sort.BoundPolicy()
	}

	switch policy {
	case BoundDate:
		ts, err := NormalizeTimestamp(key, value)
		if err != nil {
			return "", false, err
		}
		return strconv.FormatInt(ts, 10), true, nil
	case BoundCount:
		i, err := NormalizeInteger(key, value)
		if err != nil {
			return "", false, err
		}
		return strconv.Itoa(i), true, nil
	}

	n.log.Warn().
		Str("param", key).
		Interface("value", value).
		Str("sort", string(sort)).
		Msg("parameter ignored: the sort method defines no min/max bounds")
	return "", false, nil
}
