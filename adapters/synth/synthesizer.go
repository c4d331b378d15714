package synth

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"datacraft/domain/schema"

	"github.com/google/uuid"
)

// Synthesizer produces one synthetic value per column descriptor. It owns no
// state beyond the random stream handed to it, so a seeded stream makes the
// whole generation run reproducible.
type Synthesizer struct {
	rng    *rand.Rand
	anchor time.Time
}

// NewSynthesizer creates a synthesizer drawing from the given random stream.
// The anchor is the reference "now" for date synthesis; it is truncated to
// midnight UTC so repeated runs within a day stay byte-identical.
func NewSynthesizer(rng *rand.Rand, anchor time.Time) *Synthesizer {
	return &Synthesizer{
		rng:    rng,
		anchor: anchor.UTC().Truncate(24 * time.Hour),
	}
}

// Value synthesizes one value for the column. The switch is total over the
// known column types; unknown types (including "text" from the prompt
// service) fall back to a generic lexical token.
func (s *Synthesizer) Value(col schema.Column) any {
	opts := col.Options

	switch col.Type {
	case schema.TypeName:
		return s.fullName()
	case schema.TypeEmail:
		return s.email()
	case schema.TypePhone:
		return s.phone()
	case schema.TypeNumber, schema.TypeInteger:
		return s.intBetween(int(opts.MinOr(1)), int(opts.MaxOr(100)))
	case schema.TypeFloat:
		return roundTo(s.floatBetween(opts.MinOr(0), opts.MaxOr(100)), opts.DecimalsOr(2))
	case schema.TypeDate:
		return s.pastDate(2, opts.FormatOr("2006-01-02"))
	case schema.TypeBoolean:
		return s.rng.Intn(2) == 0
	case schema.TypeAddress:
		return s.streetAddress()
	case schema.TypeCity:
		return s.pick(cities)
	case schema.TypeCountry:
		return s.pick(countries)
	case schema.TypeCompany:
		return s.pick(companyNames) + " " + s.pick(companySuffixes)
	case schema.TypeDepartment:
		return s.pick(departments)
	case schema.TypeJobTitle:
		return s.pick(jobLevels) + " " + s.pick(jobRoles)
	case schema.TypeCurrency:
		amount := s.intBetween(int(opts.MinOr(0)), int(opts.MaxOr(10000)))
		return opts.PrefixOr("$") + groupThousands(amount) + opts.SuffixOr("")
	case schema.TypeUUID:
		return s.shortUUID()
	case schema.TypeCustom:
		if opts != nil && len(opts.Values) > 0 {
			return s.pick(opts.Values)
		}
		return s.pick(loremWords)
	default:
		return s.pick(loremWords)
	}
}

func (s *Synthesizer) pick(values []string) string {
	return values[s.rng.Intn(len(values))]
}

// intBetween returns a uniform integer in [lo, hi] inclusive.
func (s *Synthesizer) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Synthesizer) floatBetween(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Synthesizer) fullName() string {
	return s.pick(firstNames) + " " + s.pick(lastNames)
}

func (s *Synthesizer) email() string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(s.pick(firstNames)),
		strings.ToLower(s.pick(lastNames)),
		s.rng.Intn(100),
		s.pick(emailDomains))
}

func (s *Synthesizer) phone() string {
	return fmt.Sprintf("(%d) %d-%04d",
		200+s.rng.Intn(800),
		200+s.rng.Intn(800),
		s.rng.Intn(10000))
}

func (s *Synthesizer) streetAddress() string {
	return fmt.Sprintf("%d %s %s",
		1+s.rng.Intn(9999),
		s.pick(streetNames),
		s.pick(streetSuffixes))
}

// pastDate returns a calendar date within the past `years` from the anchor,
// rendered with the given time layout.
func (s *Synthesizer) pastDate(years int, layout string) string {
	span := s.anchor.Sub(s.anchor.AddDate(-years, 0, 0))
	offset := time.Duration(s.rng.Int63n(int64(span)))
	return s.anchor.Add(-offset).Format(layout)
}

// shortUUID is a random UUID truncated to its first 8 hex characters,
// upper-cased. The UUID is drawn from the seeded stream, not crypto/rand, so
// seeded runs reproduce it.
func (s *Synthesizer) shortUUID() string {
	u, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		u = uuid.New()
	}
	return strings.ToUpper(u.String()[:8])
}

func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// groupThousands renders a non-negative integer with comma separators.
func groupThousands(n int) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	raw := fmt.Sprintf("%d", n)
	if len(raw) <= 3 {
		return raw
	}
	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}
