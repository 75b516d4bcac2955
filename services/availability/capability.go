package availability

import (
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ricardopjr1/petshop-backend/utils"
)

// Capability is the staff skill a service requires, e.g. grooming vs bathing.
type Capability string

const (
	CapabilityGroomer Capability = "Groomer"
	CapabilityBather  Capability = "Bather"
)

// CapabilityRule binds service-name keywords to one capability. Rules are
// ordered most demanding first; the last rule's capability doubles as the
// fallback for service names no keyword matches.
type CapabilityRule struct {
	Capability Capability
	Keywords   []string
}

// DefaultCapabilityRules reflects the grooming catalog this system was built
// for: anything mentioning a trim needs a groomer, bath-adjacent services
// need a bather.
func DefaultCapabilityRules() []CapabilityRule {
	return []CapabilityRule{
		{Capability: CapabilityGroomer, Keywords: []string{"tosa"}},
		{Capability: CapabilityBather, Keywords: []string{"banho", "hidratação", "hidratacao", "pelo"}},
	}
}

// RoleResolver maps service names to required capabilities through a single
// configured keyword table, replacing per-call-site string matching.
type RoleResolver struct {
	rules      []CapabilityRule
	unresolved atomic.Int64
}

func NewRoleResolver(rules []CapabilityRule) *RoleResolver {
	if len(rules) == 0 {
		rules = DefaultCapabilityRules()
	}
	return &RoleResolver{rules: rules}
}

// RequiredCapability resolves one service name. Unmatched names fall back to
// the least-demanding capability; each fallback is logged and counted because
// it points at a catalog entry nobody classified.
func (r *RoleResolver) RequiredCapability(serviceName string) Capability {
	name := strings.ToLower(serviceName)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Capability
			}
		}
	}

	fallback := r.rules[len(r.rules)-1].Capability
	r.unresolved.Add(1)
	utils.GetLogger().Warn("service name matched no capability keyword, using fallback",
		zap.String("serviceName", serviceName),
		zap.String("fallback", string(fallback)))
	return fallback
}

// MostDemanding reduces the capabilities of a multi-service booking to the
// single one that constrains staffing.
func (r *RoleResolver) MostDemanding(caps []Capability) (Capability, error) {
	if len(caps) == 0 {
		return "", errors.New("no capabilities to reduce: booking must reference at least one service")
	}
	best := caps[0]
	for _, c := range caps[1:] {
		if r.rank(c) < r.rank(best) {
			best = c
		}
	}
	return best, nil
}

// UnresolvedCount reports how many service names have fallen through the
// keyword table since this resolver was built.
func (r *RoleResolver) UnresolvedCount() int64 {
	return r.unresolved.Load()
}

// rank orders capabilities by rule position, most demanding first. Unknown
// capabilities sort last.
func (r *RoleResolver) rank(c Capability) int {
	for i, rule := range r.rules {
		if rule.Capability == c {
			return i
		}
	}
	return len(r.rules)
}
