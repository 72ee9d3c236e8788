package scheduler

import (
	"github.com/google/uuid"

	"work-program-scheduler/internal/domain/entity"
)

// FallbackLimit is the conservative work-day ceiling used when no limit
// row, global row or built-in default can be resolved.
const FallbackLimit = 3

var builtinLimits = map[entity.LimitType]int{
	entity.LimitWeeklyDays:  3,
	entity.LimitDailyHours:  8,
	entity.LimitMonthlyDays: 15,
}

// DefaultLimit returns the built-in default for a limit type, falling
// back to FallbackLimit for unknown types.
func DefaultLimit(limitType entity.LimitType) int {
	if v, ok := builtinLimits[limitType]; ok {
		return v
	}
	return FallbackLimit
}

// LimitResolver resolves effective work limits. Individual rows take
// precedence over global rows and global rows over built-in defaults.
// Only active rows participate; when a scope carries duplicate rows for
// one limit type the first row wins.
type LimitResolver struct {
	individual map[uuid.UUID]map[entity.LimitType]int
	global     map[entity.LimitType]int
}

// NewLimitResolver indexes the given limit rows for resolution.
func NewLimitResolver(limits []entity.WorkLimit) *LimitResolver {
	lr := &LimitResolver{
		individual: make(map[uuid.UUID]map[entity.LimitType]int),
		global:     make(map[entity.LimitType]int),
	}
	for i := range limits {
		l := &limits[i]
		if l.IsActive != nil && !*l.IsActive {
			continue
		}
		if l.IsGlobal() {
			if _, ok := lr.global[l.LimitType]; !ok {
				lr.global[l.LimitType] = l.MaxValue
			}
			continue
		}
		byType, ok := lr.individual[*l.ResidentID]
		if !ok {
			byType = make(map[entity.LimitType]int)
			lr.individual[*l.ResidentID] = byType
		}
		if _, ok := byType[l.LimitType]; !ok {
			byType[l.LimitType] = l.MaxValue
		}
	}
	return lr
}

// Effective returns the limit value in force for the resident.
func (lr *LimitResolver) Effective(residentID uuid.UUID, limitType entity.LimitType) int {
	if byType, ok := lr.individual[residentID]; ok {
		if v, ok := byType[limitType]; ok {
			return v
		}
	}
	if v, ok := lr.global[limitType]; ok {
		return v
	}
	return DefaultLimit(limitType)
}
