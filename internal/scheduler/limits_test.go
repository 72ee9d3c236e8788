package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"work-program-scheduler/internal/domain/entity"
)

func TestLimitResolver_Precedence(t *testing.T) {
	residentID := uuid.New()
	other := uuid.New()

	resolver := NewLimitResolver([]entity.WorkLimit{
		{ResidentID: &residentID, LimitType: entity.LimitWeeklyDays, MaxValue: 2, IsActive: boolPtr(true)},
		{LimitType: entity.LimitWeeklyDays, MaxValue: 4, IsActive: boolPtr(true)},
		{LimitType: entity.LimitDailyHours, MaxValue: 6, IsActive: boolPtr(true)},
	})

	// Individual row beats the global row.
	assert.Equal(t, 2, resolver.Effective(residentID, entity.LimitWeeklyDays))
	// Global row applies to everyone else.
	assert.Equal(t, 4, resolver.Effective(other, entity.LimitWeeklyDays))
	// A type without an individual row falls through to the global one.
	assert.Equal(t, 6, resolver.Effective(residentID, entity.LimitDailyHours))
	// No row at all falls through to the built-in default.
	assert.Equal(t, 15, resolver.Effective(residentID, entity.LimitMonthlyDays))
}

func TestLimitResolver_BuiltinDefaults(t *testing.T) {
	resolver := NewLimitResolver(nil)
	id := uuid.New()

	assert.Equal(t, 3, resolver.Effective(id, entity.LimitWeeklyDays))
	assert.Equal(t, 8, resolver.Effective(id, entity.LimitDailyHours))
	assert.Equal(t, 15, resolver.Effective(id, entity.LimitMonthlyDays))
}

func TestLimitResolver_UnknownTypeFallsBack(t *testing.T) {
	resolver := NewLimitResolver(nil)

	assert.Equal(t, FallbackLimit, resolver.Effective(uuid.New(), entity.LimitType("quarterly_days")))
	assert.Equal(t, FallbackLimit, DefaultLimit(entity.LimitType("quarterly_days")))
}

func TestLimitResolver_IgnoresInactiveRows(t *testing.T) {
	residentID := uuid.New()

	resolver := NewLimitResolver([]entity.WorkLimit{
		{ResidentID: &residentID, LimitType: entity.LimitWeeklyDays, MaxValue: 1, IsActive: boolPtr(false)},
	})

	assert.Equal(t, 3, resolver.Effective(residentID, entity.LimitWeeklyDays))
}

func TestLimitResolver_FirstDuplicateWins(t *testing.T) {
	residentID := uuid.New()

	resolver := NewLimitResolver([]entity.WorkLimit{
		{ResidentID: &residentID, LimitType: entity.LimitWeeklyDays, MaxValue: 2, IsActive: boolPtr(true)},
		{ResidentID: &residentID, LimitType: entity.LimitWeeklyDays, MaxValue: 5, IsActive: boolPtr(true)},
	})

	assert.Equal(t, 2, resolver.Effective(residentID, entity.LimitWeeklyDays))
}

func TestLimitResolver_NilIsActiveCountsAsActive(t *testing.T) {
	resolver := NewLimitResolver([]entity.WorkLimit{
		{LimitType: entity.LimitWeeklyDays, MaxValue: 6},
	})

	assert.Equal(t, 6, resolver.Effective(uuid.New(), entity.LimitWeeklyDays))
}
