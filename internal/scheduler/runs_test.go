package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryRuns(t *testing.T) {
	runs := ParseDeliveryRuns(`[{"name":"morning","start":"08:30","end":"10:00"},{"name":"afternoon","start":"13:00","end":"15:30"}]`, testLogger())

	require.Len(t, runs, 2)
	assert.Equal(t, "morning", runs[0].Name)
	assert.Equal(t, "08:30", runs[0].Start)
	assert.Equal(t, "15:30", runs[1].End)
}

func TestParseDeliveryRuns_MalformedYieldsNone(t *testing.T) {
	assert.Nil(t, ParseDeliveryRuns(`{"not":"an array"`, testLogger()))
	assert.Nil(t, ParseDeliveryRuns(`totally broken`, testLogger()))
}

func TestParseDeliveryRuns_EmptyYieldsNone(t *testing.T) {
	assert.Nil(t, ParseDeliveryRuns("", testLogger()))
	assert.Nil(t, ParseDeliveryRuns("   ", testLogger()))
}

func TestDeliveryRunWindowOn(t *testing.T) {
	run := DeliveryRun{Name: "morning", Start: "08:30", End: "10:00"}

	start, end, ok := run.WindowOn(monday)
	require.True(t, ok)
	assert.Equal(t, monday.Add(8*time.Hour+30*time.Minute), start)
	assert.Equal(t, monday.Add(10*time.Hour), end)
}

func TestDeliveryRunWindowOn_MalformedClock(t *testing.T) {
	run := DeliveryRun{Name: "broken", Start: "8 am", End: "10:00"}

	_, _, ok := run.WindowOn(monday)
	assert.False(t, ok)
}
