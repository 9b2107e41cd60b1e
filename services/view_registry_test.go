package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRegistry_Lifecycle(t *testing.T) {
	r := NewViewRegistry(nil)
	id := r.NewID()
	v := NewViewController(scenarioCatalog(), nil, WithViewID(id))
	r.Add(v)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.Remove(id))
	assert.True(t, v.Closed())
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.ErrorIs(t, r.Remove(id), ErrViewNotFound)
}

func TestViewRegistry_SweepClosesIdleViews(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	r := NewViewRegistry(nil)
	r.now = clock

	idle := NewViewController(scenarioCatalog(), nil, WithViewID("idle"), WithViewClock(clock))
	r.Add(idle)

	now = now.Add(20 * time.Minute)
	active := NewViewController(scenarioCatalog(), nil, WithViewID("active"), WithViewClock(clock))
	r.Add(active)

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep(30*time.Minute))
	assert.True(t, idle.Closed())
	assert.False(t, active.Closed())

	_, err := r.Get("active")
	assert.NoError(t, err)

	r.CloseAll()
	assert.True(t, active.Closed())
	assert.Zero(t, r.Len())
}
