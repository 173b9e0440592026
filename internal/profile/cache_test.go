package profile

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingComposer struct {
	inner ProfileComposer
	calls int
}

func (c *countingComposer) Compose(code string) (*ComposedProfile, error) {
	c.calls++
	return c.inner.Compose(code)
}

func TestCachedComposer_MatchesComposer(t *testing.T) {
	plain := NewComposer(testStore(t))
	counting := &countingComposer{inner: plain}
	cached := NewCachedComposer(counting, time.Minute)

	want, err := plain.Compose("es")
	require.NoError(t, err)

	first, err := cached.Compose("es")
	require.NoError(t, err)
	second, err := cached.Compose("ES")
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	assert.Equal(t, 1, counting.calls)
	assert.NotSame(t, first, second)
}

func TestCachedComposer_ReturnsIndependentCopies(t *testing.T) {
	cached := NewCachedComposer(NewComposer(testStore(t)), time.Minute)

	first, err := cached.Compose("en")
	require.NoError(t, err)
	first.Experience[0].Title = "mutated"
	first.Projects = nil

	second, err := cached.Compose("en")
	require.NoError(t, err)
	assert.Equal(t, "Developer", second.Experience[0].Title)
	assert.Len(t, second.Projects, 3)
}

func TestCachedComposer_UnsupportedLocale(t *testing.T) {
	counting := &countingComposer{inner: NewComposer(testStore(t))}
	cached := NewCachedComposer(counting, time.Minute)

	_, err := cached.Compose("fr")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConfiguration))
	assert.Zero(t, counting.calls)
}

func TestCachedComposer_Flush(t *testing.T) {
	counting := &countingComposer{inner: NewComposer(testStore(t))}
	cached := NewCachedComposer(counting, time.Minute)

	_, err := cached.Compose("en")
	require.NoError(t, err)
	cached.Flush()
	_, err = cached.Compose("en")
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls)
}
