package period

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/councilweb/internal/domain"
)

type fakeSource struct {
	months    map[int][]int
	items     map[[2]int][]domain.Resource
	yearsErr  error
	monthsErr error
	itemsErr  error
	calls     []string
}

func (f *fakeSource) Years(_ context.Context) ([]int, error) {
	f.calls = append(f.calls, "years")
	if f.yearsErr != nil {
		return nil, f.yearsErr
	}
	var years []int
	for _, y := range []int{2025, 2024, 2023} {
		if _, ok := f.months[y]; ok {
			years = append(years, y)
		}
	}
	return years, nil
}

func (f *fakeSource) Months(_ context.Context, year int) ([]int, error) {
	f.calls = append(f.calls, "months")
	if f.monthsErr != nil {
		return nil, f.monthsErr
	}
	return f.months[year], nil
}

func (f *fakeSource) Resources(_ context.Context, year, month int) ([]domain.Resource, error) {
	f.calls = append(f.calls, "resources")
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items[[2]int{year, month}], nil
}

func newFake() *fakeSource {
	return &fakeSource{
		months: map[int][]int{2025: {3, 4, 5}, 2024: {12}},
		items: map[[2]int][]domain.Resource{
			{2025, 3}:  {{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
			{2025, 4}:  {{ID: 3, Title: "c"}, {ID: 4, Title: "d"}, {ID: 5, Title: "e"}},
			{2024, 12}: {{ID: 6, Title: "f"}},
		},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDefaultsToFirstYearAndMonth(t *testing.T) {
	v := NewBrowser(newFake(), discard()).Load(context.Background(), Selection{})

	assert.Equal(t, StatusLoaded, v.Years.Status)
	assert.Equal(t, StatusLoaded, v.Months.Status)
	assert.Equal(t, StatusLoaded, v.Resources.Status)
	assert.Equal(t, 2025, v.Year)
	assert.Equal(t, 3, v.Month)
	assert.Equal(t, []int{3, 4, 5}, v.AvailableMonths)
	require.NotNil(t, v.Current())
	assert.Equal(t, int64(1), v.Current().ID)
	assert.NoError(t, v.Err())
}

func TestLoadKeepsOfferedSelection(t *testing.T) {
	v := NewBrowser(newFake(), discard()).Load(context.Background(), Selection{Year: 2025, Month: 4, Index: 2})

	assert.Equal(t, 4, v.Month)
	assert.Equal(t, int64(5), v.Current().ID)
}

func TestLoadWrapsIndex(t *testing.T) {
	b := NewBrowser(newFake(), discard())

	v := b.Load(context.Background(), Selection{Year: 2025, Month: 4, Index: 3})
	assert.Equal(t, 0, v.Carousel.Index)

	v = b.Load(context.Background(), Selection{Year: 2025, Month: 4, Index: -1})
	assert.Equal(t, 2, v.Carousel.Index)
}

func TestLoadUnknownYearDropsMonthAndIndex(t *testing.T) {
	v := NewBrowser(newFake(), discard()).Load(context.Background(), Selection{Year: 1999, Month: 4, Index: 1})

	assert.Equal(t, 2025, v.Year)
	assert.Equal(t, 3, v.Month)
	assert.Equal(t, 0, v.Carousel.Index)
}

func TestLoadUnknownMonthDropsIndex(t *testing.T) {
	v := NewBrowser(newFake(), discard()).Load(context.Background(), Selection{Year: 2025, Month: 11, Index: 1})

	assert.Equal(t, 3, v.Month)
	assert.Equal(t, 0, v.Carousel.Index)
}

func TestSelectionResets(t *testing.T) {
	sel := Selection{Year: 2025, Month: 4, Index: 2}

	assert.Equal(t, Selection{Year: 2024}, sel.WithYear(2024))
	assert.Equal(t, Selection{Year: 2025, Month: 5}, sel.WithMonth(5))
	assert.Equal(t, Selection{Year: 2025, Month: 4, Index: 1}, sel.WithIndex(1))
}

func TestYearsFailureLeavesDownstreamIdle(t *testing.T) {
	src := newFake()
	src.yearsErr = errors.New("boom")

	v := NewBrowser(src, discard()).Load(context.Background(), Selection{Year: 2025, Month: 3})

	assert.Equal(t, StatusError, v.Years.Status)
	assert.Equal(t, StatusIdle, v.Months.Status)
	assert.Equal(t, StatusIdle, v.Resources.Status)
	assert.Empty(t, v.AvailableMonths)
	assert.Nil(t, v.Current())
	assert.ErrorIs(t, v.Err(), src.yearsErr)
	assert.Equal(t, []string{"years"}, src.calls)
}

func TestMonthsFailureClearsResources(t *testing.T) {
	src := newFake()
	src.monthsErr = errors.New("months down")

	v := NewBrowser(src, discard()).Load(context.Background(), Selection{Year: 2025, Month: 4, Index: 1})

	assert.Equal(t, StatusLoaded, v.Years.Status)
	assert.Equal(t, StatusError, v.Months.Status)
	assert.Equal(t, StatusIdle, v.Resources.Status)
	assert.Empty(t, v.Items)
	assert.Nil(t, v.Current())
	assert.Equal(t, 0, v.Month)
	assert.ErrorIs(t, v.Err(), src.monthsErr)
}

func TestResourcesFailure(t *testing.T) {
	src := newFake()
	src.itemsErr = errors.New("images down")

	v := NewBrowser(src, discard()).Load(context.Background(), Selection{})

	assert.Equal(t, StatusError, v.Resources.Status)
	assert.Equal(t, []int{3, 4, 5}, v.AvailableMonths)
	assert.Nil(t, v.Current())
	assert.ErrorContains(t, v.Err(), "load resources")
}

func TestNoContent(t *testing.T) {
	src := &fakeSource{months: map[int][]int{}}

	v := NewBrowser(src, discard()).Load(context.Background(), Selection{})

	assert.True(t, v.NoContent())
	assert.Equal(t, StatusIdle, v.Months.Status)
	assert.NoError(t, v.Err())
}

func TestAdjacentMonths(t *testing.T) {
	b := NewBrowser(newFake(), discard())

	first := b.Load(context.Background(), Selection{Year: 2025, Month: 3})
	_, ok := first.PrevMonth()
	assert.False(t, ok)
	next, ok := first.NextMonth()
	assert.True(t, ok)
	assert.Equal(t, 4, next)

	last := b.Load(context.Background(), Selection{Year: 2025, Month: 5})
	prev, ok := last.PrevMonth()
	assert.True(t, ok)
	assert.Equal(t, 4, prev)
	_, ok = last.NextMonth()
	assert.False(t, ok)
}

func TestStageTransitions(t *testing.T) {
	s := Stage{Status: StatusIdle}
	require.Error(t, s.transition(StatusLoaded, nil))
	require.NoError(t, s.transition(StatusLoading, nil))
	require.Error(t, s.transition(StatusIdle, nil))
	require.NoError(t, s.transition(StatusError, errors.New("x")))
	require.Error(t, s.transition(StatusLoading, nil))
	assert.True(t, s.Failed())
}
