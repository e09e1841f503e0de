package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"weather-dashboard/internal/apiclient"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/notify"
	"weather-dashboard/pkg/observe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeFetcher serves canned results per city. A city with a gate blocks
// until the gate is closed.
type fakeFetcher struct {
	mu       sync.Mutex
	calls    []string
	results  map[string]models.WeatherAndForecast
	errs     map[string]error
	gates    map[string]chan struct{}
	started  chan string
	finished chan string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		results:  map[string]models.WeatherAndForecast{},
		errs:     map[string]error{},
		gates:    map[string]chan struct{}{},
		started:  make(chan string, 16),
		finished: make(chan string, 16),
	}
}

func (f *fakeFetcher) GetWeatherAndForecast(ctx context.Context, city, countryCode string) (models.WeatherAndForecast, error) {
	f.mu.Lock()
	f.calls = append(f.calls, city)
	gate := f.gates[city]
	result, err := f.results[city], f.errs[city]
	f.mu.Unlock()

	f.started <- city
	if gate != nil {
		<-gate
	}
	defer func() { f.finished <- city }()

	if err != nil {
		return models.WeatherAndForecast{}, err
	}
	return result, nil
}

func (f *fakeFetcher) block(city string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	gate := make(chan struct{})
	f.gates[city] = gate
	return gate
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func weatherFor(city string, days int) models.WeatherAndForecast {
	forecast := make([]models.ForecastDay, days)
	for i := range forecast {
		forecast[i] = models.ForecastDay{
			Date:      fmt.Sprintf("2025-07-%02d", 25+i),
			Day:       fmt.Sprintf("day-%d", i),
			High:      float64(20 + i),
			Low:       float64(10 + i),
			Condition: models.ConditionClouds,
		}
	}

	return models.WeatherAndForecast{
		Current: models.WeatherData{
			City:        city,
			Country:     "XX",
			Temperature: 18,
			Condition:   models.ConditionClear,
			Description: "clear sky",
			Humidity:    60,
			Timestamp:   "2025-07-25T14:00:00Z",
		},
		Forecast: forecast,
	}
}

func newTestController(f Fetcher) (*Controller, *notify.Feed) {
	feed := notify.NewFeed(10)
	c := NewController(f, feed, observe.NewZapLogger("test-app", io.Discard))
	return c, feed
}

func TestController_InitialStateIsIdle(t *testing.T) {
	c, _ := newTestController(newFakeFetcher())

	state := c.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Weather)
	assert.NotNil(t, state.Forecast)
	assert.Empty(t, state.Forecast)
	assert.Nil(t, state.SettledAt)
}

func TestController_Search_Success(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	c, feed := newTestController(fetcher)

	err := c.Search(context.Background(), "  Paris ")
	require.NoError(t, err)

	state := c.State()
	assert.Equal(t, PhaseSuccess, state.Phase)
	assert.False(t, state.Loading)
	require.NotNil(t, state.Weather)
	assert.Equal(t, "Paris", state.Weather.City)
	assert.Len(t, state.Forecast, 5)
	assert.Equal(t, "day-0", state.Forecast[0].Day)
	assert.Equal(t, "day-4", state.Forecast[4].Day)
	assert.Equal(t, "Paris", state.City)
	assert.Empty(t, state.LastError)
	assert.NotNil(t, state.SettledAt)

	notifications := feed.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.KindSuccess, notifications[0].Kind)
	assert.Equal(t, TitleSuccess, notifications[0].Title)
	assert.Equal(t, "Successfully loaded weather for Paris", notifications[0].Description)
}

func TestController_Search_FirstSearchFails(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.errs["Nowhereville"] = errors.New("city not found")
	c, feed := newTestController(fetcher)

	err := c.Search(context.Background(), "Nowhereville")
	require.EqualError(t, err, "city not found")

	state := c.State()
	assert.Equal(t, PhaseError, state.Phase)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Weather)
	assert.Empty(t, state.Forecast)
	assert.Equal(t, "city not found", state.LastError)

	notifications := feed.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.KindError, notifications[0].Kind)
	assert.Equal(t, TitleError, notifications[0].Title)
	assert.Equal(t, "city not found", notifications[0].Description)
}

func TestController_Search_FailureKeepsPreviousData(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	fetcher.errs["Nowhereville"] = errors.New("city not found")
	c, _ := newTestController(fetcher)

	require.NoError(t, c.Search(context.Background(), "Paris"))
	before := c.State()

	require.Error(t, c.Search(context.Background(), "Nowhereville"))
	after := c.State()

	assert.Equal(t, before.Weather, after.Weather)
	assert.Equal(t, before.Forecast, after.Forecast)
	assert.Equal(t, "Paris", after.City)
	assert.Equal(t, PhaseError, after.Phase)
	assert.False(t, after.Loading)
}

func TestController_Search_SuccessClearsLastError(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 3)
	fetcher.errs["Nowhereville"] = errors.New("city not found")
	c, _ := newTestController(fetcher)

	require.Error(t, c.Search(context.Background(), "Nowhereville"))
	require.NoError(t, c.Search(context.Background(), "Paris"))

	state := c.State()
	assert.Equal(t, PhaseSuccess, state.Phase)
	assert.Empty(t, state.LastError)
}

func TestController_Search_ReplacesDataWholesale(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	fetcher.results["Oslo"] = weatherFor("Oslo", 2)
	c, _ := newTestController(fetcher)

	require.NoError(t, c.Search(context.Background(), "Paris"))
	require.NoError(t, c.Search(context.Background(), "Oslo"))

	state := c.State()
	assert.Equal(t, "Oslo", state.Weather.City)
	assert.Len(t, state.Forecast, 2)
}

func TestController_Search_GenericMessageFallback(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.errs["Paris"] = errors.New("  ")
	c, feed := newTestController(fetcher)

	require.Error(t, c.Search(context.Background(), "Paris"))

	assert.Equal(t, GenericErrorMessage, c.State().LastError)
	require.Len(t, feed.List(), 1)
	assert.Equal(t, GenericErrorMessage, feed.List()[0].Description)
}

func TestController_Search_EmptyCity(t *testing.T) {
	fetcher := newFakeFetcher()
	c, feed := newTestController(fetcher)

	assert.ErrorIs(t, c.Search(context.Background(), "   "), ErrEmptyCity)
	assert.ErrorIs(t, c.SearchAsync(context.Background(), "", ""), ErrEmptyCity)

	assert.Zero(t, fetcher.callCount())
	assert.Equal(t, PhaseIdle, c.State().Phase)
	assert.False(t, c.State().Loading)
	assert.Empty(t, feed.List())
}

func TestController_Search_LoadingWhileInFlight(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	fetcher.results["Oslo"] = weatherFor("Oslo", 2)
	c, _ := newTestController(fetcher)

	require.NoError(t, c.Search(context.Background(), "Paris"))

	gate := fetcher.block("Oslo")
	require.NoError(t, c.SearchAsync(context.Background(), "Oslo", ""))
	<-fetcher.started // Paris
	<-fetcher.started // Oslo

	during := c.State()
	assert.True(t, during.Loading)
	assert.Equal(t, PhaseLoading, during.Phase)
	// The previous result stays visible underneath.
	require.NotNil(t, during.Weather)
	assert.Equal(t, "Paris", during.Weather.City)

	close(gate)
	c.Wait()

	after := c.State()
	assert.False(t, after.Loading)
	assert.Equal(t, "Oslo", after.Weather.City)
}

func TestController_Search_OlderResultResolvingLastIsDiscarded(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	fetcher.results["Berlin"] = weatherFor("Berlin", 3)
	c, feed := newTestController(fetcher)

	parisGate := fetcher.block("Paris")

	parisErr := make(chan error, 1)
	go func() { parisErr <- c.Search(context.Background(), "Paris") }()
	require.Equal(t, "Paris", <-fetcher.started)

	require.NoError(t, c.Search(context.Background(), "Berlin"))
	<-fetcher.started

	assert.False(t, c.State().Loading)

	close(parisGate)
	assert.ErrorIs(t, <-parisErr, ErrSuperseded)

	state := c.State()
	assert.Equal(t, "Berlin", state.Weather.City)
	assert.Len(t, state.Forecast, 3)
	assert.False(t, state.Loading)
	assert.Equal(t, PhaseSuccess, state.Phase)

	notifications := feed.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Berlin", notifications[0].City)
}

func TestController_Search_OlderResultResolvingFirstKeepsLoading(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	fetcher.errs["Berlin"] = errors.New("backend unavailable")
	c, feed := newTestController(fetcher)

	parisGate := fetcher.block("Paris")
	berlinGate := fetcher.block("Berlin")

	require.NoError(t, c.SearchAsync(context.Background(), "Paris", ""))
	require.NoError(t, c.SearchAsync(context.Background(), "Berlin", ""))
	<-fetcher.started
	<-fetcher.started

	// Paris resolves first but Berlin was started later.
	close(parisGate)
	require.Equal(t, "Paris", <-fetcher.finished)

	state := c.State()
	assert.True(t, state.Loading)
	assert.Nil(t, state.Weather)

	close(berlinGate)
	c.Wait()

	state = c.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Weather)
	assert.Equal(t, PhaseError, state.Phase)
	assert.Equal(t, "backend unavailable", state.LastError)

	notifications := feed.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.KindError, notifications[0].Kind)
}

func TestController_Search_NotifierFailureDoesNotAffectState(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)

	failing := notify.NotifierFunc(func(context.Context, notify.Notification) error {
		return errors.New("webhook down")
	})
	c := NewController(fetcher, failing, observe.NewZapLogger("test-app", io.Discard))

	require.NoError(t, c.Search(context.Background(), "Paris"))
	assert.Equal(t, PhaseSuccess, c.State().Phase)
}

func TestController_Search_NotifiesWithLiveContextAfterCancel(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.errs["Paris"] = context.Canceled

	var notified []error
	recorder := notify.NotifierFunc(func(ctx context.Context, n notify.Notification) error {
		notified = append(notified, ctx.Err())
		return nil
	})
	c := NewController(fetcher, recorder, observe.NewZapLogger("test-app", io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Search(ctx, "Paris"), context.Canceled)
	require.Len(t, notified, 1)
	assert.NoError(t, notified[0])
}

type panickingFetcher struct{}

func (panickingFetcher) GetWeatherAndForecast(context.Context, string, string) (models.WeatherAndForecast, error) {
	panic("boom")
}

func TestController_Search_PanicSettlesAsError(t *testing.T) {
	c, feed := newTestController(panickingFetcher{})

	err := c.Search(context.Background(), "Paris")
	require.ErrorIs(t, err, ErrFetchPanicked)

	state := c.State()
	assert.False(t, state.Loading)
	assert.Equal(t, PhaseError, state.Phase)
	assert.Equal(t, GenericErrorMessage, state.LastError)

	notifications := feed.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.KindError, notifications[0].Kind)
	assert.Equal(t, GenericErrorMessage, notifications[0].Description)
}

func TestController_SearchAsync_PanicDoesNotEscape(t *testing.T) {
	c, feed := newTestController(panickingFetcher{})

	require.NoError(t, c.SearchAsync(context.Background(), "Paris", ""))
	c.Wait()

	state := c.State()
	assert.False(t, state.Loading)
	assert.Equal(t, PhaseError, state.Phase)
	require.Len(t, feed.List(), 1)
	assert.Equal(t, TitleError, feed.List()[0].Title)
}

func TestController_StateIsACopy(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.results["Paris"] = weatherFor("Paris", 5)
	c, _ := newTestController(fetcher)
	require.NoError(t, c.Search(context.Background(), "Paris"))

	snapshot := c.State()
	snapshot.Weather.City = "Mutated"
	snapshot.Forecast[0].Day = "Mutated"

	state := c.State()
	assert.Equal(t, "Paris", state.Weather.City)
	assert.Equal(t, "day-0", state.Forecast[0].Day)
}

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil))
	assert.Equal(t, "city not found", ErrorMessage(errors.New("city not found")))
	assert.Equal(t, "city not found", ErrorMessage(fmt.Errorf("%w", errors.New("city not found"))))
	assert.Equal(t, GenericErrorMessage, ErrorMessage(errors.New("")))
	assert.Equal(t, GenericErrorMessage, ErrorMessage(fmt.Errorf("%w: boom", ErrFetchPanicked)))
}

func TestErrorMessage_UsesProviderMessage(t *testing.T) {
	perr := &apiclient.ProviderError{Message: "City not found", StatusCode: 404}

	assert.Equal(t, "City not found", ErrorMessage(perr))
	assert.Equal(t, "City not found", ErrorMessage(fmt.Errorf("fetch weather for Nowhereville: %w", perr)))
	assert.Equal(t, GenericErrorMessage, ErrorMessage(fmt.Errorf("wrapped: %w", &apiclient.ProviderError{})))
}
