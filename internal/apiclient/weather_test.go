package apiclient

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

const mockBaseURL = "http://backend.test"

var (
	currentURL  = regexp.MustCompile(`^http://backend\.test/weather/current`)
	forecastURL = regexp.MustCompile(`^http://backend\.test/weather/forecast`)
)

func newMockedClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	client, err := NewClient(mockBaseURL, testLogger(), WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	return client, transport
}

func TestGetWeatherAndForecast_Success(t *testing.T) {
	client, transport := newMockedClient(t)

	var mu sync.Mutex
	var cities []string
	record := func(body string) httpmock.Responder {
		return func(req *http.Request) (*http.Response, error) {
			mu.Lock()
			cities = append(cities, req.URL.Query().Get("city"))
			mu.Unlock()
			return httpmock.NewStringResponse(http.StatusOK, body), nil
		}
	}
	transport.RegisterRegexpResponder(http.MethodGet, currentURL, record(parisCurrent))
	transport.RegisterRegexpResponder(http.MethodGet, forecastURL, record(parisForecast))

	result, err := client.GetWeatherAndForecast(context.Background(), "Paris", "")
	require.NoError(t, err)

	assert.Equal(t, "Paris", result.Current.City)
	require.Len(t, result.Forecast, 5)
	assert.Equal(t, "Today", result.Forecast[0].Day)
	assert.Equal(t, "Tuesday", result.Forecast[4].Day)

	assert.Equal(t, 2, transport.GetTotalCallCount())
	assert.ElementsMatch(t, []string{"Paris", "Paris"}, cities)
}

func TestGetWeatherAndForecast_IssuesRequestsConcurrently(t *testing.T) {
	client, transport := newMockedClient(t)

	var arrived sync.WaitGroup
	arrived.Add(2)
	bothArrived := make(chan struct{})
	go func() {
		arrived.Wait()
		close(bothArrived)
	}()

	barrier := func(body string) httpmock.Responder {
		return func(req *http.Request) (*http.Response, error) {
			arrived.Done()
			select {
			case <-bothArrived:
				return httpmock.NewStringResponse(http.StatusOK, body), nil
			case <-time.After(2 * time.Second):
				return nil, errors.New("requests were not issued concurrently")
			}
		}
	}
	transport.RegisterRegexpResponder(http.MethodGet, currentURL, barrier(parisCurrent))
	transport.RegisterRegexpResponder(http.MethodGet, forecastURL, barrier(parisForecast))

	result, err := client.GetWeatherAndForecast(context.Background(), "Paris", "")
	require.NoError(t, err)
	assert.Equal(t, "Paris", result.Current.City)
	assert.Len(t, result.Forecast, 5)
}

func TestGetWeatherAndForecast_ForecastFailsAfterCurrentSucceeds(t *testing.T) {
	client, transport := newMockedClient(t)

	transport.RegisterRegexpResponder(http.MethodGet, currentURL,
		httpmock.NewStringResponder(http.StatusOK, parisCurrent))
	transport.RegisterRegexpResponder(http.MethodGet, forecastURL,
		func(req *http.Request) (*http.Response, error) {
			time.Sleep(20 * time.Millisecond)
			return httpmock.NewStringResponse(http.StatusGatewayTimeout, `{"detail": "forecast provider timed out"}`), nil
		})

	result, err := client.GetWeatherAndForecast(context.Background(), "Paris", "")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "forecast provider timed out", perr.Message)
	assert.Equal(t, http.StatusGatewayTimeout, perr.StatusCode)

	// No partial result: the successful current weather is discarded.
	assert.Equal(t, models.WeatherAndForecast{}, result)
}

func TestGetWeatherAndForecast_CurrentFailsCancelsForecast(t *testing.T) {
	client, transport := newMockedClient(t)

	forecastCanceled := make(chan struct{})
	transport.RegisterRegexpResponder(http.MethodGet, currentURL,
		httpmock.NewStringResponder(http.StatusNotFound, `{"detail": "city not found"}`))
	transport.RegisterRegexpResponder(http.MethodGet, forecastURL,
		func(req *http.Request) (*http.Response, error) {
			select {
			case <-req.Context().Done():
				close(forecastCanceled)
				return nil, req.Context().Err()
			case <-time.After(2 * time.Second):
				return httpmock.NewStringResponse(http.StatusOK, parisForecast), nil
			}
		})

	start := time.Now()
	result, err := client.GetWeatherAndForecast(context.Background(), "Nowhereville", "")

	require.Error(t, err)
	assert.Equal(t, "city not found", err.Error())
	assert.Equal(t, models.WeatherAndForecast{}, result)
	assert.Less(t, time.Since(start), time.Second)

	select {
	case <-forecastCanceled:
	case <-time.After(time.Second):
		t.Error("forecast request was not canceled")
	}
}

func TestGetWeatherAndForecast_TransportFailure(t *testing.T) {
	client, transport := newMockedClient(t)

	transport.RegisterRegexpResponder(http.MethodGet, currentURL,
		httpmock.NewStringResponder(http.StatusOK, parisCurrent))
	transport.RegisterRegexpResponder(http.MethodGet, forecastURL,
		httpmock.NewErrorResponder(errors.New("connection reset by peer")))

	result, err := client.GetWeatherAndForecast(context.Background(), "Paris", "")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "connection reset by peer")
	assert.Zero(t, perr.StatusCode)
	assert.Empty(t, result.Current.City)
	assert.Nil(t, result.Forecast)
}

func TestGetWeatherAndForecast_EmptyCity(t *testing.T) {
	client, transport := newMockedClient(t)

	_, err := client.GetWeatherAndForecast(context.Background(), " ", "")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "city is required", perr.Message)
	assert.Zero(t, transport.GetTotalCallCount())
}
