// Package dashboard holds the per-session weather dashboard state and the
// search flow that drives it.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-dashboard/internal/apiclient"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/notify"
	"weather-dashboard/pkg/observe"
)

const (
	TitleSuccess        = "Weather data loaded"
	TitleError          = "Error"
	GenericErrorMessage = "Failed to fetch weather data. Please try again."
)

var (
	ErrEmptyCity = errors.New("city is required")
	// ErrFetchPanicked wraps a panic raised by the Fetcher. Users see the
	// generic error message for it.
	ErrFetchPanicked = errors.New("weather fetch panicked")
	// ErrSuperseded is returned by a search whose result was discarded
	// because a newer search was started before it resolved.
	ErrSuperseded = errors.New("search superseded by a newer search")
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Fetcher returns current weather and forecast for one city, or an error
// and no data at all.
type Fetcher interface {
	GetWeatherAndForecast(ctx context.Context, city, countryCode string) (models.WeatherAndForecast, error)
}

// State is what a render collaborator reads. Weather and Forecast always
// come from the same search.
type State struct {
	Weather   *models.WeatherData  `json:"weather"`
	Forecast  []models.ForecastDay `json:"forecast"`
	Loading   bool                 `json:"loading"`
	Phase     Phase                `json:"phase" example:"success"`
	City      string               `json:"city,omitempty" example:"Paris"`
	LastError string               `json:"lastError,omitempty"`
	SettledAt *time.Time           `json:"updatedAt,omitempty"`
}

func (s State) clone() State {
	out := s
	if s.Weather != nil {
		w := *s.Weather
		out.Weather = &w
	}
	out.Forecast = slices.Clone(s.Forecast)
	if s.SettledAt != nil {
		at := *s.SettledAt
		out.SettledAt = &at
	}
	return out
}

// Controller owns the dashboard state of one session. Create one per
// session with NewController.
type Controller struct {
	fetcher  Fetcher
	notifier notify.Notifier
	l        *observe.Logger
	now      func() time.Time

	mu     sync.Mutex
	state  State
	issued uint64

	pending sync.WaitGroup
}

func NewController(fetcher Fetcher, notifier notify.Notifier, l *observe.Logger) *Controller {
	if notifier == nil {
		notifier = notify.Fanout{}
	}

	return &Controller{
		fetcher:  fetcher,
		notifier: notifier,
		l:        l,
		now:      time.Now,
		state: State{
			Phase:    PhaseIdle,
			Forecast: []models.ForecastDay{},
		},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

// Search runs one search to completion. See SearchCountry.
func (c *Controller) Search(ctx context.Context, city string) error {
	return c.SearchCountry(ctx, city, "")
}

// SearchCountry enters the loading phase, fetches weather and forecast for
// city and settles the state. On failure the previously displayed data is
// kept. Either way one notification is emitted, unless a newer search was
// started meanwhile: then the result is dropped and ErrSuperseded returned.
func (c *Controller) SearchCountry(ctx context.Context, city, countryCode string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrEmptyCity
	}

	seq := c.begin()
	return c.run(ctx, seq, city, countryCode)
}

// SearchAsync enters the loading phase before returning and completes the
// search in the background. Wait blocks until background searches finish.
func (c *Controller) SearchAsync(ctx context.Context, city, countryCode string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrEmptyCity
	}

	seq := c.begin()

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		_ = c.run(ctx, seq, city, countryCode)
	}()

	return nil
}

func (c *Controller) Wait() {
	c.pending.Wait()
}

func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	c.state.Loading = true
	c.state.Phase = PhaseLoading

	return c.issued
}

func (c *Controller) run(ctx context.Context, seq uint64, city, countryCode string) error {
	searchID := uuid.NewString()
	fields := map[string]any{
		"search_id": searchID,
		"seq":       seq,
		"city":      city,
	}
	c.l.Info("search started", fields)

	result, err := c.fetch(ctx, searchID, city, countryCode)
	n, applied := c.settle(seq, city, result, err)

	if !applied {
		c.l.Debug("search result discarded, newer search in progress", fields)
		return ErrSuperseded
	}

	if err != nil {
		c.l.Warning("search failed", map[string]any{
			"search_id": searchID,
			"city":      city,
			"err":       err.Error(),
		})
	} else {
		c.l.Info("search succeeded", map[string]any{
			"search_id": searchID,
			"city":      city,
			"days":      len(result.Forecast),
		})
	}

	if nerr := c.notifier.Notify(context.WithoutCancel(ctx), n); nerr != nil {
		c.l.Warning("failed to deliver notification", map[string]any{
			"search_id": searchID,
			"err":       nerr.Error(),
		})
	}

	return err
}

// fetch turns a panicking Fetcher into ErrFetchPanicked so loading is always
// cleared and background searches cannot crash the process.
func (c *Controller) fetch(ctx context.Context, searchID, city, countryCode string) (result models.WeatherAndForecast, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = models.WeatherAndForecast{}
			err = fmt.Errorf("%w: %v", ErrFetchPanicked, r)
			c.l.Error(err, map[string]any{
				"search_id": searchID,
				"city":      city,
				"panic":     string(debug.Stack()),
			})
		}
	}()

	return c.fetcher.GetWeatherAndForecast(ctx, city, countryCode)
}

// settle applies a fetch outcome if seq is still the latest search.
func (c *Controller) settle(seq uint64, city string, result models.WeatherAndForecast, err error) (notify.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.issued {
		return notify.Notification{}, false
	}

	now := c.now().UTC()
	c.state.Loading = false
	c.state.SettledAt = &now

	if err != nil {
		message := ErrorMessage(err)
		c.state.Phase = PhaseError
		c.state.LastError = message
		return notify.New(notify.KindError, TitleError, message, city), true
	}

	weather := result.Current
	forecast := slices.Clone(result.Forecast)
	if forecast == nil {
		forecast = []models.ForecastDay{}
	}

	c.state.Weather = &weather
	c.state.Forecast = forecast
	c.state.City = city
	c.state.Phase = PhaseSuccess
	c.state.LastError = ""

	return notify.New(notify.KindSuccess, TitleSuccess, fmt.Sprintf("Successfully loaded weather for %s", city), city), true
}

// ErrorMessage is the text shown to the user for a failed search: the
// ProviderError message when there is one, else the error text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrFetchPanicked) {
		return GenericErrorMessage
	}

	var perr *apiclient.ProviderError
	if errors.As(err, &perr) {
		if msg := strings.TrimSpace(perr.Message); msg != "" {
			return msg
		}
		return GenericErrorMessage
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return GenericErrorMessage
}
