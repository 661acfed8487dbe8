package search

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/travelnesia/internal/generator"
	"github.com/dharmasatrya/travelnesia/internal/history"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/ratelimit"
	"github.com/dharmasatrya/travelnesia/pkg/logger"
)

var (
	ErrSuperseded  = errors.New("search superseded by a newer submission")
	ErrRateLimited = errors.New("too many searches, try again shortly")
)

// Search outcomes as reported to the Recorder.
const (
	OutcomeOK         = "ok"
	OutcomeRejected   = "rejected"
	OutcomeSuperseded = "superseded"
	OutcomeCancelled  = "cancelled"
	OutcomeLimited    = "rate_limited"
)

// Request is what every per-mode search form implements.
type Request interface {
	Fields() map[string]string
	Validate() error
}

type Recorder interface {
	ObserveSearch(mode, outcome string, offers int)
	ObserveBooking(mode string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(string, string, int) {}
func (nopRecorder) ObserveBooking(string)             {}

// Config controls the simulated delays. A zero latency skips the wait.
type Config struct {
	Latency        time.Duration
	BookingLatency time.Duration
	RateLimiter    *ratelimit.ModeLimiter
	Recorder       Recorder
}

// Result is one presented search.
type Result[T any] struct {
	SearchID string
	Mode     models.Mode
	Criteria map[string]string
	Offers   []T
	Elapsed  time.Duration
}

type submission struct {
	cancel context.CancelCauseFunc
}

// Service runs searches through validation, simulated latency, generation and
// history. At most one search per session and mode is in flight; a newer one
// cancels the older.
type Service struct {
	config    Config
	generator *generator.Generator
	history   *history.Store
	ids       idgen.Generator
	log       logger.Logger

	mu       sync.Mutex
	inflight map[string]*submission
}

func NewService(gen *generator.Generator, store *history.Store, ids idgen.Generator, log logger.Logger, config Config) *Service {
	if config.Recorder == nil {
		config.Recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Service{
		config:    config,
		generator: gen,
		history:   store,
		ids:       ids,
		log:       log,
		inflight:  make(map[string]*submission),
	}
}

func (s *Service) Flights(ctx context.Context, session string, req models.FlightRequest) (*Result[models.FlightOffer], error) {
	return run(ctx, s, session, models.ModeFlight, &req, func() []models.FlightOffer {
		return s.generator.Flights(req)
	})
}

func (s *Service) Hotels(ctx context.Context, session string, req models.HotelRequest) (*Result[models.HotelOffer], error) {
	return run(ctx, s, session, models.ModeHotel, &req, func() []models.HotelOffer {
		return s.generator.Hotels(req)
	})
}

func (s *Service) Trains(ctx context.Context, session string, req models.TrainRequest) (*Result[models.TrainOffer], error) {
	return run(ctx, s, session, models.ModeTrain, &req, func() []models.TrainOffer {
		return s.generator.Trains(req)
	})
}

func (s *Service) Ships(ctx context.Context, session string, req models.ShipRequest) (*Result[models.ShipOffer], error) {
	return run(ctx, s, session, models.ModeShip, &req, func() []models.ShipOffer {
		return s.generator.Ships(req)
	})
}

// History lists the most recent searches of a mode for a session.
func (s *Service) History(ctx context.Context, session string, mode models.Mode) ([]history.Entry, error) {
	return s.history.List(ctx, session, string(mode))
}

func run[T any](ctx context.Context, s *Service, session string, mode models.Mode, req Request, generate func() []T) (*Result[T], error) {
	start := time.Now()
	searchID := uuid.NewString()
	fields := []logger.Field{
		{Key: "search_id", Value: searchID},
		{Key: "mode", Value: string(mode)},
		{Key: "session", Value: session},
	}
	step := func(st State, extra ...logger.Field) {
		s.log.Debug("search state", append(append([]logger.Field{{Key: "state", Value: st.String()}}, fields...), extra...)...)
	}

	step(Validating)
	if err := req.Validate(); err != nil {
		step(Rejected, logger.Field{Key: "error", Value: err})
		s.config.Recorder.ObserveSearch(string(mode), OutcomeRejected, 0)
		return nil, err
	}

	step(Submitting)
	if s.config.RateLimiter != nil && !s.config.RateLimiter.Allow(string(mode)) {
		s.config.Recorder.ObserveSearch(string(mode), OutcomeLimited, 0)
		return nil, ErrRateLimited
	}

	searchCtx, done := s.begin(ctx, session, mode)
	defer done()

	step(AwaitingSimulatedLatency, logger.Field{Key: "latency", Value: s.config.Latency.String()})
	if err := s.wait(searchCtx, s.config.Latency); err != nil {
		s.config.Recorder.ObserveSearch(string(mode), outcomeOf(err), 0)
		s.log.Info("search abandoned", append(fields, logger.Field{Key: "error", Value: err})...)
		return nil, err
	}

	step(Generating)
	offers := generate()

	// A newer submission may have landed while generating.
	if err := interrupted(searchCtx); err != nil {
		s.config.Recorder.ObserveSearch(string(mode), outcomeOf(err), 0)
		return nil, err
	}

	criteria := req.Fields()
	if err := s.history.Save(searchCtx, session, string(mode), criteria); err != nil {
		s.log.Warn("failed to save search history", append(fields, logger.Field{Key: "error", Value: err})...)
	}

	step(Presenting, logger.Field{Key: "results", Value: len(offers)})
	s.config.Recorder.ObserveSearch(string(mode), OutcomeOK, len(offers))

	return &Result[T]{
		SearchID: searchID,
		Mode:     mode,
		Criteria: criteria,
		Offers:   offers,
		Elapsed:  time.Since(start),
	}, nil
}

func inflightKey(session string, mode models.Mode) string {
	return session + "|" + string(mode)
}

// begin registers a submission and cancels whichever one it replaces.
func (s *Service) begin(ctx context.Context, session string, mode models.Mode) (context.Context, func()) {
	searchCtx, cancel := context.WithCancelCause(ctx)
	sub := &submission{cancel: cancel}
	key := inflightKey(session, mode)

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	s.inflight[key] = sub
	s.mu.Unlock()

	return searchCtx, func() {
		s.mu.Lock()
		if s.inflight[key] == sub {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel(nil)
	}
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return interrupted(ctx)
	}
	select {
	case <-time.After(d):
		return interrupted(ctx)
	case <-ctx.Done():
		return interrupted(ctx)
	}
}

func interrupted(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	if cause := context.Cause(ctx); errors.Is(cause, ErrSuperseded) {
		return ErrSuperseded
	}
	return ctx.Err()
}

func outcomeOf(err error) string {
	if errors.Is(err, ErrSuperseded) {
		return OutcomeSuperseded
	}
	return OutcomeCancelled
}

// Book pretends to reserve an offer and hands back a confirmation.
func (s *Service) Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx, s.config.BookingLatency); err != nil {
		return nil, err
	}

	bookingID := "TN" + strconv.FormatInt(s.ids.GenerateID(), 10)
	s.config.Recorder.ObserveBooking(string(req.Mode))
	s.log.Info("booking confirmed",
		logger.Field{Key: "booking_id", Value: bookingID},
		logger.Field{Key: "mode", Value: string(req.Mode)},
		logger.Field{Key: "offer_id", Value: req.OfferID},
	)

	return &models.BookingConfirmation{
		Success:   true,
		BookingID: bookingID,
		Message:   "Booking berhasil! ID Booking: " + bookingID,
		Kind:      models.KindSuccess,
		Details:   req,
	}, nil
}
