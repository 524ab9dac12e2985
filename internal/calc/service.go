// Package calc runs one calculation request end to end: parse the form,
// size the position, check it against policy, and prepare every rendering
// the CLI and HTTP server offer.
package calc

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ergung/position-calculator/form"
	"github.com/ergung/position-calculator/internal/metrics"
	"github.com/ergung/position-calculator/journal"
	"github.com/ergung/position-calculator/pkg/id"
	"github.com/ergung/position-calculator/risk"
)

type Service struct {
	Export journal.Options
	Policy risk.Policy

	Logger  *zap.Logger
	Metrics *metrics.Recorder // optional

	// Now is time.Now unless a test overrides it.
	Now func() time.Time
}

// Report is everything known about one calculation request.
type Report struct {
	Ref      string
	Inputs   risk.Inputs
	Result   risk.Result
	Decision risk.Decision
	Entry    journal.Entry
}

// Run handles one request. Input problems come back as *form.ParseError or
// *risk.ValidationError; the caller shows them to the user.
func (s *Service) Run(v form.Values) (*Report, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now()
	ref := id.New(at)
	log := s.logger().With(zap.String("ref", ref))

	in, err := v.Parse()
	if err != nil {
		s.reject(log, err)
		return nil, err
	}

	res, err := risk.Calculate(in)
	if err != nil {
		s.reject(log, err)
		return nil, err
	}

	rep := &Report{
		Ref:      ref,
		Inputs:   in,
		Result:   res,
		Decision: risk.Evaluate(s.Policy, in, res),
		Entry:    journal.NewEntry(ref, at, in, res),
	}

	if s.Metrics != nil {
		s.Metrics.Observe(res)
	}
	log.Debug("position sized",
		zap.String("mode", res.Mode.String()),
		zap.String("side", res.Side()),
		zap.Float64("quantity", res.Quantity),
		zap.Float64("position_value", res.PositionValue),
		zap.Bool("take_profit", res.TakeProfit != nil),
		zap.Int("violations", len(rep.Decision.Violations)),
	)
	return rep, nil
}

func (s *Service) reject(log *zap.Logger, err error) {
	field := Field(err)
	if s.Metrics != nil {
		s.Metrics.Fail(field)
	}
	log.Info("calculation rejected", zap.String("field", field), zap.Error(err))
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Field names the input an error is about, or "" if err is not an input
// error.
func Field(err error) string {
	var pe *form.ParseError
	if errors.As(err, &pe) {
		return pe.Field
	}
	var ve *risk.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}

// IsInputError reports whether err was caused by what the user typed.
func IsInputError(err error) bool {
	return Field(err) != ""
}
