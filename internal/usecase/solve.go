package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"wolfram-solver/internal/domain"
)

// AnswerFetcher is the upstream short-answers API consumed by SolveService.
type AnswerFetcher interface {
	Result(ctx context.Context, query string) (string, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// SolveService validates user-entered coefficients, builds the query text
// and dispatches it to the computational service. It keeps no state between
// calls.
type SolveService struct {
	fetcher AnswerFetcher
	log     zerolog.Logger
}

func NewSolveService(f AnswerFetcher, logger zerolog.Logger) (*SolveService, error) {
	if f == nil {
		return nil, errors.New("usecase: answer fetcher must not be nil")
	}
	return &SolveService{fetcher: f, log: logger}, nil
}

// SolveQuadratic submits "solve ax^2 + bx + c = 0" for the given raw
// coefficients. Each coefficient must pass numeric validation.
func (s *SolveService) SolveQuadratic(ctx context.Context, q domain.Quadratic) (string, error) {
	if err := validateNumbers(q.A, q.B, q.C); err != nil {
		return "", err
	}
	return s.dispatch(ctx, domain.Query{
		Kind: domain.KindQuadratic,
		Text: BuildQuadraticQuery(q.A, q.B, q.C),
	})
}

// SolveTwoUnknowns submits a system of two linear equations in x and y.
func (s *SolveService) SolveTwoUnknowns(ctx context.Context, sys domain.TwoUnknownSystem) (string, error) {
	if err := validateNumbers(sys.A1, sys.B1, sys.C1, sys.A2, sys.B2, sys.C2); err != nil {
		return "", err
	}
	eqs := []string{
		BuildTwoUnknownEquation(sys.A1, sys.B1, sys.C1),
		BuildTwoUnknownEquation(sys.A2, sys.B2, sys.C2),
	}
	return s.solveSystem(ctx, domain.KindSystem2, eqs)
}

// SolveThreeUnknowns submits a system of three linear equations in x, y and z.
func (s *SolveService) SolveThreeUnknowns(ctx context.Context, sys domain.ThreeUnknownSystem) (string, error) {
	if err := validateNumbers(
		sys.A1, sys.B1, sys.C1, sys.D1,
		sys.A2, sys.B2, sys.C2, sys.D2,
		sys.A3, sys.B3, sys.C3, sys.D3,
	); err != nil {
		return "", err
	}
	eqs := []string{
		BuildThreeUnknownEquation(sys.A1, sys.B1, sys.C1, sys.D1),
		BuildThreeUnknownEquation(sys.A2, sys.B2, sys.C2, sys.D2),
		BuildThreeUnknownEquation(sys.A3, sys.B3, sys.C3, sys.D3),
	}
	return s.solveSystem(ctx, domain.KindSystem3, eqs)
}

// solveSystem dispatches equations built from already-validated
// coefficients. ValidateEquation applies to user-entered equation fields
// only; the builders emit nothing outside the validated inputs.
func (s *SolveService) solveSystem(ctx context.Context, kind domain.Kind, eqs []string) (string, error) {
	return s.dispatch(ctx, domain.Query{Kind: kind, Text: BuildSystemQuery(eqs)})
}

func (s *SolveService) dispatch(ctx context.Context, q domain.Query) (string, error) {
	s.log.Debug().Str("kind", string(q.Kind)).Str("query", q.Text).Msg("dispatching query")

	answer, err := s.fetcher.Result(ctx, q.Text)
	if err != nil {
		if status, ok := upstreamStatusCode(err); ok {
			return "", newError(ErrorUpstream, fmt.Sprintf("short answers status %d", status), err)
		}
		return "", newError(ErrorUpstream, "short answers request failed", err)
	}
	return strings.TrimSpace(answer), nil
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}
