package engine

import (
	"errors"
	"io"
	"log/slog"

	"github.com/wildfunctions/computor/pkg/expr"
	"github.com/wildfunctions/computor/pkg/parser"
	"github.com/wildfunctions/computor/pkg/poly"
	"github.com/wildfunctions/computor/pkg/solver"
)

// Status summarizes how far an equation got through the pipeline.
type Status string

const (
	StatusSolved        Status = "solved"
	StatusParseError    Status = "parse-error"
	StatusNotPolynomial Status = "not-polynomial"
	StatusCannotSolve   Status = "cannot-solve"
)

// Report is everything known about one equation after Solve.
type Report struct {
	Input    string
	Status   Status
	Variable string

	// Renderings at each pipeline milestone.
	Parsed     string
	Simplified string
	Canonical  string
	LaTeX      string

	Polynomial poly.Polynomial
	Solution   *solver.Solution

	// Residuals holds LHS - RHS of the parsed equation at each real root.
	Residuals []float64

	Err error
}

// Engine runs the rewrite and solve pipeline.
type Engine struct {
	cfg    Config
	parser *parser.Parser
	log    *slog.Logger
}

// New creates a new engine from the given config. A nil logger discards.
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		cfg:    cfg,
		parser: parser.New(parser.Options{MaxDepth: cfg.MaxDepth}),
		log:    logger,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger { return e.log }

// Solve parses one equation, normalizes it, extracts its coefficients and
// solves it. The returned error is also stored in Report.Err; it is a
// *parser.ParseError, poly.ErrNotPolynomial or solver.ErrCannotSolve.
func (e *Engine) Solve(input string) (Report, error) {
	r := Report{Input: input}
	fail := func(status Status, err error) (Report, error) {
		r.Status, r.Err = status, err
		e.log.Debug("equation failed", "input", input, "status", status, "err", err)
		return r, err
	}

	tree, err := e.parser.Parse(input)
	if err != nil {
		return fail(StatusParseError, err)
	}
	r.Parsed = tree.String()
	r.Variable = "x"
	if vars := expr.Variables(tree); len(vars) > 0 {
		r.Variable = string(vars[0])
	}
	e.log.Debug("parsed", "tree", r.Parsed, "nodes", tree.NodeCount(), "depth", tree.Depth())

	// Keep an untouched copy of the parsed equation for the residual check.
	parsed := tree.Clone()
	simplified, canonical := expr.Normalize(tree)
	r.Simplified = simplified.String()
	r.Canonical = canonical.String()
	r.LaTeX = canonical.LaTeX()
	e.log.Debug("normalized", "simplified", r.Simplified, "canonical", r.Canonical, "changed", !expr.Equal(tree, simplified))

	p, err := poly.Extract(canonical)
	if err != nil {
		return fail(StatusNotPolynomial, err)
	}
	r.Polynomial = p
	e.log.Debug("extracted", "polynomial", p.String(), "degree", p.Degree())

	sol, err := solver.Solve(p)
	if err != nil {
		return fail(StatusCannotSolve, err)
	}
	r.Solution = &sol
	r.Status = StatusSolved

	if sol.Kind == solver.KindReal {
		for _, root := range sol.Roots {
			res, ok := parsed.EvalF64(real(root.Value))
			if !ok {
				continue
			}
			r.Residuals = append(r.Residuals, res)
		}
	}
	e.log.Debug("solved", "kind", sol.Kind.String(), "roots", len(sol.Roots), "residuals", r.Residuals)

	return r, nil
}

// ParseColumn returns the 1-based column of a parse failure, or 0.
func (r Report) ParseColumn() int {
	var pe *parser.ParseError
	if errors.As(r.Err, &pe) {
		return pe.Column
	}
	return 0
}
