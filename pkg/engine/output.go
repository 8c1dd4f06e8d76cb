package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wildfunctions/computor/pkg/poly"
	"github.com/wildfunctions/computor/pkg/solver"
)

// Writer renders a report in one output format.
type Writer func(w io.Writer, r Report, cfg Config) error

var registry = map[string]Writer{}

// RegisterWriter adds a writer to the registry.
func RegisterWriter(name string, fn Writer) {
	registry[name] = fn
}

// GetWriter returns a writer by name.
func GetWriter(name string) (Writer, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (available: %v)", name, WriterNames())
	}
	return fn, nil
}

// WriterNames returns all registered format names, sorted.
func WriterNames() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterWriter("text", WriteText)
	RegisterWriter("json", WriteJSON)
	RegisterWriter("latex", WriteLaTeX)
}

// Write renders r in the engine's configured format.
func (e *Engine) Write(w io.Writer, r Report) error {
	fn, err := GetWriter(e.cfg.Format)
	if err != nil {
		return err
	}
	return fn(w, r, e.cfg)
}

// palette styles the text report. Without color every style is identity.
type palette struct {
	prompt, label, root, warn, fail func(...string) string
}

func newPalette(w io.Writer, color bool) palette {
	if !color {
		plain := func(s ...string) string { return strings.Join(s, " ") }
		return palette{plain, plain, plain, plain, plain}
	}
	re := lipgloss.NewRenderer(w)
	return palette{
		prompt: re.NewStyle().Foreground(lipgloss.Color("#6B7280")).Render,
		label:  re.NewStyle().Bold(true).Render,
		root:   re.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true).Render,
		warn:   re.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Render,
		fail:   re.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render,
	}
}

// WriteText writes a report in human-readable format.
func WriteText(w io.Writer, r Report, cfg Config) error {
	pal := newPalette(w, cfg.Color)
	digits := cfg.Precision

	fmt.Fprintf(w, "%s %s\n", pal.prompt(">>>"), r.Input)

	if r.Status == StatusParseError {
		if col := r.ParseColumn(); col > 0 {
			fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col-1), pal.fail("^"))
		}
		fmt.Fprintf(w, "%s %v\n", pal.fail("Error:"), r.Err)
		return nil
	}

	if cfg.Steps {
		fmt.Fprintf(w, "%s %s\n", pal.prompt("==>"), r.Parsed)
		fmt.Fprintf(w, "%s %s\n", pal.prompt("==>"), r.Simplified)
		fmt.Fprintf(w, "%s %s\n", pal.prompt("==>"), r.Canonical)
	}

	switch r.Status {
	case StatusNotPolynomial:
		fmt.Fprintf(w, "%s %v\n", pal.fail("Error:"), r.Err)
		return nil
	case StatusCannotSolve:
		fmt.Fprintf(w, "%s %s\n", pal.label("Polynomial:"), r.Polynomial)
		fmt.Fprintf(w, "%s %v\n", pal.fail("Error:"), r.Err)
		return nil
	}

	sol := r.Solution
	fmt.Fprintf(w, "%s %s\n", pal.label("Polynomial:"), r.Polynomial)
	fmt.Fprintf(w, "%s %d\n", pal.label("Degree:"), sol.Degree)
	if sol.Discriminant != nil {
		fmt.Fprintf(w, "%s %s\n", pal.label("Discriminant:"), solver.FormatFloat(*sol.Discriminant, digits))
	}

	switch sol.Kind {
	case solver.KindAllReals:
		fmt.Fprintln(w, pal.root("Every real number is a solution."))
	case solver.KindNoSolution:
		fmt.Fprintln(w, pal.warn("No solution."))
	case solver.KindComplex:
		fmt.Fprintln(w, pal.warn("No real solutions. Complex roots:"))
	}
	for _, root := range sol.Roots {
		fmt.Fprintf(w, "%s = %s\n", r.Variable, stepText(root, digits, pal))
	}
	return nil
}

// stepText shows the final division, e.g. "-4 / 2 = -2" or
// "(-2 + 4*i) / 2 = -1 + 2*i".
func stepText(root solver.Root, digits int, pal palette) string {
	value := pal.root(root.Format(digits))
	if root.Den == 1 || root.Den == 0 {
		return value
	}
	den := solver.FormatFloat(root.Den, digits)
	if root.Real() {
		return fmt.Sprintf("%s / %s = %s", solver.FormatFloat(root.Num, digits), den, value)
	}
	num := solver.Root{Value: complex(root.Num, root.ImNum)}.Format(digits)
	if root.Num == 0 {
		return fmt.Sprintf("%s / %s = %s", num, den, value)
	}
	return fmt.Sprintf("(%s) / %s = %s", num, den, value)
}

type jsonRoot struct {
	Re   float64 `json:"re"`
	Im   float64 `json:"im"`
	Text string  `json:"text"`
}

type jsonReport struct {
	Input        string          `json:"input"`
	Status       Status          `json:"status"`
	Variable     string          `json:"variable,omitempty"`
	Error        string          `json:"error,omitempty"`
	Column       int             `json:"column,omitempty"`
	Parsed       string          `json:"parsed,omitempty"`
	Simplified   string          `json:"simplified,omitempty"`
	Canonical    string          `json:"canonical,omitempty"`
	LaTeX        string          `json:"latex,omitempty"`
	Polynomial   poly.Polynomial `json:"polynomial,omitempty"`
	Degree       *int            `json:"degree,omitempty"`
	Kind         string          `json:"kind,omitempty"`
	Discriminant *float64        `json:"discriminant,omitempty"`
	Roots        []jsonRoot      `json:"roots,omitempty"`
	Residuals    []float64       `json:"residuals,omitempty"`
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report, cfg Config) error {
	out := jsonReport{
		Input:      r.Input,
		Status:     r.Status,
		Variable:   r.Variable,
		Column:     r.ParseColumn(),
		Parsed:     r.Parsed,
		Simplified: r.Simplified,
		Canonical:  r.Canonical,
		LaTeX:      r.LaTeX,
		Polynomial: r.Polynomial,
		Residuals:  r.Residuals,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	if sol := r.Solution; sol != nil {
		out.Degree = &sol.Degree
		out.Kind = sol.Kind.String()
		out.Discriminant = sol.Discriminant
		for _, root := range sol.Roots {
			out.Roots = append(out.Roots, jsonRoot{
				Re:   real(root.Value),
				Im:   imag(root.Value),
				Text: root.Format(cfg.Precision),
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// latexEscape escapes characters that are special in LaTeX text mode.
func latexEscape(s string) string {
	return strings.NewReplacer(`\`, `\textbackslash{}`, "_", `\_`, "^", `\^{}`, "#", `\#`, "&", `\&`, "%", `\%`).Replace(s)
}

// WriteLaTeX writes a compilable LaTeX document for one report.
func WriteLaTeX(w io.Writer, r Report, cfg Config) error {
	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintf(w, "\\noindent Input: \\texttt{%s}\n\n", latexEscape(r.Input))

	switch r.Status {
	case StatusParseError:
		fmt.Fprintf(w, "Parse error: %s\n", latexEscape(r.Err.Error()))
	case StatusNotPolynomial, StatusCannotSolve:
		fmt.Fprintln(w, `\[`)
		fmt.Fprintf(w, "  %s\n", r.LaTeX)
		fmt.Fprintln(w, `\]`)
		fmt.Fprintf(w, "%s\n", latexEscape(r.Err.Error()))
	default:
		fmt.Fprintln(w, `\[`)
		fmt.Fprintf(w, "  %s\n", r.LaTeX)
		fmt.Fprintln(w, `\]`)
		writeLaTeXSolution(w, r.Variable, r.Solution, cfg.Precision)
	}

	fmt.Fprintln(w, `\end{document}`)
	return nil
}

func writeLaTeXSolution(w io.Writer, variable string, sol *solver.Solution, digits int) {
	if sol.Discriminant != nil {
		fmt.Fprintf(w, "\\noindent Discriminant: $\\Delta = %s$\\\\\n", solver.FormatFloat(*sol.Discriminant, digits))
	}
	switch sol.Kind {
	case solver.KindAllReals:
		fmt.Fprintln(w, `Every real number is a solution.`)
	case solver.KindNoSolution:
		fmt.Fprintln(w, `No solution.`)
	case solver.KindComplex:
		fmt.Fprintln(w, `No real solutions.`)
	}
	if len(sol.Roots) == 0 {
		return
	}
	fmt.Fprintln(w, `\begin{align*}`)
	for i, root := range sol.Roots {
		sep := `\\`
		if i == len(sol.Roots)-1 {
			sep = ""
		}
		value := strings.ReplaceAll(root.Format(digits), "*i", "i")
		fmt.Fprintf(w, "  %s_{%d} &= %s%s\n", variable, i+1, value, sep)
	}
	fmt.Fprintln(w, `\end{align*}`)
}
