// Package console implements the interactive terminal menu. It owns all
// prompting and rendering; solving is delegated to the usecase layer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wolfram-solver/internal/domain"
	"wolfram-solver/internal/integrations/wolfram"
	"wolfram-solver/internal/usecase"
)

// Solver is the equation-solving surface consumed by the menu.
type Solver interface {
	SolveQuadratic(ctx context.Context, q domain.Quadratic) (string, error)
	SolveTwoUnknowns(ctx context.Context, s domain.TwoUnknownSystem) (string, error)
	SolveThreeUnknowns(ctx context.Context, s domain.ThreeUnknownSystem) (string, error)
}

// Menu drives the option loop: print choices, collect coefficients, hand
// them to the solver and render whatever comes back.
type Menu struct {
	solver Solver
	in     *bufio.Reader
	out    io.Writer
}

func NewMenu(solver Solver, in io.Reader, out io.Writer) (*Menu, error) {
	if solver == nil {
		return nil, errors.New("console: solver must not be nil")
	}
	if in == nil || out == nil {
		return nil, errors.New("console: input and output must not be nil")
	}
	return &Menu{solver: solver, in: bufio.NewReader(in), out: out}, nil
}

// Run loops until the user picks exit or stdin is exhausted. Solve failures
// are rendered and the loop continues; only I/O errors end the loop early.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.readLine("Enter your choice (0/1/2/3/4): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var stepErr error
		switch choice {
		case "0":
			m.printInstructions()
		case "1":
			stepErr = m.runQuadratic(ctx)
		case "2":
			stepErr = m.runTwoUnknowns(ctx)
		case "3":
			stepErr = m.runThreeUnknowns(ctx)
		case "4":
			fmt.Fprintln(m.out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please select 0, 1, 2, 3 or 4.")
		}
		if stepErr != nil {
			if errors.Is(stepErr, io.EOF) {
				return nil
			}
			return stepErr
		}
	}
}

func (m *Menu) runQuadratic(ctx context.Context) error {
	vals, err := m.readFields(
		"Enter coefficient a: ",
		"Enter coefficient b: ",
		"Enter coefficient c: ",
	)
	if err != nil {
		return err
	}
	answer, err := m.solver.SolveQuadratic(ctx, domain.Quadratic{A: vals[0], B: vals[1], C: vals[2]})
	m.printResult(answer, err)
	return nil
}

func (m *Menu) runTwoUnknowns(ctx context.Context) error {
	fmt.Fprintln(m.out, "Enter coefficients for the equations in the form a1x + b1y = c1:")
	vals, err := m.readFields(
		"Enter a1: ", "Enter b1: ", "Enter c1: ",
		"Enter a2: ", "Enter b2: ", "Enter c2: ",
	)
	if err != nil {
		return err
	}
	answer, err := m.solver.SolveTwoUnknowns(ctx, domain.TwoUnknownSystem{
		A1: vals[0], B1: vals[1], C1: vals[2],
		A2: vals[3], B2: vals[4], C2: vals[5],
	})
	m.printResult(answer, err)
	return nil
}

func (m *Menu) runThreeUnknowns(ctx context.Context) error {
	fmt.Fprintln(m.out, "Enter coefficients for the equations in the form a1x + b1y + c1z = d1:")
	vals, err := m.readFields(
		"Enter a1: ", "Enter b1: ", "Enter c1: ", "Enter d1: ",
		"Enter a2: ", "Enter b2: ", "Enter c2: ", "Enter d2: ",
		"Enter a3: ", "Enter b3: ", "Enter c3: ", "Enter d3: ",
	)
	if err != nil {
		return err
	}
	answer, err := m.solver.SolveThreeUnknowns(ctx, domain.ThreeUnknownSystem{
		A1: vals[0], B1: vals[1], C1: vals[2], D1: vals[3],
		A2: vals[4], B2: vals[5], C2: vals[6], D2: vals[7],
		A3: vals[8], B3: vals[9], C3: vals[10], D3: vals[11],
	})
	m.printResult(answer, err)
	return nil
}

func (m *Menu) printResult(answer string, err error) {
	if err != nil {
		fmt.Fprintln(m.out, renderError(err))
		return
	}
	fmt.Fprintln(m.out, "Solution: "+answer)
}

// renderError maps solve failures to the strings shown in the terminal.
// Nothing here is ever fatal.
func renderError(err error) string {
	var statusErr *wolfram.HTTPStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error: %d, %s", statusErr.StatusCode, statusErr.Body)
	}

	var uerr *usecase.Error
	if errors.As(err, &uerr) {
		switch uerr.Code {
		case usecase.ErrorInvalidInput:
			return "Invalid input: " + uerr.Reason
		case usecase.ErrorUpstream:
			if uerr.Err != nil {
				return "Request error: " + uerr.Err.Error()
			}
		}
	}
	return "Request error: " + err.Error()
}

func (m *Menu) readFields(prompts ...string) ([]string, error) {
	vals := make([]string, 0, len(prompts))
	for _, p := range prompts {
		v, err := m.readLine(p)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `
Choose a task:
0. Instructions
1. Solve quadratic equation (ax^2 + bx + c = 0)
2. Solve system of 2 equations with 2 unknowns
3. Solve system of 3 equations with 3 unknowns
4. Exit
`)
}

func (m *Menu) printInstructions() {
	fmt.Fprint(m.out, `
Instructions:
1. Solve quadratic equation:
   Input the coefficients a, b and c for the equation ax^2 + bx + c = 0.

2. Solve system of 2 equations:
   Input the coefficients for two equations of the form:
   a1x + b1y = c1
   a2x + b2y = c2

3. Solve system of 3 equations:
   Input the coefficients for three equations of the form:
   a1x + b1y + c1z = d1
   a2x + b2y + c2z = d2
   a3x + b3y + c3z = d3

Coefficients may be signed integers or decimals. Exit with option 4.
`)
}
