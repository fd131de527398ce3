// Package vm verifies zero-knowledge program executions against registered
// verifying keys, inside a per-verification execution context.
package vm

import (
	"errors"
	"fmt"

	"github.com/yourorg/snarkexec/pkg/program"
	"github.com/yourorg/snarkexec/pkg/query"
)

var (
	ErrProgramExists   = errors.New("program already exists")
	ErrUnknownProgram  = errors.New("unknown program")
	ErrUnknownFunction = errors.New("unknown function")
)

// Process is a short-lived execution context: the programs it knows and the
// verifying keys bound to their functions. A fresh process is pre-seeded
// with its own copy of the native credits program.
type Process struct {
	programs map[string]*program.Program
	keys     map[string]*VerifyingKey
	query    query.Query
}

// Load constructs a fresh process with the credits program registered.
func Load() *Process {
	p := &Process{
		programs: make(map[string]*program.Program),
		keys:     make(map[string]*VerifyingKey),
	}
	credits := program.Credits()
	p.programs[credits.ID().String()] = credits
	return p
}

// AddProgram registers a program definition. Registering an id twice fails,
// the pre-seeded credits program included.
func (p *Process) AddProgram(prog *program.Program) error {
	id := prog.ID().String()
	if _, exists := p.programs[id]; exists {
		return fmt.Errorf("%w: %s", ErrProgramExists, id)
	}
	p.programs[id] = prog
	return nil
}

// InsertVerifyingKey binds a key to (program id, function). The program and
// function must be registered; a prior binding for the pair is overwritten.
func (p *Process) InsertVerifyingKey(programID program.ID, function program.Identifier, vk *VerifyingKey) error {
	prog, ok := p.programs[programID.String()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, programID)
	}
	if _, ok := prog.Function(function); !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownFunction, programID, function)
	}
	p.keys[bindingKey(programID.String(), function)] = vk
	return nil
}

// SetQuery installs the state-path source consulted when a transition
// consumes record inputs.
func (p *Process) SetQuery(q query.Query) { p.query = q }

func bindingKey(programID string, function program.Identifier) string {
	return programID + "/" + string(function)
}
