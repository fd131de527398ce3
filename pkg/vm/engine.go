package vm

import (
	"github.com/yourorg/snarkexec/pkg/execution"
	"github.com/yourorg/snarkexec/pkg/program"
	"github.com/yourorg/snarkexec/pkg/query"
)

// VerifyFunctionExecution checks a single-function execution against the
// verifying key for functionName in prog. Structural problems (a malformed
// function identifier, a program id collision, an unregistered function)
// surface as errors; every cryptographic failure is a false result. It does
// not check that the execution's state root exists on any ledger — callers
// needing that guarantee must check against a trusted root source
// themselves.
func VerifyFunctionExecution(exec *execution.Execution, vk *VerifyingKey, prog *program.Program, functionName string) (bool, error) {
	return VerifyFunctionExecutionWithQuery(exec, vk, prog, functionName, nil)
}

// VerifyFunctionExecutionWithQuery is VerifyFunctionExecution with a state
// query installed, for executions whose transitions consume record inputs.
func VerifyFunctionExecutionWithQuery(exec *execution.Execution, vk *VerifyingKey, prog *program.Program, functionName string, q query.Query) (bool, error) {
	fn, err := program.ParseIdentifier(functionName)
	if err != nil {
		return false, err
	}
	id := prog.ID()

	proc := Load()
	if id.String() != program.CreditsID {
		if err := proc.AddProgram(prog); err != nil {
			return false, err
		}
	}
	if err := proc.InsertVerifyingKey(id, fn, vk); err != nil {
		return false, err
	}
	if q != nil {
		proc.SetQuery(q)
	}
	return proc.VerifyExecution(exec), nil
}
