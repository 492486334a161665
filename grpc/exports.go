package grpc

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wazero/api"
)

type functionDefinition struct {
	name        string
	paramTypes  []api.ValueType // parameter types
	resultTypes []api.ValueType // result types
}

var (
	mallocFunctionDefinition = functionDefinition{
		name: "hornet-v1-malloc",
		paramTypes: []api.ValueType{
			api.ValueTypeI32, // u32 (pointer to the buffer)
			api.ValueTypeI32, // i32 (size of the buffer)
		},
		resultTypes: []api.ValueType{api.ValueTypeI32}, // u32 (pointer to the allocated buffer)
	}
	commandFunctionDefinition = functionDefinition{
		name: "hornet-v1-command",
		paramTypes: []api.ValueType{
			api.ValueTypeI32, // u32 (pointer to the buffer)
			api.ValueTypeI32, // u32 (method size)
			api.ValueTypeI32, // u32 (buffer size)
		},
		resultTypes: []api.ValueType{api.ValueTypeI64}, // u64 (pointer and size of the buffer packed in a single u64)
	}
)

// getExportedFunction retrieves an exported function from the given module
// and checks if it matches the expected function definition. It returns the
// function if it exists and matches the expected definition, or an error if it
// does not exist, does not match the expected definition or the module does
// not allow looking up exports.
func getExportedFunction(module api.Module, wantFn functionDefinition) (_ api.Function, err error) {
	defer func() {
		// Host modules panic instead of returning nil.
		if recover() != nil {
			err = fmt.Errorf("exported function %q does not exist", wantFn.name)
		}
	}()

	fn := module.ExportedFunction(wantFn.name)
	if fn == nil {
		return nil, fmt.Errorf("exported function %q does not exist", wantFn.name)
	}

	def := fn.Definition()
	if !isValidFunctionDefinition(wantFn, def.ParamTypes(), def.ResultTypes()) {
		return nil, newFunctionDefinitionError(wantFn, def.ParamTypes(), def.ResultTypes())
	}

	return fn, nil
}

func isValidFunctionDefinition(want functionDefinition, gotParamTypes, gotResultTypes []api.ValueType) bool {
	return equalValueTypes(want.paramTypes, gotParamTypes) &&
		equalValueTypes(want.resultTypes, gotResultTypes)
}

func equalValueTypes(want, got []api.ValueType) bool {
	if len(want) != len(got) {
		return false
	}
	for i, typ := range got {
		if want[i] != typ {
			return false
		}
	}
	return true
}

type functionDefinitionError struct {
	expected       functionDefinition
	gotParamTypes  []api.ValueType // parameter types
	gotResultTypes []api.ValueType // result types
}

func newFunctionDefinitionError(expected functionDefinition, gotParamTypes, gotResultTypes []api.ValueType) *functionDefinitionError {
	return &functionDefinitionError{
		expected:       expected,
		gotParamTypes:  gotParamTypes,
		gotResultTypes: gotResultTypes,
	}
}

func (e *functionDefinitionError) Error() string {
	return fmt.Sprintf(
		"exported Wasm function definition mismatch, expected %s, got %s",
		e.formatFunctionDefinition(e.expected.paramTypes, e.expected.resultTypes),
		e.formatFunctionDefinition(e.gotParamTypes, e.gotResultTypes),
	)
}

func (e *functionDefinitionError) formatFunctionDefinition(params []api.ValueType, results []api.ValueType) string {
	var out strings.Builder
	out.WriteString(e.expected.name + "(")
	out.WriteString(formatValueTypes(params))
	out.WriteString(")")

	if len(results) > 0 {
		out.WriteString(" -> (")
		out.WriteString(formatValueTypes(results))
		out.WriteString(")")
	}

	return out.String()
}

func formatValueTypes(types []api.ValueType) string {
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = api.ValueTypeName(typ)
	}
	return strings.Join(names, ", ")
}
