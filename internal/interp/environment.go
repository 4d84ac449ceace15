package interp

import (
	"github.com/go-jswalk/jswalk/internal/ast"
	"github.com/go-jswalk/jswalk/pkg/token"
)

// FunctionDef is the definition bound to a name in an Environment's
// function table: its parameter names and its (already Return
// normalized) body.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []ast.Statement
}

// Environment holds the three tables a running program can bind names
// into: variables, constants, and functions. There are no lexical
// closures in this language: a function call's environment carries
// over only the global function table, never any enclosing variables
// or constants, so a function body can call any declared function but
// can only see its own parameters.
type Environment struct {
	variables map[string]token.LiteralValue
	constants map[string]struct{}
	functions map[string]*FunctionDef
}

// NewEnvironment creates an empty top-level Environment.
func NewEnvironment() *Environment {
	return &Environment{
		variables: make(map[string]token.LiteralValue),
		constants: make(map[string]struct{}),
		functions: make(map[string]*FunctionDef),
	}
}

// NewCallEnvironment creates the Environment a function call runs in:
// it shares no variables or constants with the caller, only the
// function table, so that the callee can invoke other declared
// functions but cannot see the caller's locals.
func (e *Environment) NewCallEnvironment() *Environment {
	return &Environment{
		variables: make(map[string]token.LiteralValue),
		constants: make(map[string]struct{}),
		functions: e.functions,
	}
}

// DeclareVariable binds name to value in the variables table. It
// overwrites silently if name was already a variable; spec.md's
// AlreadyDeclared check happens at the call site, before this runs,
// since it must also check the constants and functions tables.
func (e *Environment) DeclareVariable(name string, value token.LiteralValue, isConst bool) {
	e.variables[name] = value
	if isConst {
		e.constants[name] = struct{}{}
	}
}

// IsDeclared reports whether name already names a variable, constant,
// or function in this environment.
func (e *Environment) IsDeclared(name string) bool {
	if _, ok := e.variables[name]; ok {
		return true
	}
	if _, ok := e.functions[name]; ok {
		return true
	}
	return false
}

// IsConstant reports whether name was declared with const.
func (e *Environment) IsConstant(name string) bool {
	_, ok := e.constants[name]
	return ok
}

// GetVariable looks up a variable (or parameter, which is stored the
// same way) by name.
func (e *Environment) GetVariable(name string) (token.LiteralValue, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// DefineFunction registers a function in the function table. Like
// variables, a re-declaration silently replaces the previous
// definition, per SPEC_FULL.md's Open Question decision.
func (e *Environment) DefineFunction(def *FunctionDef) {
	e.functions[def.Name] = def
}

// GetFunction looks up a function definition by name.
func (e *Environment) GetFunction(name string) (*FunctionDef, bool) {
	f, ok := e.functions[name]
	return f, ok
}
