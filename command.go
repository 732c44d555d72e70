package sqlset

import "database/sql"

// Kind distinguishes plain command text from a stored procedure invocation.
type Kind int

const (
	// KindText is a plain SQL statement or query.
	KindText Kind = iota
	// KindProcedure marks the command text as a stored procedure call.
	// The text is handed to the driver unchanged; database/sql drivers
	// accept procedure invocations as command text.
	KindProcedure
)

// Command describes one logical database command. A Command is executed at
// most once, by the call it was built for, and discarded afterwards.
type Command struct {
	Kind Kind
	SQL  string

	// Bind populates the parameter collection before execution.
	Bind func(*Params)

	// OnParams, if set, observes the bound parameter collection after
	// [NonQuery] executes, so output parameters can be read back.
	OnParams func(*Params)
}

// Query builds a text command with positional arguments.
func Query(query string, args ...any) Command {
	return Command{Kind: KindText, SQL: query, Bind: bindAll(args)}
}

// Procedure builds a stored procedure command with positional arguments.
func Procedure(name string, args ...any) Command {
	return Command{Kind: KindProcedure, SQL: name, Bind: bindAll(args)}
}

func bindAll(args []any) func(*Params) {
	if len(args) == 0 {
		return nil
	}
	return func(p *Params) {
		for _, a := range args {
			p.Add(a)
		}
	}
}

// bind runs the Bind callback against a fresh parameter collection.
func (c Command) bind() *Params {
	p := &Params{}
	if c.Bind != nil {
		c.Bind(p)
	}
	return p
}

// Params is the native parameter collection for one execution. The Bind
// callback of a [Command] fills it; the same collection is passed back to
// OnParams after a [NonQuery] so output destinations can be read.
type Params struct {
	args []any
}

// Add appends a positional parameter.
func (p *Params) Add(value any) { p.args = append(p.args, value) }

// AddNamed appends a named parameter.
func (p *Params) AddNamed(name string, value any) {
	p.args = append(p.args, sql.Named(name, value))
}

// AddOut appends a named output parameter. dest must be a pointer the driver
// can write to after execution.
func (p *Params) AddOut(name string, dest any) {
	p.args = append(p.args, sql.Named(name, sql.Out{Dest: dest}))
}

// Values returns the parameters in the order they were added.
func (p *Params) Values() []any { return p.args }

// Len returns the number of bound parameters.
func (p *Params) Len() int { return len(p.args) }
