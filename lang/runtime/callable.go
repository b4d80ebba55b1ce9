package runtime

import (
	"maps"
	"slices"

	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/token"
)

// Callable is a value that can appear as the callee of a call expression.
type Callable interface {
	Value

	// Arity is the exact number of arguments the callable accepts.
	Arity() int

	Call(in *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function or method together with the frame it
// closes over.
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction returns a function for decl closing over closure.
func NewFunction(decl *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (*Function) value() {}

// Name returns the declared name of the function.
func (f *Function) Name() string { return f.decl.Name.Lexeme }

func (f *Function) String() string { return "<fn " + f.Name() + ">" }

// Arity implements [Callable].
func (f *Function) Arity() int { return len(f.decl.Params) }

// Params returns the declared parameter names.
func (f *Function) Params() []string {
	names := make([]string, len(f.decl.Params))
	for i, p := range f.decl.Params {
		names[i] = p.Lexeme
	}

	return names
}

// Call implements [Callable]. Parameters are bound in a new frame enclosing
// the closure. An initializer always yields the bound receiver.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, p := range f.decl.Params {
		env.Define(p.Lexeme, args[i])
	}

	c, err := in.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}

	if c.returning {
		return c.value, nil
	}

	return Nil{}, nil
}

// Bind returns a copy of the method whose closure binds "this" to inst.
func (f *Function) Bind(inst *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", inst)

	return NewFunction(f.decl, env, f.isInitializer)
}

// Native is a function implemented in Go.
type Native struct {
	Name   string
	Params int
	Fn     func(in *Interpreter, args []Value) (Value, error)
}

func (*Native) value() {}

func (*Native) String() string { return "<native fn>" }

// Arity implements [Callable].
func (n *Native) Arity() int { return n.Params }

// Call implements [Callable].
func (n *Native) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}

// Clock returns the native "clock", which reports the interpreter's current
// time in seconds since the Unix epoch.
func Clock() *Native {
	return &Native{
		Name:   "clock",
		Params: 0,
		Fn: func(in *Interpreter, _ []Value) (Value, error) {
			return Number(float64(in.now().UnixNano()) / 1e9), nil
		},
	}
}

// Class is a class value. Calling it constructs an [Instance].
type Class struct {
	name       string
	superclass *Class
	methods    map[string]*Function
}

// NewClass returns a class with the given superclass, which may be nil.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{name: name, superclass: superclass, methods: methods}
}

func (*Class) value() {}

// Name returns the declared name of the class.
func (c *Class) Name() string { return c.name }

// Superclass returns the class this one inherits from, or nil.
func (c *Class) Superclass() *Class { return c.superclass }

func (c *Class) String() string { return c.name }

// FindMethod returns the named method of c or its nearest ancestor
// defining it, or nil.
func (c *Class) FindMethod(name string) *Function {
	for k := c; k != nil; k = k.superclass {
		if m, ok := k.methods[name]; ok {
			return m
		}
	}

	return nil
}

// Methods returns the names of the methods of c and its ancestors, sorted.
func (c *Class) Methods() []string {
	seen := make(map[string]struct{})

	for k := c; k != nil; k = k.superclass {
		for name := range k.methods {
			seen[name] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// Arity implements [Callable]. It is the arity of "init", or zero when the
// class has no initializer.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}

	return 0
}

// Call implements [Callable]. It creates an instance and runs its
// initializer, if any.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	inst := NewInstance(c)

	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

// Instance is an object created by calling a [Class].
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance returns an instance of class with no fields.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (*Instance) value() {}

// Class returns the class the instance was created from.
func (i *Instance) Class() *Class { return i.class }

func (i *Instance) String() string { return i.class.name + " instance" }

// Get returns the named field, or else the named method bound to i.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}

	if m := i.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i), nil
	}

	return nil, NewError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Fields returns the names of the fields set on i, sorted.
func (i *Instance) Fields() []string {
	return slices.Sorted(maps.Keys(i.fields))
}

// Set creates or replaces the named field.
func (i *Instance) Set(name token.Token, v Value) {
	i.fields[name.Lexeme] = v
}
