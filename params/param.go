package params

import (
	"strconv"

	"github.com/oomph-ac/parkour/oerror"
)

// Kind is the declared value kind of a parameter.
type Kind uint8

const (
	KindFloat Kind = iota
	KindInt
	KindBool
)

// String ...
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Param is a single named tunable with a getter and setter bound to the value it controls. Values are not
// validated: whatever is set is used by the next tick.
type Param struct {
	Name        string
	Description string
	Kind        Kind

	getFloat func() float32
	setFloat func(float32)
	getInt   func() int
	setInt   func(int)
	getBool  func() bool
	setBool  func(bool)
}

// Float returns a float parameter bound to ptr.
func Float(name, description string, ptr *float32) *Param {
	return FloatFunc(name, description, func() float32 { return *ptr }, func(v float32) { *ptr = v })
}

// FloatFunc returns a float parameter backed by the given accessors.
func FloatFunc(name, description string, get func() float32, set func(float32)) *Param {
	return &Param{Name: name, Description: description, Kind: KindFloat, getFloat: get, setFloat: set}
}

// Int returns an integer parameter bound to ptr.
func Int(name, description string, ptr *int) *Param {
	return &Param{
		Name:        name,
		Description: description,
		Kind:        KindInt,
		getInt:      func() int { return *ptr },
		setInt:      func(v int) { *ptr = v },
	}
}

// Bool returns a boolean parameter bound to ptr.
func Bool(name, description string, ptr *bool) *Param {
	return &Param{
		Name:        name,
		Description: description,
		Kind:        KindBool,
		getBool:     func() bool { return *ptr },
		setBool:     func(v bool) { *ptr = v },
	}
}

// Float returns the value of a float parameter.
func (p *Param) Float() (float32, error) {
	if p.Kind != KindFloat {
		return 0, p.kindMismatch(KindFloat)
	}
	return p.getFloat(), nil
}

// SetFloat sets the value of a float parameter.
func (p *Param) SetFloat(v float32) error {
	if p.Kind != KindFloat {
		return p.kindMismatch(KindFloat)
	}
	p.setFloat(v)
	return nil
}

// Int returns the value of an integer parameter.
func (p *Param) Int() (int, error) {
	if p.Kind != KindInt {
		return 0, p.kindMismatch(KindInt)
	}
	return p.getInt(), nil
}

// SetInt sets the value of an integer parameter.
func (p *Param) SetInt(v int) error {
	if p.Kind != KindInt {
		return p.kindMismatch(KindInt)
	}
	p.setInt(v)
	return nil
}

// Bool returns the value of a boolean parameter.
func (p *Param) Bool() (bool, error) {
	if p.Kind != KindBool {
		return false, p.kindMismatch(KindBool)
	}
	return p.getBool(), nil
}

// SetBool sets the value of a boolean parameter.
func (p *Param) SetBool(v bool) error {
	if p.Kind != KindBool {
		return p.kindMismatch(KindBool)
	}
	p.setBool(v)
	return nil
}

// String returns the current value of the parameter formatted as text.
func (p *Param) String() string {
	switch p.Kind {
	case KindFloat:
		return strconv.FormatFloat(float64(p.getFloat()), 'g', -1, 32)
	case KindInt:
		return strconv.Itoa(p.getInt())
	case KindBool:
		return strconv.FormatBool(p.getBool())
	}
	return ""
}

// Set parses the text value according to the parameter's kind and sets it.
func (p *Param) Set(value string) error {
	switch p.Kind {
	case KindFloat:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return oerror.New("parameter %s: invalid float %q: %v", p.Name, value, err)
		}
		p.setFloat(float32(f))
	case KindInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return oerror.New("parameter %s: invalid int %q: %v", p.Name, value, err)
		}
		p.setInt(i)
	case KindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return oerror.New("parameter %s: invalid bool %q: %v", p.Name, value, err)
		}
		p.setBool(b)
	}
	return nil
}

func (p *Param) kindMismatch(want Kind) error {
	return oerror.New("parameter %s is %v, not %v", p.Name, p.Kind, want)
}
