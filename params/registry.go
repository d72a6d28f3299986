package params

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/parkour/oerror"
)

// Group is a named, ordered set of parameters, as displayed together in a settings panel.
type Group struct {
	Name   string
	Params []*Param
}

// Registry holds parameters by name in the order they were added.
type Registry struct {
	params *orderedmap.OrderedMap[string, *Param]
	groups *orderedmap.OrderedMap[string, []*Param]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		params: orderedmap.NewOrderedMap[string, *Param](),
		groups: orderedmap.NewOrderedMap[string, []*Param](),
	}
}

// Add adds the parameters to the named group. Parameter names must be unique across all groups.
func (r *Registry) Add(group string, params ...*Param) error {
	for _, p := range params {
		if _, ok := r.params.Get(p.Name); ok {
			return oerror.New("parameter %s already registered", p.Name)
		}
	}
	for _, p := range params {
		r.params.Set(p.Name, p)
	}
	r.groups.Set(group, append(r.groups.GetOrDefault(group, nil), params...))
	return nil
}

// Get returns the parameter with the given name.
func (r *Registry) Get(name string) (*Param, bool) {
	return r.params.Get(name)
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return r.params.Len()
}

// GetString returns the text value of the named parameter.
func (r *Registry) GetString(name string) (string, error) {
	p, ok := r.params.Get(name)
	if !ok {
		return "", oerror.New("unknown parameter %s", name)
	}
	return p.String(), nil
}

// SetString parses and sets the value of the named parameter.
func (r *Registry) SetString(name, value string) error {
	p, ok := r.params.Get(name)
	if !ok {
		return oerror.New("unknown parameter %s", name)
	}
	return p.Set(value)
}

// Params returns all parameters in registration order.
func (r *Registry) Params() []*Param {
	list := make([]*Param, 0, r.params.Len())
	for el := r.params.Front(); el != nil; el = el.Next() {
		list = append(list, el.Value)
	}
	return list
}

// Groups returns all groups in registration order.
func (r *Registry) Groups() []Group {
	list := make([]Group, 0, r.groups.Len())
	for el := r.groups.Front(); el != nil; el = el.Next() {
		list = append(list, Group{Name: el.Key, Params: el.Value})
	}
	return list
}
