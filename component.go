package blaze

/*
component.go implements the two-level component/command routing key
(spec §4.6). The reference derives Component/Command sum types from a
declaration table via a macro; Go has no closed sum types, so this is
a small generated-at-construction-time registry instead (REDESIGN FLAG
R1, same rationale as struct.go). A game's component/command table is
still just data - CommandSpec/ComponentSpec let a caller declare it
once (by hand, or from a generated Go file) and get a RouteKey type
that round-trips per spec I8.
*/

// CommandSpec declares one command within a component.
type CommandSpec struct {
	Name   string
	ID     uint16
	Notify bool // distinguishes two same-numbered commands (spec §4.6)
}

// ComponentSpec declares one subsystem and its commands.
type ComponentSpec struct {
	Name     string
	ID       uint16
	Commands []CommandSpec
}

// RouteKey is a single (component, command, notify) routing key,
// resolved against a ComponentTable.
type RouteKey struct {
	Component     uint16
	Command       uint16
	Notify        bool
	ComponentName string
	CommandName   string
}

// Values returns the (component-id, command-id) pair (spec §4.6).
func (k RouteKey) Values() (component, command uint16) { return k.Component, k.Command }

// routeIndex is the (component, command, notify) lookup key.
type routeIndex struct {
	component uint16
	command   uint16
	notify    bool
}

// ComponentTable resolves numeric (component, command) pairs to
// RouteKeys and back, built once from a declaration table (spec §4.6).
type ComponentTable struct {
	byIndex map[routeIndex]RouteKey
}

// NewComponentTable builds a ComponentTable from specs. Unknown ids at
// lookup time resolve to (RouteKey{}, false) - the router treats that
// as a missing-handler condition (spec §4.6, §9).
func NewComponentTable(specs []ComponentSpec) *ComponentTable {
	t := &ComponentTable{byIndex: make(map[routeIndex]RouteKey)}
	for _, c := range specs {
		for _, cmd := range c.Commands {
			idx := routeIndex{component: c.ID, command: cmd.ID, notify: cmd.Notify}
			t.byIndex[idx] = RouteKey{
				Component:     c.ID,
				Command:       cmd.ID,
				Notify:        cmd.Notify,
				ComponentName: c.Name,
				CommandName:   cmd.Name,
			}
		}
	}
	return t
}

// FromValues resolves a numeric (component, command, notify) triple to
// its RouteKey (spec §4.6's from_values). The notify flag is required
// because a subsystem may define two commands sharing a numeric id,
// distinguished only by whether the command is a notification.
func (t *ComponentTable) FromValues(component, command uint16, notify bool) (RouteKey, bool) {
	k, ok := t.byIndex[routeIndex{component: component, command: command, notify: notify}]
	return k, ok
}
