package cpu

import (
	"errors"
	"slices"
)

// netlist is the static wiring of the network. Traversal stops at
// clocked nodes: feedback through a register is legal, while a cycle of
// purely combinational edges would never settle and is rejected before
// the first tick.
type netlist struct {
	order   []string
	clocked map[string]bool
	deps    map[string][]string
}

func newNetlist() (nl *netlist) {
	nl = &netlist{
		clocked: map[string]bool{},
		deps:    map[string][]string{},
	}

	return
}

// comb declares a combinational node and its input edges.
func (nl *netlist) comb(name string, deps ...string) {
	nl.order = append(nl.order, name)
	nl.deps[name] = deps
}

// reg declares a clocked node and its input edges.
func (nl *netlist) reg(name string, deps ...string) {
	nl.comb(name, deps...)
	nl.clocked[name] = true
}

// check verifies the combinational subgraph is acyclic.
func (nl *netlist) check() (err error) {
	done := map[string]bool{}

	for _, name := range nl.order {
		if nl.clocked[name] {
			continue
		}
		err = nl.visit(name, []string{}, done)
		if err != nil {
			return
		}
	}

	return
}

// visit walks combinational edges depth-first from one node, carrying
// the current path for cycle reporting.
func (nl *netlist) visit(name string, path []string, done map[string]bool) (err error) {
	if done[name] {
		return
	}

	if n := slices.Index(path, name); n >= 0 {
		err = errors.Join(ErrCombinationalLoop, ErrLoop(append(path[n:], name)))
		return
	}

	path = append(path, name)
	for _, dep := range nl.deps[name] {
		if nl.clocked[dep] {
			// Register boundary: the edge reads the pre-tick value.
			continue
		}
		err = nl.visit(dep, path, done)
		if err != nil {
			return
		}
	}

	done[name] = true

	return
}
