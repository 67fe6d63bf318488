package agents

import (
	"fmt"
	"sort"

	"wikibench/internal/eval"
)

// BuildContext carries the dependencies every example agent may need. The
// target page is explicit configuration, never read from the environment.
type BuildContext struct {
	Source     eval.LinkSource
	TargetPage string
}

type factory func(bc BuildContext) eval.Agent

var builtins = map[string]factory{
	"random": func(bc BuildContext) eval.Agent {
		return NewRandom(bc.Source, bc.TargetPage, defaultRandomMaxSteps)
	},
	"greedy": func(bc BuildContext) eval.Agent {
		return NewGreedy(bc.Source, bc.TargetPage, defaultGreedyMaxSteps)
	},
	"heuristic": func(bc BuildContext) eval.Agent {
		return NewHeuristic(bc.Source, bc.TargetPage, defaultHeuristicMaxSteps)
	},
	"cheat": func(bc BuildContext) eval.Agent {
		return NewCheat(bc.TargetPage)
	},
	"giveup": func(bc BuildContext) eval.Agent {
		return NewGiveUp()
	},
}

// Names lists the registered example agents, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named example agent.
func Build(name string, bc BuildContext) (eval.Agent, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (available: %v)", name, Names())
	}
	return f(bc), nil
}

// BuildAll constructs every example agent, in Names order.
func BuildAll(bc BuildContext) []eval.Agent {
	out := make([]eval.Agent, 0, len(builtins))
	for _, name := range Names() {
		agent, _ := Build(name, bc)
		out = append(out, agent)
	}
	return out
}
