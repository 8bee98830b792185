// Package crew loads and validates the declarative agent crew definitions
// consumed by the external orchestration framework. The harness treats
// role/goal/backstory blocks as opaque text; it only checks that the wiring
// between agents and tasks is sound before a deployment ships.
package crew

import (
	"strings"

	"aurora/pkg/serrors"
)

// Agent declares one crew member. Role, goal and backstory are free-form text
// handed to the framework verbatim.
type Agent struct {
	Name          string   `yaml:"name"`
	Role          string   `yaml:"role"`
	Goal          string   `yaml:"goal"`
	Backstory     string   `yaml:"backstory"`
	Tools         []string `yaml:"tools,omitempty"`
	MaxIterations int      `yaml:"max_iterations,omitempty"`
}

// Task declares one unit of crew work and the agent responsible for it.
type Task struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
	Agent          string `yaml:"agent"`
	OutputFile     string `yaml:"output_file,omitempty"`
}

// Definition is one crew: a named set of agents plus the tasks they run.
// It mirrors the on-disk schema under the crew definitions directory.
type Definition struct {
	Crew   string  `yaml:"crew"`
	Agents []Agent `yaml:"agents"`
	Tasks  []Task  `yaml:"tasks"`
}

// Normalized returns a copy of the definition with surrounding whitespace
// trimmed from all identifying fields.
func (d Definition) Normalized() Definition {
	clone := Definition{
		Crew:   strings.TrimSpace(d.Crew),
		Agents: make([]Agent, len(d.Agents)),
		Tasks:  make([]Task, len(d.Tasks)),
	}

	for i, agent := range d.Agents {
		agent.Name = strings.TrimSpace(agent.Name)
		agent.Role = strings.TrimSpace(agent.Role)
		agent.Goal = strings.TrimSpace(agent.Goal)
		clone.Agents[i] = agent
	}
	for i, task := range d.Tasks {
		task.Name = strings.TrimSpace(task.Name)
		task.Agent = strings.TrimSpace(task.Agent)
		clone.Tasks[i] = task
	}

	return clone
}

// Validate ensures the definition is well-formed: every agent carries a role
// and goal, names are unique, and every task references a declared agent.
func (d Definition) Validate() error {
	normalized := d.Normalized()

	if normalized.Crew == "" {
		return serrors.With(serrors.ErrBadRequest, "crew name is required")
	}
	if len(normalized.Agents) == 0 {
		return serrors.With(serrors.ErrBadRequest, "crew %s: at least one agent is required", normalized.Crew)
	}

	agents := make(map[string]struct{}, len(normalized.Agents))
	for i, agent := range normalized.Agents {
		if agent.Name == "" {
			return serrors.With(serrors.ErrBadRequest, "crew %s: agents[%d]: name is required", normalized.Crew, i)
		}
		if _, exists := agents[agent.Name]; exists {
			return serrors.With(serrors.ErrConflict, "crew %s: duplicate agent %q", normalized.Crew, agent.Name)
		}
		agents[agent.Name] = struct{}{}

		if agent.Role == "" {
			return serrors.With(serrors.ErrBadRequest, "crew %s: agent %q: role is required", normalized.Crew, agent.Name)
		}
		if agent.Goal == "" {
			return serrors.With(serrors.ErrBadRequest, "crew %s: agent %q: goal is required", normalized.Crew, agent.Name)
		}
		if agent.MaxIterations < 0 {
			return serrors.With(serrors.ErrBadRequest,
				"crew %s: agent %q: max_iterations must not be negative", normalized.Crew, agent.Name)
		}
	}

	tasks := make(map[string]struct{}, len(normalized.Tasks))
	for i, task := range normalized.Tasks {
		if task.Name == "" {
			return serrors.With(serrors.ErrBadRequest, "crew %s: tasks[%d]: name is required", normalized.Crew, i)
		}
		if _, exists := tasks[task.Name]; exists {
			return serrors.With(serrors.ErrConflict, "crew %s: duplicate task %q", normalized.Crew, task.Name)
		}
		tasks[task.Name] = struct{}{}

		if task.Description == "" {
			return serrors.With(serrors.ErrBadRequest, "crew %s: task %q: description is required", normalized.Crew, task.Name)
		}
		if task.Agent == "" {
			return serrors.With(serrors.ErrBadRequest, "crew %s: task %q: agent is required", normalized.Crew, task.Name)
		}
		if _, known := agents[task.Agent]; !known {
			return serrors.With(serrors.ErrBadRequest,
				"crew %s: task %q references unknown agent %q", normalized.Crew, task.Name, task.Agent)
		}
	}

	return nil
}
