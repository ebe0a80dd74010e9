package domain

import (
	"maps"
	"slices"
)

// TaskGroups maps a directive name to its tasks in document order.
type TaskGroups map[string][]UpdateTask

// GroupByName groups tasks by directive name, preserving order within a group.
func GroupByName(tasks []UpdateTask) TaskGroups {
	groups := make(TaskGroups)
	for _, task := range tasks {
		groups[task.Name] = append(groups[task.Name], task)
	}
	return groups
}

// Names returns the distinct directive names sorted alphabetically.
func (g TaskGroups) Names() []string {
	return slices.Sorted(maps.Keys(g))
}
