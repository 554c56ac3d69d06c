package schedule

import (
	"strconv"

	"github.com/borgmon/schedule-manager/pkg/models"
)

// FindGroup looks up a group by the string form of its id
func FindGroup(groups []models.TaskGroup, groupID string) (models.TaskGroup, bool) {
	if groupID == "" {
		return models.TaskGroup{}, false
	}
	for _, g := range groups {
		if strconv.Itoa(g.ID) == groupID {
			return g, true
		}
	}
	return models.TaskGroup{}, false
}

// FindTask looks up a task inside the given group. Both ids are in the string
// form the select widgets emit. ok is false when either lookup misses.
func FindTask(groups []models.TaskGroup, groupID, taskID string) (models.Task, bool) {
	if taskID == "" {
		return models.Task{}, false
	}
	g, ok := FindGroup(groups, groupID)
	if !ok {
		return models.Task{}, false
	}
	for _, t := range g.Tasks {
		if strconv.Itoa(t.ID) == taskID {
			return t, true
		}
	}
	return models.Task{}, false
}

// resolveTitle picks the event title for a submitted draft. A selected task
// wins; a failed lookup falls back to the typed title, even when it is empty.
func resolveTitle(s State) string {
	if task, ok := FindTask(s.Groups, s.SelectedGroup, s.SelectedTask); ok {
		return task.Title
	}
	return s.Draft.Title
}
