package models

// MaxTasksPerGroup is the largest group size whose task ids cannot collide
// with the next group's ids (groupID*100 + 99 is the last safe id).
const MaxTasksPerGroup = 99

// Task is a titled item belonging to exactly one TaskGroup
type Task struct {
	ID    int
	Title string
}

// TaskGroup is a named, ordered collection of tasks. Groups are never
// edited or removed once created.
type TaskGroup struct {
	ID    int
	Name  string
	Tasks []Task
}

// GroupDraft holds the new-group dialog input. Tasks are plain titles until
// the group is committed.
type GroupDraft struct {
	Name  string
	Tasks []string
}

// Valid reports whether the draft can be committed: it needs a name and at
// least one task
func (d GroupDraft) Valid() bool {
	return d.Name != "" && len(d.Tasks) > 0
}

// TaskID derives a task id from its owning group and position:
// groupID*100 + index + 1. Ids collide once index reaches MaxTasksPerGroup.
func TaskID(groupID, index int) int {
	return groupID*100 + index + 1
}

// NextGroupID returns 1 + the largest id in groups, or 1 for an empty catalog
func NextGroupID(groups []TaskGroup) int {
	maxID := 0
	for _, g := range groups {
		if g.ID > maxID {
			maxID = g.ID
		}
	}
	return maxID + 1
}

// NewTaskGroup builds a group from draft titles, keeping their order
func NewTaskGroup(id int, name string, titles []string) TaskGroup {
	tasks := make([]Task, len(titles))
	for i, title := range titles {
		tasks[i] = Task{ID: TaskID(id, i), Title: title}
	}
	return TaskGroup{ID: id, Name: name, Tasks: tasks}
}

// SeedTaskGroups returns the catalog every schedule starts with
func SeedTaskGroups() []TaskGroup {
	return []TaskGroup{
		NewTaskGroup(1, "Công việc văn phòng", []string{
			"Họp nhóm",
			"Viết báo cáo",
			"Đọc email",
		}),
		NewTaskGroup(2, "Công việc khách hàng", []string{
			"Gọi điện cho khách hàng",
			"Chuẩn bị bài thuyết trình",
			"Gặp gỡ khách hàng",
		}),
		NewTaskGroup(3, "Phát triển cá nhân", []string{
			"Đọc sách",
			"Tập thể dục",
			"Học kỹ năng mới",
		}),
	}
}
