package demodata

import (
	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
)

const taskAssigneePoolSize = 5

// buildTasks instantiates each task template once, rotating assignments
// through a pool of up to five active members. With no active members the
// tasks are still created, just unassigned.
func (r *run) buildTasks(members []congregation.Member) []congregation.Task {
	var pool []congregation.Member
	for _, member := range members {
		if member.Status == congregation.StatusActive {
			pool = append(pool, member)
		}
		if len(pool) == taskAssigneePoolSize {
			break
		}
	}

	tasks := make([]congregation.Task, 0, len(taskCatalog))
	for i, tmpl := range taskCatalog {
		task := congregation.Task{
			ID:             uuid.NewString(),
			OrganizationID: r.organizationID,
			Title:          tmpl.Title,
			Priority:       tmpl.Priority,
			Status:         "pending",
			DueDate:        r.now.AddDate(0, 0, intRange(r.rng, 7, 37)),
		}
		if len(pool) > 0 {
			assigneeID := pool[i%len(pool)].ID
			requestorID := pool[0].ID
			task.AssigneeID = &assigneeID
			task.RequestorID = &requestorID
		}
		tasks = append(tasks, task)
	}

	return tasks
}
