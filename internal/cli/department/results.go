package department

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
)

// departmentList is the result of `department list`
type departmentList []*models.Department

// IDs implements quiet mode output, one id per line
func (l departmentList) IDs() []int {
	ids := make([]int, len(l))
	for i, d := range l {
		ids[i] = d.GetID()
	}
	return ids
}

func (l departmentList) Render(config.Display) string {
	if len(l) == 0 {
		return "No departments found"
	}
	lines := []string{styles.TitleStyle.Render(fmt.Sprintf("Found %d departments:", len(l))), ""}
	for _, d := range l {
		lines = append(lines, styles.DepartmentLine(d))
	}
	return strings.Join(lines, "\n")
}

// departmentCard is the result of `department show`
type departmentCard struct {
	*models.Department
}

func (c departmentCard) Render(config.Display) string {
	return styles.RenderDepartment(c.Department)
}

// saveResult is the result of `department save`
type saveResult struct {
	Action     string             `json:"action"`
	Department *models.Department `json:"department"`
}

// GetID implements the GetID interface for quiet mode output
func (r *saveResult) GetID() int {
	return r.Department.GetID()
}

func (r *saveResult) Render(config.Display) string {
	style := styles.EditStyle
	if r.Action == actionCreated {
		style = styles.CreateStyle
	}
	header := style.Render(fmt.Sprintf("✓ Department %d %s successfully", r.GetID(), r.Action))
	return header + "\n" + styles.RenderDepartment(r.Department)
}

// deleteResult is the result of `department delete`
type deleteResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID implements the GetID interface for quiet mode output
func (r *deleteResult) GetID() int {
	return r.ID
}

func (r *deleteResult) Render(config.Display) string {
	return styles.DeleteStyle.Render(fmt.Sprintf("✓ Department %d (%s) deleted successfully", r.ID, r.Name))
}

const (
	actionCreated = "created"
	actionUpdated = "updated"
	cancelled     = "Cancelled"
)
