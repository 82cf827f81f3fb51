package menu

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campus-mis/internal/models"
	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/pkg/prompt"
)

type staffMenu struct {
	reg      *registry.Registry
	in       *prompt.Reader
	out      io.Writer
	validate *validator.Validate
}

type newStaffInput struct {
	ID         int    `validate:"required,gt=0"`
	Name       string `validate:"required,excludesall=0x7C"`
	Email      string `validate:"required,excludesall=0x7C"`
	Role       string `validate:"required,excludesall=0x7C"`
	Department string `validate:"required,excludesall=0x7C"`
}

func (m *staffMenu) show() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, " ~~~~~ Staff Menu ~~~~~")
		fmt.Fprintln(m.out, "1. Add staff member")
		fmt.Fprintln(m.out, "2. Remove staff member")
		fmt.Fprintln(m.out, "3. List staff")
		fmt.Fprintln(m.out, "4. Assign task")
		fmt.Fprintln(m.out, "5. Remove task")
		fmt.Fprintln(m.out, "6. Back")

		choice, ok := m.in.ReadInt("Choose an option (1-6):")
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.add()
		case 2:
			m.remove()
		case 3:
			m.list()
		case 4:
			m.assignTask()
		case 5:
			m.removeTask()
		case 6:
			return
		default:
			fmt.Fprintln(m.out, "Please choose an option between 1 and 6.")
		}
	}
}

func (m *staffMenu) add() {
	id, ok := m.in.ReadInt("Staff ID:")
	if !ok {
		return
	}
	name, ok := m.in.ReadString("Name:")
	if !ok {
		return
	}
	email, ok := m.in.ReadString("Email:")
	if !ok {
		return
	}
	role, ok := m.in.ReadString("Role:")
	if !ok {
		return
	}
	department, ok := m.in.ReadString("Department:")
	if !ok {
		return
	}
	input := newStaffInput{ID: id, Name: name, Email: email, Role: role, Department: department}
	if err := m.validate.Struct(input); err != nil {
		fmt.Fprintln(m.out, "Invalid staff details:", err)
		return
	}

	staff := models.NewStaff(id, name, email, role, department)
	if !m.reg.AddStaff(staff) {
		fmt.Fprintf(m.out, "A staff member with ID %d already exists.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Staff member added:", staff)
}

func (m *staffMenu) remove() {
	id, ok := m.in.ReadInt("Staff ID to remove:")
	if !ok {
		return
	}
	if !m.reg.RemoveStaffByID(id) {
		fmt.Fprintf(m.out, "No staff member with ID %d.\n", id)
		return
	}
	fmt.Fprintf(m.out, "Staff member %d removed.\n", id)
}

func (m *staffMenu) list() {
	staff := m.reg.StaffMembers()
	if len(staff) == 0 {
		fmt.Fprintln(m.out, "No staff members found.")
		return
	}
	for _, member := range staff {
		fmt.Fprintln(m.out, member)
	}
}

func (m *staffMenu) assignTask() {
	id, ok := m.in.ReadInt("Staff ID:")
	if !ok {
		return
	}
	staff := m.reg.FindStaffByID(id)
	if staff == nil {
		fmt.Fprintf(m.out, "No staff member with ID %d.\n", id)
		return
	}
	description, ok := m.in.ReadString("Task description:")
	if !ok {
		return
	}
	deadline, ok := m.in.ReadDate("Deadline (DD/MM/YYYY):")
	if !ok {
		return
	}
	if !staff.AssignTask(description, deadline) {
		fmt.Fprintln(m.out, "Task rejected: the deadline must be within the next 90 days and the description must not contain \"|\" or \",\".")
		return
	}
	fmt.Fprintln(m.out, "Task assigned to", staff.Name)
}

func (m *staffMenu) removeTask() {
	id, ok := m.in.ReadInt("Staff ID:")
	if !ok {
		return
	}
	staff := m.reg.FindStaffByID(id)
	if staff == nil {
		fmt.Fprintf(m.out, "No staff member with ID %d.\n", id)
		return
	}
	if len(staff.Tasks) == 0 {
		fmt.Fprintln(m.out, "No tasks assigned.")
		return
	}
	for i, task := range staff.Tasks {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, task)
	}
	index, ok := m.in.ReadInt("Task number to remove:")
	if !ok {
		return
	}
	if index < 1 || index > len(staff.Tasks) {
		fmt.Fprintln(m.out, "No such task.")
		return
	}
	if staff.RemoveTask(staff.Tasks[index-1]) {
		fmt.Fprintln(m.out, "Task removed.")
	}
}
