package cli

import (
	"fmt"
	"strconv"

	"attendance_tracker/roster"
)

const choiceExit = "9"

func printMenu() {
	fmt.Println("\n--- Student Attendance System ---")
	fmt.Println("1. Add Student")
	fmt.Println("2. List Students")
	fmt.Println("3. Mark Attendance")
	fmt.Println("4. Attendance Summary")
	fmt.Println("5. Save to File")
	fmt.Println("6. Load from File")
	fmt.Println("7. View Student Attendance")
	fmt.Println("8. Generate Fake Data")
	fmt.Println("9. Exit")
}

// RunMenu drives the flat-file mode: an in-memory roster persisted to CSV on
// demand.
func (a *App) RunMenu() {
	manager := roster.NewManager(a.log)

	for {
		printMenu()
		choice := a.prompt("Select an option (1-9): ")
		if a.interrupted {
			choice = choiceExit
		}

		switch choice {
		case "1":
			id := a.prompt("Enter Student ID: ")
			name := a.prompt("Enter Student Name: ")
			if id != "" && name != "" {
				manager.AddStudent(id, name)
			} else {
				a.log.Warn("Student ID and name are required.")
			}

		case "2":
			a.listStudents(manager)

		case "3":
			id := a.prompt("Enter Student ID: ")
			status := a.prompt("Present (Y/n): ")
			present := status != "n" && status != "N"
			manager.MarkAttendance(id, present, "")

		case "4":
			a.printSummary(manager)

		case "5":
			filename := a.promptDefault(
				fmt.Sprintf("Enter filename [%s]: ", a.cfg.CSVPath), a.cfg.CSVPath)
			manager.SaveCSV(filename)

		case "6":
			filename := a.promptDefault(
				fmt.Sprintf("Enter filename to load [%s]: ", a.cfg.CSVPath), a.cfg.CSVPath)
			manager.LoadCSV(filename)

		case "7":
			a.viewStudentAttendance(manager)

		case "8":
			count, err := strconv.Atoi(a.prompt("How many fake students? "))
			if err != nil {
				a.log.Error("Please enter a valid number.")
				break
			}
			manager.GenerateFakeStudents(count)

		case choiceExit:
			a.log.Info("Exiting the system. Goodbye!")
			return

		default:
			a.log.Warn("Invalid choice. Please select from 1-9.")
		}
	}
}

func (a *App) listStudents(manager *roster.Manager) {
	fmt.Println("\n--- All Students ---")
	for _, student := range manager.Students() {
		fmt.Println(student)
	}
	fmt.Printf("Total: %d students.\n\n", manager.Len())
}

func (a *App) printSummary(manager *roster.Manager) {
	fmt.Println("\n--- Attendance Summary ---")
	rows := make([][]string, 0, manager.Len())
	for _, row := range manager.Summary() {
		rows = append(rows, []string{
			row.StudentID,
			row.Name,
			strconv.Itoa(row.PresentDays),
			strconv.Itoa(row.TotalDays),
			row.Percentage,
		})
	}
	renderTable([]string{"ID", "Name", "Present Days", "Total Days", "Attendance %"}, rows)
}

func (a *App) viewStudentAttendance(manager *roster.Manager) {
	id := a.prompt("Enter Student ID: ")
	student, ok := manager.Get(id)
	if !ok {
		a.log.Error("Student not found.")
		return
	}

	fmt.Printf("\n--- Attendance for %s ---\n", student.Name)
	if len(student.Attendance) == 0 {
		fmt.Println("No attendance data available.")
	} else {
		for _, date := range student.SortedDates() {
			status := "Absent"
			if student.Attendance[date] {
				status = "Present"
			}
			fmt.Printf("%s: %s\n", date, status)
		}
	}
	fmt.Printf("Attendance %%: %.2f%%\n", student.AttendancePercentage())
}
