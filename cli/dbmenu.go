package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"attendance_tracker/db"
	"attendance_tracker/models"
)

// RunDB drives the sqlite-backed mode. The menu sits behind a login gate; a
// failed store open is the one unrecoverable error and ends the session.
func (a *App) RunDB() {
	database, err := db.Initialize(a.cfg.DBPath)
	if err != nil {
		a.log.Error("Failed to open database: %v", err)
		return
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		a.log.Error("Failed to initialize database schema: %v", err)
		return
	}

	store := db.NewStore(database)

	for {
		fmt.Println("\n--- Attendance System (DB Mode) ---")
		fmt.Println("1. Login")
		fmt.Println("2. Setup Admin Account")
		fmt.Println("3. Exit")

		choice := a.prompt("Choose an option (1-3): ")
		if a.interrupted {
			choice = "3"
		}

		switch choice {
		case "1":
			if a.login(store) {
				a.dbMenu(store)
			}
		case "2":
			a.setupAdminAccount(store)
		case "3":
			a.log.Info("Exiting the system. Goodbye!")
			return
		default:
			a.log.Warn("Invalid option.")
		}
	}
}

// login performs the plaintext credential check against the users table.
func (a *App) login(store *db.Store) bool {
	fmt.Println("\n--- Admin Login ---")
	username := a.prompt("Username: ")
	password := a.prompt("Password: ")

	ok, err := store.Authenticate(username, password)
	if err != nil {
		a.log.Error("Failed to verify credentials: %v", err)
		return false
	}
	if !ok {
		a.log.Error("Invalid credentials.")
		return false
	}
	a.log.Info("Welcome, %s!", username)
	return true
}

func (a *App) setupAdminAccount(store *db.Store) bool {
	fmt.Println("\n--- Setup Admin Account ---")
	username := a.prompt("Create Username: ")
	password := a.prompt("Create Password: ")
	confirm := a.prompt("Confirm Password: ")

	if password != confirm {
		a.log.Error("Passwords do not match.")
		return false
	}

	if err := store.AddUser(username, password); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			a.log.Error("User already exists.")
		} else {
			a.log.Error("Failed to create user: %v", err)
		}
		return false
	}
	a.log.Info("Admin account created.")
	return true
}

func (a *App) dbMenu(store *db.Store) {
	for {
		fmt.Println("\n--- Attendance System (DB Mode) ---")
		fmt.Println("1. Add Student")
		fmt.Println("2. List Students")
		fmt.Println("3. Mark Attendance")
		fmt.Println("4. Attendance Summary")
		fmt.Println("5. Logout")

		choice := a.prompt("Choose an option (1-5): ")
		if a.interrupted {
			choice = "5"
		}

		switch choice {
		case "1":
			id := a.prompt("Student ID: ")
			name := a.prompt("Student Name: ")
			if !models.ValidStudentID(id) || !models.ValidStudentName(name) {
				a.log.Warn("Invalid ID or name.")
				break
			}
			if err := store.AddStudent(id, name); err != nil {
				if errors.Is(err, db.ErrDuplicateStudent) {
					a.log.Warn("Student %s already exists.", id)
				} else {
					a.log.Error("Failed to add student: %v", err)
				}
				break
			}
			a.log.Info("Student %s added with ID %s.", name, id)

		case "2":
			a.listStoredStudents(store)

		case "3":
			id := a.prompt("Enter Student ID: ")
			date := a.promptDefault("Date (YYYY-MM-DD) [Enter for today]: ",
				time.Now().Format(models.DateFormat))
			status := a.prompt("Present (Y/n): ")
			present := status != "n" && status != "N"
			if err := store.MarkAttendance(id, date, present); err != nil {
				if errors.Is(err, db.ErrStudentNotFound) {
					a.log.Error("Student ID %s not found.", id)
				} else {
					a.log.Error("Failed to mark attendance: %v", err)
				}
				break
			}
			a.log.Info("Attendance marked for %s.", id)

		case "4":
			a.printStoredSummary(store)

		case "5":
			a.log.Info("Logging out.")
			return

		default:
			a.log.Warn("Invalid option.")
		}
	}
}

func (a *App) listStoredStudents(store *db.Store) {
	students, err := store.ListStudents()
	if err != nil {
		a.log.Error("Failed to list students: %v", err)
		return
	}
	rows := make([][]string, 0, len(students))
	for _, student := range students {
		rows = append(rows, []string{student.StudentID, student.Name})
	}
	renderTable([]string{"ID", "Name"}, rows)
}

func (a *App) printStoredSummary(store *db.Store) {
	report, err := store.SummaryReport()
	if err != nil {
		a.log.Error("Failed to fetch summary: %v", err)
		return
	}
	rows := make([][]string, 0, len(report))
	for _, row := range report {
		rows = append(rows, []string{
			row.StudentID,
			row.Name,
			strconv.Itoa(row.PresentDays),
			strconv.Itoa(row.TotalDays),
			row.Percentage,
		})
	}
	renderTable([]string{"ID", "Name", "Present", "Total", "Attendance %"}, rows)
}
