package roster

import (
	"math/rand"
	"time"

	"attendance_tracker/models"
)

const (
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func randomString(alphabet string, length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(out)
}

// GenerateFakeStudents fills the roster with random students for testing the
// tool by hand: 4-digit ids, 5-letter names, and a handful of random presence
// marks for today.
func (m *Manager) GenerateFakeStudents(count int) {
	today := time.Now().Format(models.DateFormat)
	for i := 0; i < count; i++ {
		id := randomString(digits, 4)
		name := randomString(letters, 5)
		m.AddStudent(id, name)
		for j := 0; j < 5; j++ {
			m.MarkAttendance(id, rand.Intn(2) == 0, today)
		}
	}
	m.log.Info("%d fake students generated.", count)
}
