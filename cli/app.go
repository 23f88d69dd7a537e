// Package cli implements the interactive menu modes of the tool.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"attendance_tracker/config"
	"attendance_tracker/logger"
)

// App holds the shared state of an interactive session.
type App struct {
	in          *bufio.Reader
	cfg         *config.Config
	log         *logger.Logger
	interrupted bool
}

func New(cfg *config.Config, log *logger.Logger) *App {
	return &App{
		in:  bufio.NewReader(os.Stdin),
		cfg: cfg,
		log: log,
	}
}

// prompt reads one trimmed line after printing the label. EOF or a read
// failure marks the session interrupted; menu loops treat that as the exit
// choice.
func (a *App) prompt(label string) string {
	fmt.Print(label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if !a.interrupted {
			fmt.Println()
			a.log.Info("Interrupted by user.")
		}
		a.interrupted = true
		return ""
	}
	return strings.TrimSpace(line)
}

// promptDefault reads a line and substitutes fallback when it is empty.
func (a *App) promptDefault(label, fallback string) string {
	value := a.prompt(label)
	if value == "" {
		return fallback
	}
	return value
}
