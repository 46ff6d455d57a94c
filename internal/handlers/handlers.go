package handlers

import (
	"time"

	"kilo-server/internal/scanner"
	"kilo-server/internal/startup"
)

type Handlers struct {
	scanner   *scanner.Scanner
	config    *startup.Config
	startedAt time.Time
}

func New(scan *scanner.Scanner, config *startup.Config) *Handlers {
	return &Handlers{
		scanner:   scan,
		config:    config,
		startedAt: time.Now(),
	}
}
