package reminder

import (
	"context"
	"time"

	"github.com/apex/log"

	"green-justice/database"
)

// Sweeper periodically flags complaints that have gone unaddressed for at
// least the configured age. No notification is sent; the flag is the signal.
type Sweeper struct {
	service  *database.ReminderService
	interval time.Duration
	age      time.Duration
	stopChan chan struct{}
	running  bool
}

// NewSweeper creates a sweeper that checks every interval for complaints
// older than age.
func NewSweeper(service *database.ReminderService, interval, age time.Duration) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		age:      age,
		stopChan: make(chan struct{}),
	}
}

// Start launches the sweep loop in a goroutine.
func (s *Sweeper) Start() {
	if s.running {
		return
	}
	s.running = true

	log.Infof("Reminder sweeper started, checking every %v for complaints older than %v", s.interval, s.age)
	go s.run()
}

// Stop terminates the sweep loop.
func (s *Sweeper) Stop() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
}

func (s *Sweeper) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			log.Info("Reminder sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one flagging pass. Store failures are logged and the cycle is
// skipped.
func (s *Sweeper) sweep() {
	count, err := s.service.FlagStale(context.Background(), s.age)
	if err != nil {
		log.WithError(err).Error("Failed to check reminders")
		return
	}
	if count == 0 {
		return
	}
	log.Infof("Reminder: %d complaint(s) have not been addressed for at least %v", count, s.age)
}
