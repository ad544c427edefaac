package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kora_backend/internal/logger"
	"kora_backend/internal/repositories"
)

const otpSweepInterval = 30 * time.Second

// OTPWorker clears expired password-reset OTPs in the background so a stale
// code can never be replayed, even if its owner never attempts a reset.
type OTPWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewOTPWorker(db *gorm.DB, userRepo repositories.UserRepository) *OTPWorker {
	return &OTPWorker{
		db:       db,
		userRepo: userRepo,
		interval: otpSweepInterval,
	}
}

// Run blocks until ctx is cancelled. Start it in its own goroutine.
func (w *OTPWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("OTP worker started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("OTP worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OTPWorker) sweep(ctx context.Context) {
	cleared, err := w.userRepo.ClearExpiredOTPs(w.db.WithContext(ctx), time.Now())
	if err != nil {
		logger.Error("OTP sweep failed", "error", err)
		return
	}
	if cleared > 0 {
		logger.Debug("Expired OTPs cleared", "count", cleared)
	}
}
