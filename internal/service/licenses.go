package service

import (
	"context"
	"time"

	"transport_fleet/internal/logger"
	"transport_fleet/internal/repository"
)

// Licenses expiring within this window get flagged on every tick.
const licenseWarnWindow = 30 * 24 * time.Hour

// LicenseWatcher periodically logs drivers whose license is near (or past)
// expiry so operators notice before a trip gets assigned to them.
type LicenseWatcher struct {
	drivers repository.Drivers
	log     *logger.Logger
}

func NewLicenseWatcher(drivers repository.Drivers, log *logger.Logger) *LicenseWatcher {
	return &LicenseWatcher{drivers: drivers, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (w *LicenseWatcher) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			w.check(ctx, now)
		}
	}
}

func (w *LicenseWatcher) check(ctx context.Context, now time.Time) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	expiring, err := w.drivers.LicensesExpiringBefore(ctx, now.Add(licenseWarnWindow))
	if err != nil {
		if w.log != nil {
			w.log.Errorw("license_check_failed", "err", err)
		}
		return
	}
	if w.log == nil {
		return
	}
	for _, d := range expiring {
		key := "license_expiring"
		if d.FechaVencimientoLicencia.Before(now) {
			key = "license_expired"
		}
		w.log.Warnw(key,
			"conductor_id", d.ID,
			"dni", d.DNI,
			"licencia", d.Licencia,
			"vence", d.FechaVencimientoLicencia.Format(time.RFC3339),
		)
	}
}
