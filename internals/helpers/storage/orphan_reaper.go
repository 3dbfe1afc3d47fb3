package storage

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"koperasi_backend/internals/configs"
)

// ErrEmptyReaperPrefix: reaper tanpa prefix akan men-scan seluruh bucket.
var ErrEmptyReaperPrefix = errors.New("orphan reaper butuh STORAGE_PREFIX yang tidak kosong")

// ReferenceSource mengembalikan semua URL blob yang masih dipakai baris DB.
type ReferenceSource func(ctx context.Context) (map[string]struct{}, error)

type OrphanReaperConfig struct {
	Prefix        string
	RetentionDays int
	CronSchedule  string
	DryRun        bool
}

func OrphanReaperConfigFromEnv(prefix string) OrphanReaperConfig {
	return OrphanReaperConfig{
		Prefix:        prefix,
		RetentionDays: configs.GetEnvInt("REAPER_RETENTION_DAYS", 7),
		CronSchedule:  configs.GetEnv("REAPER_CRON_SCHEDULE", "15 2 * * *"),
		DryRun:        configs.GetEnvBool("REAPER_DRY_RUN", false),
	}
}

// ── ENTRYPOINT: panggil dari main.go
// Object di bawah prefix yang tidak direferensikan DB dan lebih tua dari retensi dihapus.
// Ini menambal sisa blob dari penghapusan best-effort yang gagal.
func StartOrphanReaperCron(svc *Service, refs ReferenceSource) *cron.Cron {
	if svc == nil {
		return nil
	}
	lister, ok := svc.Store().(ObjectLister)
	if !ok {
		log.Printf("[ORPHAN-REAPER] driver %s tidak mendukung list, reaper dilewati", svc.Store().Name())
		return nil
	}
	cfg := OrphanReaperConfigFromEnv(svc.Prefix())
	if listPrefix(cfg.Prefix) == "" {
		log.Printf("[ORPHAN-REAPER] %v, reaper dilewati", ErrEmptyReaperPrefix)
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		if _, err := RunOrphanReaper(ctx, lister, refs, cfg, time.Now()); err != nil {
			log.Printf("[ORPHAN-REAPER] error: %v", err)
		}
	})
	if err != nil {
		log.Printf("[ORPHAN-REAPER] add cron gagal: %v", err)
		return nil
	}
	log.Printf("[ORPHAN-REAPER] started schedule=%q prefix=%q retention=%dd dryRun=%v",
		cfg.CronSchedule, cfg.Prefix, cfg.RetentionDays, cfg.DryRun)
	c.Start()
	return c
}

// RunOrphanReaper mengembalikan key yang dihapus (atau akan dihapus bila DryRun).
func RunOrphanReaper(ctx context.Context, lister ObjectLister, refs ReferenceSource, cfg OrphanReaperConfig, now time.Time) ([]string, error) {
	prefix := listPrefix(cfg.Prefix)
	if prefix == "" {
		return nil, ErrEmptyReaperPrefix
	}
	threshold := now.Add(-time.Duration(cfg.RetentionDays) * 24 * time.Hour)

	used, err := refs(ctx)
	if err != nil {
		return nil, err
	}
	objects, err := lister.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var orphans []string
	for _, obj := range objects {
		// driver bisa saja mengembalikan key di luar prefix; jangan disentuh
		if !strings.HasPrefix(obj.Key, prefix) {
			continue
		}
		if !obj.LastModified.Before(threshold) {
			continue
		}
		if _, ok := used[lister.PublicURL(obj.Key)]; ok {
			continue
		}
		orphans = append(orphans, obj.Key)
	}

	if len(orphans) == 0 {
		log.Printf("[ORPHAN-REAPER] nothing to delete; scanned=%d under %q", len(objects), cfg.Prefix)
		return nil, nil
	}
	if cfg.DryRun {
		log.Printf("[ORPHAN-REAPER] DRY-RUN would delete %d/%d objects under %q", len(orphans), len(objects), cfg.Prefix)
		return orphans, nil
	}
	if err := lister.DeleteKeys(ctx, orphans); err != nil {
		return nil, err
	}
	log.Printf("[ORPHAN-REAPER] deleted %d objects (scanned=%d) under %q", len(orphans), len(objects), cfg.Prefix)
	return orphans, nil
}

// listPrefix mengubah "koperasi" menjadi "koperasi/" supaya "koperasi-arsip/..." tidak ikut.
func listPrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}
