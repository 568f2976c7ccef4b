// Seeds demo users, follow edges and a week of back-dated sleep records
// so the feed has something to rank
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"driftlog/internal/modkit/repokit"
	"driftlog/internal/platform/config"
	"driftlog/internal/platform/logger"
	"driftlog/internal/platform/store"

	sleepdom "driftlog/internal/services/api/sleep/domain"
	sleeprepo "driftlog/internal/services/api/sleep/repo"
	sleepsvc "driftlog/internal/services/api/sleep/service"
	socialrepo "driftlog/internal/services/api/social/repo"
	socialsvc "driftlog/internal/services/api/social/service"
	identrepo "driftlog/internal/services/ident/repo"
	identsvc "driftlog/internal/services/ident/service"
)

var demoNames = []string{
	"Aki Tanaka",
	"Bea Okafor",
	"Casper Lindqvist",
	"Dina Haddad",
	"Emil Novak",
	"Freya Jansen",
	"Goran Ilic",
	"Hana Suzuki",
}

type plannedRecord struct {
	user    int
	sleepAt time.Time
	wakeAt  time.Time // zero means the interval stays open
}

func main() {
	var (
		fUsers  = flag.Int("users", 5, "number of demo users to create")
		fDays   = flag.Int("days", 7, "days of history to backfill per user")
		fSeed   = flag.Int64("seed", 1, "rng seed so reruns produce the same plan")
		fDryRun = flag.Bool("dry-run", false, "print the plan without writing anything")
	)
	flag.Parse()

	l := logger.Get()
	if *fUsers < 2 {
		l.Fatal().Int("users", *fUsers).Msg("need at least two users for a follow graph")
	}
	if *fUsers > len(demoNames) {
		*fUsers = len(demoNames)
	}

	rng := rand.New(rand.NewSource(*fSeed))
	now := time.Now().UTC()

	follows := planFollows(rng, *fUsers)
	records := planRecords(rng, now, *fUsers, *fDays)

	if *fDryRun {
		l.Info().
			Int("users", *fUsers).
			Int("follows", len(follows)).
			Int("records", len(records)).
			Msg("dry run, nothing written")
		return
	}

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	st, err := store.Open(context.Background(), store.Config{
		AppName: "driftlog-seed",
		PG: store.PGConfig{
			Enabled:  true,
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
			LogSQL:   pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	db := repokit.TxRunner(st.PG)
	ident := identsvc.New(db, identrepo.NewPG())
	social := socialsvc.New(db, socialrepo.NewPG())
	sleep := sleepsvc.New(db, sleeprepo.NewPG(), nil)

	ctx := context.Background()

	ids := make([]string, *fUsers)
	for i := 0; i < *fUsers; i++ {
		u, err := ident.EnsureUser(ctx, demoNames[i])
		if err != nil {
			l.Fatal().Err(err).Str("name", demoNames[i]).Msg("ensure user failed")
		}
		ids[i] = u.ID
	}

	for _, f := range follows {
		if _, err := social.Follow(ctx, ids[f[0]], ids[f[1]]); err != nil {
			l.Fatal().Err(err).Msg("follow failed")
		}
	}

	var open int
	for _, p := range records {
		rec, err := sleep.CreateBackdated(ctx, ids[p.user], p.sleepAt, p.sleepAt)
		if err != nil {
			l.Fatal().Err(err).Msg("record create failed")
		}
		if p.wakeAt.IsZero() {
			open++
			continue
		}
		_, err = sleep.SetWakeAt(ctx, ids[p.user], rec.ID, sleepdom.SetWakeInput{
			WakeAt: p.wakeAt.Format(time.RFC3339),
		})
		if err != nil {
			l.Fatal().Err(err).Msg("record close failed")
		}
	}

	l.Info().
		Int("users", *fUsers).
		Int("follows", len(follows)).
		Int("records", len(records)).
		Int("open", open).
		Msg("seed complete")
}

// planFollows gives every user 2-3 random follows, never themselves
func planFollows(rng *rand.Rand, users int) [][2]int {
	var out [][2]int
	for i := 0; i < users; i++ {
		seen := map[int]bool{i: true}
		n := 2 + rng.Intn(2)
		for len(seen) < n+1 && len(seen) < users {
			j := rng.Intn(users)
			if seen[j] {
				continue
			}
			seen[j] = true
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// planRecords backfills each user's history: one evening sleep per day,
// the odd afternoon nap, roughly one in ten left open, and a couple of
// records old enough to fall outside the weekly window
func planRecords(rng *rand.Rand, now time.Time, users, days int) []plannedRecord {
	var out []plannedRecord

	add := func(user, backDays int, hour, durMin, durMax int) {
		day := now.AddDate(0, 0, -backDays)
		sleepAt := time.Date(day.Year(), day.Month(), day.Day(), hour, rng.Intn(60), 0, 0, time.UTC)
		p := plannedRecord{user: user, sleepAt: sleepAt}
		if rng.Intn(10) > 0 { // ~10% stay open
			dur := time.Duration(durMin+rng.Intn(durMax-durMin+1)) * time.Minute
			p.wakeAt = sleepAt.Add(dur)
		}
		out = append(out, p)
	}

	for u := 0; u < users; u++ {
		for d := 1; d <= days; d++ {
			// evening sleep, 6-10h
			add(u, d, 21+rng.Intn(3), 360, 600)

			// afternoon nap, 1-3h, some days
			if rng.Intn(5) == 0 {
				add(u, d, 13+rng.Intn(3), 60, 180)
			}
		}

		// stale records outside the window
		add(u, 8+rng.Intn(3), 22, 360, 600)
	}
	return out
}
