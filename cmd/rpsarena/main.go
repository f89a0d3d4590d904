// Command rpsarena plays an rps.Engine against a set of scripted bots and
// prints the standings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/golang/glog"

	"github.com/timpalpant/go-rps"
	"github.com/timpalpant/go-rps/arena"
	"github.com/timpalpant/go-rps/bots"
	"github.com/timpalpant/go-rps/matchlog"
)

func main() {
	policy := flag.String("policy", "round-robin", "Move selection policy: round-robin, priority, win-stay or regret")
	awareness := flag.String("awareness", "never", "When to assume the opponent knows our win-stay scheme")
	opponents := flag.String("opponents", strings.Join(bots.Names(), ","), "Comma-separated bot names to play against")
	rounds := flag.Int("rounds", 49, "Maximum rounds per match")
	wins := flag.Int("wins", 26, "Round wins that end a match (0 to always play every round)")
	matches := flag.Int("matches", 10, "Matches per opponent")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of matches to play in parallel")
	seed := flag.Int64("seed", 1, "Seed for the random bots")
	dbPath := flag.String("db", "", "Record match transcripts to a LevelDB match log at this path")
	flag.Parse()
	defer glog.Flush()

	var params rps.Params
	var err error
	if params.Policy, err = rps.ParsePolicyKind(*policy); err != nil {
		glog.Exit(err)
	}

	if params.Awareness, err = rps.ParseAwareness(*awareness); err != nil {
		glog.Exit(err)
	}

	if err := params.Validate(); err != nil {
		glog.Exit(err)
	}

	engine := func() (arena.Player, error) {
		return rps.NewEngine(params)
	}

	var pairings []arena.Pairing
	for _, name := range strings.Split(*opponents, ",") {
		name := strings.TrimSpace(name)
		if _, err := bots.ByName(name, *seed); err != nil {
			glog.Exit(err)
		}

		pairings = append(pairings, arena.Pairing{
			Label: fmt.Sprintf("%s-vs-%s", params.Policy, name),
			A:     engine,
			B: func() (arena.Player, error) {
				return bots.ByName(name, *seed)
			},
		})
	}

	tour := &arena.Tournament{
		Workers: *workers,
		Matches: *matches,
		Config:  arena.Config{MaxRounds: *rounds, WinsPerSet: *wins},
	}

	if *dbPath != "" {
		store, err := matchlog.Open(*dbPath, nil)
		if err != nil {
			glog.Exit(err)
		}
		defer store.Close()
		tour.Recorder = store
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		glog.Info("Interrupted, shutting down")
		cancel()
	}()

	glog.Infof("Playing %d matches against each of %d opponents with %d workers",
		*matches, len(pairings), *workers)
	results, err := tour.Run(ctx, pairings)
	if err != nil {
		glog.Errorf("Tournament stopped early: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAIRING\tMATCHES\tWON\tTIED\tLOST\tROUNDS\tW-D-L\tWIN RATE")
	for _, s := range arena.Aggregate(results) {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d-%d-%d\t%.3f\n",
			s.Label, s.Matches, s.Won, s.Tied, s.Lost, s.Rounds,
			s.WinsA, s.Draws, s.WinsB, s.RoundWinRate())
	}
	w.Flush()
}
