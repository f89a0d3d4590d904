// Command rpsbot plays Rock/Paper/Scissors over stdin/stdout using the
// line protocol of package harness.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/go-rps"
	"github.com/timpalpant/go-rps/harness"
)

func main() {
	policy := flag.String("policy", "round-robin", "Move selection policy: round-robin, priority, win-stay or regret")
	awareness := flag.String("awareness", "never", "When to assume the opponent knows our win-stay scheme: never, always or on-deterministic")
	maxPattern := flag.Int("max-pattern", rps.DefaultMaxPatternLength, "Longest suffix matched by the pattern estimator")
	maxState := flag.Int("max-state", rps.DefaultMaxStateLength, "Longest state considered by the deterministic estimator")
	longest := flag.Bool("prefer-longest", false, "Use the pattern estimator ahead of the deterministic one in the priority policy")
	flag.Parse()
	defer glog.Flush()

	params := rps.Params{
		MaxPatternLength:     *maxPattern,
		MaxStateLength:       *maxState,
		PreferLongestPattern: *longest,
	}

	var err error
	if params.Policy, err = rps.ParsePolicyKind(*policy); err != nil {
		glog.Exit(err)
	}

	if params.Awareness, err = rps.ParseAwareness(*awareness); err != nil {
		glog.Exit(err)
	}

	e, err := rps.NewEngine(params)
	if err != nil {
		glog.Exit(err)
	}

	glog.Infof("Serving %s engine with params: %+v", e.Name(), e.Params())
	if err := harness.Serve(os.Stdin, os.Stdout, e); err != nil {
		glog.Exit(err)
	}
}
