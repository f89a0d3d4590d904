// Package harness drives an rps.Engine over a line-oriented text protocol,
// so that a host in any language can play through a pipe.
//
// Each request is one line; each reply is one line:
//
//	configure <maxRounds> <winsPerSet>   ok
//	start                                ok
//	choose <code>                        <code>
//	end                                  summary rounds=N wins=N draws=N losses=N
//	quit                                 (no reply, Serve returns)
//
// Move codes are 0 (none), 1 (rock), 2 (paper) and 3 (scissors). A request
// that fails is answered with "error <message>" and leaves the match
// unchanged. Blank lines are ignored.
package harness

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-rps"
)

// ErrUnknownCommand is the cause of errors for unrecognized requests.
var ErrUnknownCommand = errors.New("unknown command")

// Serve reads requests from r and writes replies to w until r is exhausted
// or a quit request is received. Protocol errors are reported to the
// client; only I/O errors are returned.
func Serve(r io.Reader, w io.Writer, e *rps.Engine) error {
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" {
			break
		}

		reply, err := handle(e, fields)
		if err != nil {
			glog.Warningf("Rejected %q: %v", scanner.Text(), err)
			reply = "error " + err.Error()
		}

		if _, err := fmt.Fprintln(bw, reply); err != nil {
			return errors.Wrap(err, "write reply")
		}

		if err := bw.Flush(); err != nil {
			return errors.Wrap(err, "flush reply")
		}
	}

	return errors.Wrap(scanner.Err(), "read request")
}

func handle(e *rps.Engine, fields []string) (string, error) {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "configure":
		ints, err := parseInts(cmd, args, 2)
		if err != nil {
			return "", err
		}

		if err := e.ConfigureMatch(ints[0], ints[1]); err != nil {
			return "", err
		}

		return "ok", nil
	case "start":
		e.OnMatchStart()
		return "ok", nil
	case "choose":
		ints, err := parseInts(cmd, args, 1)
		if err != nil {
			return "", err
		}

		own, err := e.ChooseMoveCode(ints[0])
		if err != nil {
			return "", err
		}

		return strconv.Itoa(own), nil
	case "end":
		s := e.OnMatchEnd()
		return fmt.Sprintf("summary rounds=%d wins=%d draws=%d losses=%d",
			s.Rounds, s.Wins, s.Draws, s.Losses), nil
	}

	return "", errors.Wrapf(ErrUnknownCommand, "%q", cmd)
}

func parseInts(cmd string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, errors.Errorf("%s: expected %d arguments, got %d", cmd, n, len(args))
	}

	result := make([]int, n)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: argument %d", cmd, i+1)
		}

		result[i] = v
	}

	return result, nil
}
