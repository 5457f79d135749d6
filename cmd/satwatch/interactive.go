package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/view"
)

type passesFetcher interface {
	Passes(ctx context.Context, obs domain.Observer, satID int) (domain.PassesResponse, error)
}

// runInteractive reads one satellite id per line and fetches each selection
// concurrently. Only the newest selection is printed; responses for ids that
// were superseded while in flight are dropped.
func runInteractive(ctx context.Context, in io.Reader, out io.Writer, c passesFetcher, obs domain.Observer, loc *time.Location, timeout time.Duration) error {
	var (
		latest view.Latest[domain.PassesResponse]
		outMu  sync.Mutex
		wg     sync.WaitGroup
	)

	fmt.Fprintln(out, "Enter a NORAD id per line (unknown ids show the ISS), Ctrl-D to quit")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		satID := domain.ResolveSatelliteID(raw)
		gen := latest.Begin()

		wg.Add(1)
		go func() {
			defer wg.Done()

			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			resp, err := c.Passes(reqCtx, obs, satID)

			if err != nil {
				if !latest.IsCurrent(gen) {
					return
				}
				outMu.Lock()
				fmt.Fprintf(out, "passes for %d: %v\n", satID, err)
				outMu.Unlock()
				return
			}
			if !latest.Apply(gen, resp) || !latest.IsCurrent(gen) {
				return
			}
			outMu.Lock()
			printPasses(out, resp, loc)
			outMu.Unlock()
		}()
	}

	wg.Wait()
	return scanner.Err()
}
