package command

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func testContext(reg *Registry) *Context {
	return BuildContext(
		SessionInfo{ID: "test-session", Remote: "local", Started: time.Now()},
		reg.Snapshot(),
		Services{},
	)
}

func mustLoad(t *testing.T, sources []Source) *Registry {
	t.Helper()
	reg, err := Load(sources)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return reg
}

func TestDispatchUnknownCommand(t *testing.T) {
	reg := mustLoad(t, BuiltinSources(testRand()))
	disp := NewDispatcher(reg)

	res := disp.Dispatch(context.Background(), "nope", nil, testContext(reg))
	if res.Status != StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}
	if res.Message != "command not found" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if !strings.Contains(res.Error, "nope") {
		t.Fatalf("detail does not name the command: %q", res.Error)
	}
}

func TestDispatchClientKindIsIsolated(t *testing.T) {
	reg := mustLoad(t, BuiltinSources(testRand()))
	disp := NewDispatcher(reg)

	res := disp.Dispatch(context.Background(), "clear", nil, testContext(reg))
	if res.Status != StatusError {
		t.Fatalf("client-kind dispatch must fail, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "client-only") {
		t.Fatalf("unexpected detail: %q", res.Error)
	}

	// The dispatcher must stay usable after the routing defect.
	res = disp.Dispatch(context.Background(), "ping", nil, testContext(reg))
	if res.Status != StatusSuccess || res.Message != "pong" {
		t.Fatalf("dispatcher broken after routing error: %+v", res)
	}
}

func TestDispatchRESTKindRedirects(t *testing.T) {
	reg := mustLoad(t, BuiltinSources(testRand()))
	disp := NewDispatcher(reg)

	res := disp.Dispatch(context.Background(), "config", nil, testContext(reg))
	if res.Status != StatusSuccess {
		t.Fatalf("rest redirect is not an error, got %s: %s", res.Status, res.Message)
	}
	redirect, ok := res.Data["redirect"].(*RestOptions)
	if !ok {
		t.Fatalf("missing redirect data: %+v", res.Data)
	}
	if redirect.GetEndpoint != "/api/config" || redirect.PostEndpoint != "/api/config" {
		t.Fatalf("unexpected redirect: %+v", redirect)
	}
}

func TestDispatchMapsExecutorError(t *testing.T) {
	src := wsSource("boom")
	src.Exec = func(ctx context.Context, ec *Context) (*Result, error) {
		return nil, fmt.Errorf("bad arguments: %v", ec.Args)
	}
	reg := mustLoad(t, []Source{src})
	disp := NewDispatcher(reg)

	res := disp.Dispatch(context.Background(), "boom", []string{"x"}, testContext(reg))
	if res.Status != StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "bad arguments") {
		t.Fatalf("fault detail lost: %q", res.Error)
	}
}

func TestDispatchRecoversExecutorPanic(t *testing.T) {
	src := wsSource("panic")
	src.Exec = func(ctx context.Context, ec *Context) (*Result, error) {
		panic("executor blew up")
	}
	reg := mustLoad(t, []Source{src, wsSource("alive")})
	disp := NewDispatcher(reg)

	res := disp.Dispatch(context.Background(), "panic", nil, testContext(reg))
	if res.Status != StatusError {
		t.Fatalf("panic must map to error envelope, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "panic") {
		t.Fatalf("panic detail lost: %q", res.Error)
	}

	res = disp.Dispatch(context.Background(), "alive", nil, testContext(reg))
	if res.Status != StatusSuccess {
		t.Fatalf("dispatcher unusable after panic: %+v", res)
	}
}

func TestDispatchNilResultIsFault(t *testing.T) {
	src := wsSource("empty")
	src.Exec = func(ctx context.Context, ec *Context) (*Result, error) {
		return nil, nil
	}
	reg := mustLoad(t, []Source{src})
	disp := NewDispatcher(reg)

	res := disp.Dispatch(context.Background(), "empty", nil, testContext(reg))
	if res.Status != StatusError {
		t.Fatalf("nil executor result must map to error, got %s", res.Status)
	}
}

func TestDispatchConcurrentInvocations(t *testing.T) {
	reg := mustLoad(t, BuiltinSources(testRand()))
	disp := NewDispatcher(reg)
	names := []string{"ping", "help", "nope", "clear", "config"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				name := names[(i+j)%len(names)]
				res := disp.Dispatch(context.Background(), name, nil, testContext(reg))
				if res == nil {
					t.Errorf("nil envelope for %q", name)
				}
			}
		}(i)
	}
	wg.Wait()
}

// flakySource is a randomized executor: it succeeds with probability p and
// takes a duration within [minDelay, maxDelay).
func flakySource(rng *rand.Rand, p float64, minDelay, maxDelay time.Duration) Source {
	var mu sync.Mutex
	src := wsSource("flaky")
	src.Exec = func(ctx context.Context, ec *Context) (*Result, error) {
		mu.Lock()
		draw := rng.Float64()
		delay := minDelay + time.Duration(rng.Int63n(int64(maxDelay-minDelay)))
		mu.Unlock()

		time.Sleep(delay)
		if draw < p {
			return Success("lucky"), nil
		}
		return nil, fmt.Errorf("unlucky draw %.3f", draw)
	}
	return src
}

func TestRandomizedExecutorStatistics(t *testing.T) {
	const (
		runs     = 1000
		p        = 0.5
		minDelay = 50 * time.Microsecond
		maxDelay = 200 * time.Microsecond
	)

	reg := mustLoad(t, []Source{flakySource(testRand(), p, minDelay, maxDelay)})
	disp := NewDispatcher(reg)

	successes := 0
	for i := 0; i < runs; i++ {
		start := time.Now()
		res := disp.Dispatch(context.Background(), "flaky", nil, testContext(reg))
		elapsed := time.Since(start)

		if elapsed < minDelay {
			t.Fatalf("run %d finished in %v, below declared minimum %v", i, elapsed, minDelay)
		}
		if elapsed > maxDelay+100*time.Millisecond {
			t.Fatalf("run %d took %v, far above declared maximum %v", i, elapsed, maxDelay)
		}
		if res.Status == StatusSuccess {
			successes++
		}
	}

	rate := float64(successes) / float64(runs)
	if rate < 0.4 || rate > 0.6 {
		t.Fatalf("empirical success rate %.3f outside [0.4, 0.6]", rate)
	}
}
