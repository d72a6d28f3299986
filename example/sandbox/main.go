package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/parkour/scenario"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/worker"
)

// overrides collects repeated -set Name=Value flags.
type overrides []string

func (o *overrides) String() string {
	return strings.Join(*o, ",")
}

func (o *overrides) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected Name=Value, got %q", v)
	}
	*o = append(*o, v)
	return nil
}

var (
	settingsPath = flag.String("settings", "settings.toml", "Path to the settings file, created with defaults if missing")
	scenarios    = flag.String("scenario", "", "Comma separated scenario names or .yaml files to play, all bundled scenarios if empty")
	realtime     = flag.Bool("realtime", false, "Pace ticks at the configured tick rate instead of running as fast as possible")
	watch        = flag.Bool("watch", false, "Reload the settings file into running scenarios when it changes")
	sets         overrides
)

// The following program plays scripted movement scenarios against the reference world and reports how the actor
// moved through each of them.
func main() {
	flag.Var(&sets, "set", "Parameter override as Name=Value, may be repeated")
	flag.Parse()

	st, err := loadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := newLogger(st)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if st.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         st.Sentry.DSN,
			Environment: st.Sentry.Environment,
		}); err != nil {
			log.Error("sentry init failed", "err", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if st.StatsView.Enabled {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(st.StatsView.Addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	list, err := selectScenarios(*scenarios)
	if err != nil {
		log.Error("unable to load scenarios", "err", err)
		os.Exit(1)
	}

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(stop)
	}()

	var bc broadcaster
	if *watch {
		w, err := settings.Watch(*settingsPath, log)
		if err != nil {
			log.Error("unable to watch settings", "err", err)
			os.Exit(1)
		}
		defer w.Close()
		go bc.run(w)
	}

	var g worker.Group
	for _, sc := range list {
		r := &runner{
			scenario:  sc,
			settings:  st,
			overrides: sets,
			realtime:  *realtime,
			updates:   bc.subscribe(),
			stop:      stop,
			log:       log.With("scenario", sc.Name),
		}
		g.Go(r.run)
	}
	g.Wait()
}

// loadSettings loads the settings file, writing the defaults first if it does not exist yet.
func loadSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

func newLogger(st settings.Settings) (*slog.Logger, error) {
	level, err := st.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if st.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func selectScenarios(names string) ([]*scenario.Scenario, error) {
	if names == "" {
		return scenario.Builtin()
	}
	var list []*scenario.Scenario
	for _, name := range strings.Split(names, ",") {
		sc, err := scenario.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		list = append(list, sc)
	}
	return list, nil
}

// broadcaster fans reloaded settings out to every running scenario. Subscribers only ever see the latest settings.
type broadcaster struct {
	mu   sync.Mutex
	subs []chan settings.Settings
}

func (b *broadcaster) subscribe() <-chan settings.Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan settings.Settings, 1)
	b.subs = append(b.subs, ch)
	return ch
}

func (b *broadcaster) run(w *settings.Watcher) {
	for {
		select {
		case st, ok := <-w.Updates:
			if !ok {
				return
			}
			b.publish(st)
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}

func (b *broadcaster) publish(st settings.Settings) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}
