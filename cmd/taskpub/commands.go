package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"taskdeck/deck/feed/filefeed"
	"taskdeck/deck/timefmt"
	"taskdeck/internal/buildinfo"
	"taskdeck/internal/config"
	"taskdeck/internal/publish"
)

type publisher interface {
	publish.Publisher
	Close()
}

// dial is swapped out in tests.
var dial = func(cfg publish.BrokerConfig) (publisher, error) {
	return publish.Dial(cfg)
}

type brokerFlags struct {
	config string
	url    string
	topic  string
	user   string
	pass   string
	caFile string
}

// resolve layers the flags that were set over the config file and environment.
func (f *brokerFlags) resolve(cmd *cobra.Command) (publish.BrokerConfig, string, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return publish.BrokerConfig{}, "", err
	}
	flags := cmd.Flags()
	if flags.Changed("broker") {
		cfg.Broker.URL = f.url
	}
	if flags.Changed("topic") {
		cfg.Broker.Topic = f.topic
	}
	if flags.Changed("username") {
		cfg.Broker.Username = f.user
	}
	if flags.Changed("password") {
		cfg.Broker.Password = f.pass
	}
	if flags.Changed("ca-file") {
		cfg.Broker.CAFile = f.caFile
	}
	if cfg.Broker.URL == "" {
		return publish.BrokerConfig{}, "", fmt.Errorf("no broker: pass --broker or set TASKDECK_BROKER_URL")
	}
	if cfg.Broker.Topic == "" {
		return publish.BrokerConfig{}, "", fmt.Errorf("no topic")
	}
	return publish.BrokerConfig{
		URL:      cfg.Broker.URL,
		Username: cfg.Broker.Username,
		Password: cfg.Broker.Password,
		CAFile:   cfg.Broker.CAFile,
	}, cfg.Broker.Topic, nil
}

func rootCmd() *cobra.Command {
	var bf brokerFlags
	cmd := &cobra.Command{
		Use:           "taskpub",
		Short:         "Publish task snapshots for taskdeck displays",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&bf.config, "config", "c", "", "config file (default $XDG_CONFIG_HOME/taskdeck/config.toml)")
	pf.StringVar(&bf.url, "broker", "", "broker URL, e.g. tcp://localhost:1883")
	pf.StringVar(&bf.topic, "topic", config.Default().Broker.Topic, "snapshot topic")
	pf.StringVar(&bf.user, "username", "", "broker username")
	pf.StringVar(&bf.pass, "password", "", "broker password")
	pf.StringVar(&bf.caFile, "ca-file", "", "PEM file with the broker's CA")

	cmd.AddCommand(publishCmd(&bf))
	cmd.AddCommand(watchCmd(&bf))
	cmd.AddCommand(previewCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func publishCmd(bf *brokerFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "publish [file|-]",
		Short: "Publish the open tasks of an export as the retained snapshot",
		Long: `Read a task export (JSON or YAML), keep the tasks still to do, sort
them by due time and publish them retained at QoS 1.

Examples:
  taskpub publish tasks.json --broker tcp://localhost:1883
  feishu-export | taskpub publish -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := readTasks(cmd, args)
			if err != nil {
				return err
			}
			broker, topic, err := bf.resolve(cmd)
			if err != nil {
				return err
			}
			p, err := dial(broker)
			if err != nil {
				return err
			}
			defer p.Close()

			items, err := publish.Snapshot(p, topic, tasks)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s published %d of %d tasks to %s\n",
				color.New(color.FgGreen).Sprint("✓"), len(items), len(tasks), topic)
			return nil
		},
	}
}

func watchCmd(bf *brokerFlags) *cobra.Command {
	var every, debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch file",
		Short: "Republish the snapshot whenever the export changes",
		Long: `Publish the export once, then again after every save. With --every the
latest snapshot is also republished on that interval, so a deck that joins
late or a broker that lost its retained message catches up.

Examples:
  taskpub watch tasks.json --broker tcp://localhost:1883
  taskpub watch tasks.yaml --every 5m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, topic, err := bf.resolve(cmd)
			if err != nil {
				return err
			}
			p, err := dial(broker)
			if err != nil {
				return err
			}
			defer p.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			w := watcher{
				p:        p,
				topic:    topic,
				path:     args[0],
				every:    every,
				debounce: debounce,
				out:      cmd.OutOrStdout(),
				errOut:   cmd.ErrOrStderr(),
			}
			return w.run(ctx)
		},
	}
	cmd.Flags().DurationVar(&every, "every", 0, "also republish on this interval (0 = only on change)")
	cmd.Flags().DurationVar(&debounce, "debounce", filefeed.DefaultDebounce, "wait this long after a save before publishing")
	return cmd
}

type watcher struct {
	p        publish.Publisher
	topic    string
	path     string
	every    time.Duration
	debounce time.Duration
	out      io.Writer
	errOut   io.Writer
}

func (w watcher) run(ctx context.Context) error {
	changes := make(chan []byte, 1)
	src := filefeed.New(w.path, filefeed.WithDebounce(w.debounce))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return src.Run(ctx, func(b []byte) {
			// Only the newest save matters.
			select {
			case <-changes:
			default:
			}
			changes <- b
		})
	})
	g.Go(func() error {
		var tick <-chan time.Time
		if w.every > 0 {
			t := time.NewTicker(w.every)
			defer t.Stop()
			tick = t.C
		}
		var last []byte
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case last = <-changes:
			case <-tick:
				if last == nil {
					continue
				}
			}
			w.publish(last)
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// publish reports failures and keeps going: a half-written file or a broker
// hiccup should not end the watch.
func (w watcher) publish(data []byte) {
	fail := color.New(color.FgRed).Sprint("✗")
	tasks, err := publish.ParseTasks(w.path, data)
	if err != nil {
		fmt.Fprintf(w.errOut, "%s %s: %v\n", fail, w.path, err)
		return
	}
	items, err := publish.Snapshot(w.p, w.topic, tasks)
	if err != nil {
		fmt.Fprintf(w.errOut, "%s publish: %v\n", fail, err)
		return
	}
	fmt.Fprintf(w.out, "%s %s published %d of %d tasks to %s\n",
		color.New(color.FgGreen).Sprint("✓"), time.Now().Format(time.TimeOnly), len(items), len(tasks), w.topic)
}

func previewCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Show the snapshot publish would send",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := readTasks(cmd, args)
			if err != nil {
				return err
			}
			items := publish.Build(tasks)
			out := cmd.OutOrStdout()
			if asJSON {
				b, err := publish.Encode(items)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\n", b)
				return err
			}
			displayItems(out, items)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the payload instead of a table")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "taskpub", buildinfo.String())
		},
	}
}

func readTasks(cmd *cobra.Command, args []string) ([]publish.Task, error) {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return publish.ParseTasks(name, data)
}

func displayItems(w io.Writer, items []publish.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, color.New(color.FgYellow).Sprint("(no open tasks)"))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDUE\tSUMMARY")
	fmt.Fprintln(tw, "-\t---\t-------")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, dueLabel(it), it.Summary)
	}
	tw.Flush()
}

func dueLabel(it publish.Item) string {
	ms, err := strconv.ParseInt(it.DueTimestamp, 10, 64)
	if err != nil || ms <= 0 {
		return color.New(color.Faint).Sprint(timefmt.Deadline.Sentinel)
	}
	return timefmt.Deadline.Format(ms / 1000).String()
}
