package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/daimao-tools/animename/catalog"
	"github.com/daimao-tools/animename/client"
	"github.com/daimao-tools/animename/graphapi"
	"github.com/daimao-tools/animename/internal/config"
	"github.com/daimao-tools/animename/nodes"
	"github.com/daimao-tools/animename/picker"
	"github.com/lmittmann/tint"
)

type cliArgs struct {
	configPath string
	address    string
	port       int
	scheme     string
	restore    string
}

// process CLI arguments
func procCLI() cliArgs {
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	serverAddress := flag.String("address", "", "Server address (overrides config)")
	serverPort := flag.Int("port", 0, "Server port (overrides config)")
	protocolType := flag.String("protocolType", "", "http or https (overrides config)")
	restore := flag.String("restore", "", "PNG generated by ComfyUI to restore the selection from")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Printf("  %s [OPTIONS]\n", os.Args[0])
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()
	return cliArgs{
		configPath: *configPath,
		address:    *serverAddress,
		port:       *serverPort,
		scheme:     *protocolType,
		restore:    *restore,
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05",
	}))
}

func main() {
	args := procCLI()

	cfg, err := config.Load(args.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if args.address != "" {
		cfg.Server.Address = args.address
	}
	if args.port != 0 {
		cfg.Server.Port = args.port
	}
	if args.scheme != "" {
		cfg.Server.Scheme = args.scheme
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid options:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging.Level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := client.NewComfyClientWithScheme(cfg.Server.Scheme, cfg.Server.Address, cfg.Server.Port)
	node := newNode(ctx, c)
	if args.restore != "" {
		if err := restoreSelection(node, cfg.Picker.Field, args.restore); err != nil {
			slog.Warn("Cannot restore selection", "file", args.restore, "error", err)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	w := picker.New(catalog.NewFetcher(c), picker.Options{
		GroupByAnime: cfg.Picker.GroupByAnime,
		Language:     picker.ResolveLanguage(cfg.Settings),
		Field:        cfg.Picker.Field,
		Filter:       cfg.Picker.Filter,
		Debounce:     cfg.Picker.Debounce,
		Logger:       logger,
	})
	node.OnDirty(func(n *graphapi.GraphNode) {
		logger.Debug("node marked dirty", "node", n.ID, "count", n.DirtyCount())
	})

	w.Mount(ctx, picker.NodeHost(node))
	node.Created()
	w.Wait()
	printView(out, w.View())
	out.Flush()

	repl := &session{widget: w, node: node, field: cfg.Picker.Field, out: out}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		out.Flush()
		if !scanner.Scan() {
			break
		}
		if !repl.exec(ctx, scanner.Text()) {
			break
		}
		out.Flush()
		if ctx.Err() != nil {
			break
		}
	}
	out.Flush()
}

// newNode builds the anime name helper node from the server's definition,
// falling back to the built-in one when the server cannot provide it.
func newNode(ctx context.Context, c *client.ComfyClient) *graphapi.GraphNode {
	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ok, err := c.HasExtension(reqCtx, "anime_name_helper"); err != nil {
		slog.Warn("Cannot list server extensions", "server", c.BaseURL(), "error", err)
	} else if !ok {
		slog.Warn("Anime name helper extension is not installed on the server", "server", c.BaseURL())
	}

	obj, err := c.GetObjectInfo(reqCtx, nodes.ClassType)
	if err != nil {
		slog.Warn("Using built-in node definition", "error", err)
		obj, err = nodes.DefaultObject()
		if err != nil {
			slog.Error("Cannot build node", "error", err)
			os.Exit(1)
		}
	}
	return graphapi.NewGraphNode(1, obj)
}

// restoreSelection copies selected_data from the prompt embedded in a generated
// PNG into the node, before the picker mounts and reads it.
func restoreSelection(node *graphapi.GraphNode, field string, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	prompt, err := graphapi.NewPromptFromPNGReader(f)
	if err != nil {
		return err
	}
	value, ok := nodes.SelectedDataFromPrompt(prompt)
	if !ok {
		return fmt.Errorf("no %s node in %s", nodes.ClassType, path)
	}

	w := node.WidgetWithName(field)
	if w == nil {
		return fmt.Errorf("node has no %s widget", field)
	}
	return w.SetValue(value)
}
