package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/flash"
	"github.com/aretw0/flash/internal/config"
	"github.com/aretw0/flash/internal/presentation/tui"
	"github.com/aretw0/flash/internal/telemetry"
	"github.com/aretw0/flash/pkg/adapters/memory"
	"github.com/aretw0/flash/pkg/adapters/openai"
	"github.com/aretw0/flash/pkg/domain"
	"github.com/aretw0/flash/pkg/ports"
)

// Prompt is shown before reading the message when stdin is a terminal.
const Prompt = "Enter your message: "

// ErrNoInput is returned when stdin closes before any text was read.
var ErrNoInput = errors.New("no input")

// ChatOptions contains all the configuration for the chat command.
type ChatOptions struct {
	Config      config.Config
	In          io.Reader
	Out         io.Writer
	Interactive bool // show the prompt
}

// RunChat performs exactly one request/response cycle: read a line, run the graph, print the reply.
// Configuration is validated before anything is read.
func RunChat(ctx context.Context, opts ChatOptions) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer := createLogger(cfg)
	defer closer.Close()

	tracer, shutdown, err := telemetry.InitTracing(ctx, cfg.TraceFile, flash.Version)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := shutdown(sctx); serr != nil {
			logger.Warn("Failed to flush traces", "err", serr)
		}
	}()

	metrics := telemetry.NewMetrics()
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
				logger.Warn("Failed to write metrics", "path", cfg.MetricsFile, "err", werr)
			}
		}()
	}

	model, err := buildModel(cfg, logger)
	if err != nil {
		return err
	}

	g, err := flash.NewChatGraph(model,
		flash.WithLogger(logger),
		flash.WithTracer(tracer),
		flash.WithLifecycleHooks(domain.ChainHooks(createDebugHooks(logger), metrics.Hooks())),
	)
	if err != nil {
		return err
	}

	if opts.Interactive {
		fmt.Fprint(opts.Out, Prompt)
	}
	text, err := readLine(opts.In)
	if err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.Debug("Chat Started", "provider", cfg.Provider, "model", cfg.Model)
	final, err := flash.Ask(ctx, g, text)
	if err != nil {
		return err
	}

	last, _ := final.Last()
	return printReply(opts.Out, last.Content, cfg.Markdown)
}

func buildModel(cfg config.Config, logger *slog.Logger) (ports.ChatModel, error) {
	switch cfg.Provider {
	case config.ProviderEcho:
		return memory.NewEcho(), nil
	default:
		return openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}, openai.WithLogger(logger))
	}
}

// readLine reads one line. The line terminator is stripped; a final line without one is accepted.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printReply(w io.Writer, content string, markdown bool) error {
	if markdown {
		out, err := tui.NewRenderer()(content)
		if err == nil {
			_, err = fmt.Fprint(w, out)
			return err
		}
	}
	_, err := fmt.Fprintln(w, content)
	return err
}
