package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chzyer/readline"

	"vclassroom/local-app/internal/cli"
	"vclassroom/local-app/internal/config"
	"vclassroom/local-app/internal/data"
	"vclassroom/local-app/internal/event"
	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/storage"
	"vclassroom/local-app/internal/ui"
)

// bootstrap wires the logger, event manager, optional journal, registry and
// command loop, runs the given scripts and then the interactive prompt.
// End of input and exit both return nil.
func bootstrap(cfg *config.Config, scripts []string) error {
	ctx := context.Background()

	logger, err := log.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	logger.Info(ctx, "Application started", log.Fields{"config": cfg})

	eventManager := event.NewEventManager(logger)

	if cfg.JournalEnabled {
		store, err := storage.Open(cfg.JournalDriver, cfg.JournalPath)
		if err != nil {
			logger.Error(ctx, "Failed to open journal", log.Fields{"error": err, "path": cfg.JournalPath})
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error(ctx, "Failed to close journal", log.Fields{"error": err})
			}
		}()

		recorder := storage.NewJournalRecorder(store, logger)
		recorder.Attach(eventManager)
		logger.Info(ctx, "Journal enabled", log.Fields{"path": cfg.JournalPath, "run_id": recorder.RunID()})
	}

	manager := data.NewClassroomManager(eventManager, logger)
	u := ui.NewUI(os.Stdout, ui.ColorEnabled(cfg.Color, os.Stdout))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          u.Prompt(),
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    cli.Completer(manager),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize readline", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	// SIGTERM closes the reader, which ends the loop as end of input.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	stopWatch := closeOnSignal(sigChan, rl, logger)
	defer stopWatch()

	cliInstance := cli.NewCLI(manager, u, rl, logger)
	cliInstance.Banner()

	for _, script := range scripts {
		err := cliInstance.ExecuteScript(script)
		if errors.Is(err, cli.ErrExit) {
			logger.Info(ctx, "Application shutting down", log.Fields{"script": script})
			return nil
		}
		if err != nil {
			logger.Error(ctx, "Failed to execute script", log.Fields{"script": script, "error": err})
			u.Error(err.Error())
		}
	}

	if err := cliInstance.Run(); err != nil {
		logger.Error(ctx, "CLI error", log.Fields{"error": err})
	}

	logger.Info(ctx, "Application shutting down", nil)
	return nil
}

// closeOnSignal closes c when a signal arrives on sigChan. The returned stop
// function ends the watch and waits for it to finish.
func closeOnSignal(sigChan <-chan os.Signal, c io.Closer, logger *log.Logger) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		select {
		case <-sigChan:
			logger.Info(context.Background(), "Received termination signal. Shutting down...", nil)
			c.Close()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-finished
	}
}
