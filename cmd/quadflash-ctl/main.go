package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"

	"github.com/quadflash/backend/internal/commands"
	"github.com/quadflash/backend/internal/grader"
	"github.com/quadflash/backend/internal/infrastructure/config"
	"github.com/quadflash/backend/internal/infrastructure/logging"
	"github.com/quadflash/backend/internal/service"
	"github.com/quadflash/backend/internal/store"
)

func usage() {
	fmt.Println("quadflash-ctl <command> [args...]")
	fmt.Println()
	fmt.Println("  import <file>   validate a JSON file and make it the stored set")
	fmt.Println("  export [file]   write the stored set as JSON (stdout by default)")
	fmt.Println("  show            list stored questions with flags and notes")
	fmt.Println("  reset [-y]      clear the stored set")
}

type cmdHandler func(context.Context, *service.SessionController, []string) error

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	handlers := map[string]cmdHandler{
		"import": handleImport,
		"export": handleExport,
		"show":   handleShow,
		"reset":  handleReset,
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	handler, ok := handlers[cmd]
	if !ok {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	// Logs go to the log file only; stdout belongs to the command output.
	logger := logging.New(cfg.LogLevel, cfg.LogFile, logging.WithStdout(false))

	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		pterm.Error.Printf("open %s: %v\n", cfg.DBPath, err)
		os.Exit(1)
	}

	g, err := grader.FromName(cfg.AnswerMatch)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	// No artificial latency: the CLI waits for every write anyway.
	session := service.NewSessionController(service.NewPersistence(db, cfg.StorageKey, 0, logger), g, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	session.LoadInitial(ctx)

	err = handler(ctx, session, args)
	stop()
	session.Close()
	db.Close()

	if err != nil {
		pterm.Error.Printf("%s failed: %v\n", cmd, err)
		os.Exit(1)
	}
}

func handleImport(ctx context.Context, s *service.SessionController, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: import <file>")
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := commands.Import(ctx, s, args[0])
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		pterm.Warning.Println(w)
	}
	pterm.Success.Printf("Imported %d questions from '%s'.\n", len(res.Questions), args[0])
	return nil
}

func handleExport(ctx context.Context, s *service.SessionController, args []string) error {
	var w io.Writer = os.Stdout
	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create %s: %w", args[0], err)
		}
		defer f.Close()
		w = f
	}
	if err := commands.Export(s, w); err != nil {
		return err
	}
	if len(args) >= 1 && args[0] != "-" {
		pterm.Success.Printf("Exported %d questions to '%s'.\n", len(s.Questions()), args[0])
	}
	return nil
}

func handleShow(ctx context.Context, s *service.SessionController, args []string) error {
	return commands.Show(ctx, s, os.Stdout)
}

func handleReset(ctx context.Context, s *service.SessionController, args []string) error {
	var confirm service.Confirmer = service.ConfirmFunc(func(prompt string) bool {
		ok, _ := pterm.DefaultInteractiveConfirm.Show(prompt)
		return ok
	})
	if len(args) >= 1 {
		if args[0] == "-y" || args[0] == "--yes" {
			confirm = service.ConfirmFunc(func(string) bool { return true })
		} else {
			return fmt.Errorf("unknown argument %q", args[0])
		}
	}

	ok, err := commands.Reset(ctx, s, confirm)
	if err != nil {
		return err
	}
	if !ok {
		pterm.Info.Println("Reset cancelled.")
		return nil
	}
	pterm.Success.Println("Stored questions cleared.")
	return nil
}
