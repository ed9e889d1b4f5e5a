package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setup := []procConfig{
		{
			Name: "build-ui-wasm",
			Args: []string{"go", "build", "-o", "ui/main.wasm", "./cmd/ui-wasm"},
			Env:  []string{"GOOS=js", "GOARCH=wasm"},
		},
		{
			Name: "copy-wasm-exec",
			Args: []string{"sh", "-c", `cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" ui/wasm_exec.js`},
		},
	}
	procs := []procConfig{
		{
			Name: "ui",
			Args: []string{
				"go", "run", "./cmd/ui-server", "serve",
				"--listen", "127.0.0.1:4173",
				"--assets", "ui",
				"--log-level", "debug",
			},
		},
	}

	for _, cfg := range setup {
		if err := runOnce(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "multistream setup failed: %v\n", err)
			os.Exit(1)
		}
	}
	if err := runAll(ctx, procs); err != nil {
		fmt.Fprintf(os.Stderr, "multistream exited with error: %v\n", err)
		os.Exit(1)
	}
}

func command(ctx context.Context, cfg procConfig) *exec.Cmd {
	cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
	}
	return cmd
}

// runOnce runs a setup step to completion before the servers start.
func runOnce(ctx context.Context, cfg procConfig) error {
	if err := command(ctx, cfg).Run(); err != nil {
		return fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return nil
}

func runAll(ctx context.Context, procs []procConfig) error {
	if len(procs) == 0 {
		return fmt.Errorf("no processes configured")
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(procs))

	for _, cfg := range procs {
		wg.Add(1)
		go func(cfg procConfig) {
			defer wg.Done()
			cmd := command(ctx, cfg)
			if err := cmd.Start(); err != nil {
				errCh <- fmt.Errorf("%s start: %w", cfg.Name, err)
				return
			}
			if err := cmd.Wait(); err != nil {
				select {
				case <-ctx.Done():
					return
				default:
				}
				errCh <- fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
		}(cfg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		shutdownDelay := time.After(2 * time.Second)
		select {
		case <-done:
		case <-shutdownDelay:
		}
	case err := <-errCh:
		return err
	case <-done:
		select {
		case err := <-errCh:
			return err
		default:
		}
	}
	return nil
}
