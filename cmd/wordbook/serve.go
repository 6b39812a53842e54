package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mwielgus/wordbook"
	wbhttp "github.com/mwielgus/wordbook/http"
	"github.com/mwielgus/wordbook/index"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	outputFile := deps.Config.OutputFile
	if c.OutputFile != "" {
		outputFile = c.OutputFile
	}

	ix := index.New(outputFile)
	if _, err := ix.Reload(); err != nil {
		if wordbook.ErrorCode(err) == wordbook.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Hint: Run 'wordbook extract' first to build %s\n", outputFile)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}

	server := wbhttp.NewServer(ix)

	fmt.Fprintf(deps.Stdout, "Serving %d words on http://%s\n", ix.Len(), c.Addr)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return server.ListenAndServe(c.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordbook.ErrorMessage(err))
		return err
	}
	return nil
}
